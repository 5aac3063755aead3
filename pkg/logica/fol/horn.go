package fol

import (
	"fmt"
	"strconv"
	"strings"
)

// Predicate is a relation name applied to ordered terms.
type Predicate struct {
	Name string
	Args []Term
}

// NewPredicate creates a predicate.
func NewPredicate(name string, args ...Term) Predicate {
	return Predicate{Name: name, Args: args}
}

// Equal reports structural equality.
func (p Predicate) Equal(other Predicate) bool {
	if p.Name != other.Name || len(p.Args) != len(other.Args) {
		return false
	}
	for i := range p.Args {
		if !p.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// IsGround reports whether the predicate contains no variables.
func (p Predicate) IsGround() bool {
	for _, a := range p.Args {
		if !a.IsGround() {
			return false
		}
	}
	return true
}

func (p Predicate) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return p.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ApplyPredicate applies the substitution to every argument.
func (s Substitution) ApplyPredicate(p Predicate) Predicate {
	args := make([]Term, len(p.Args))
	for i, a := range p.Args {
		args[i] = s.Apply(a)
	}
	return Predicate{Name: p.Name, Args: args}
}

// UnifyPredicates unifies two predicates under s: the names and
// arities must match, then the argument lists are unified pairwise.
// Mismatches are reported through the same failure sentinels as term
// unification.
func (u Unifier) UnifyPredicates(p, q Predicate, s Substitution) (Substitution, error) {
	if p.Name != q.Name {
		return Substitution{}, fmt.Errorf("%s vs %s: %w", p.Name, q.Name, ErrSymbolMismatch)
	}
	if len(p.Args) != len(q.Args) {
		return Substitution{}, fmt.Errorf("%s/%d vs %s/%d: %w",
			p.Name, len(p.Args), q.Name, len(q.Args), ErrArityMismatch)
	}
	return u.UnifyArgs(p.Args, q.Args, s)
}

// HornClause is an ordered list of premise predicates implying exactly
// one conclusion predicate. A clause with no premises is a fact.
type HornClause struct {
	Premises   []Predicate
	Conclusion Predicate
}

// NewHornClause creates a Horn clause.
func NewHornClause(premises []Predicate, conclusion Predicate) HornClause {
	return HornClause{Premises: premises, Conclusion: conclusion}
}

// IsFact reports whether the clause has no premises.
func (hc HornClause) IsFact() bool { return len(hc.Premises) == 0 }

func (hc HornClause) String() string {
	if hc.IsFact() {
		return hc.Conclusion.String()
	}
	parts := make([]string, len(hc.Premises))
	for i, p := range hc.Premises {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ∧ ") + " ⇒ " + hc.Conclusion.String()
}

// StandardizeApart bijectively renames every variable in the clause to
// a fresh name derived from the counter, leaving predicate names,
// constants, and arities untouched. It returns the renamed clause and
// the advanced counter. Using a single monotonically increasing
// counter across all uses keeps names from distinct rule
// instantiations disjoint.
func StandardizeApart(hc HornClause, counter int) (HornClause, int) {
	seen := make(map[string]string)

	var renameTerm func(t Term) Term
	renameTerm = func(t Term) Term {
		switch t.Kind {
		case Variable:
			fresh, ok := seen[t.Name]
			if !ok {
				fresh = t.Name + strconv.Itoa(counter)
				seen[t.Name] = fresh
				counter++
			}
			return Var(fresh)
		case Function:
			args := make([]Term, len(t.Args))
			for i, a := range t.Args {
				args[i] = renameTerm(a)
			}
			return Term{Name: t.Name, Kind: Function, Args: args}
		default:
			return t
		}
	}

	renamePred := func(p Predicate) Predicate {
		args := make([]Term, len(p.Args))
		for i, a := range p.Args {
			args[i] = renameTerm(a)
		}
		return Predicate{Name: p.Name, Args: args}
	}

	premises := make([]Predicate, len(hc.Premises))
	for i, p := range hc.Premises {
		premises[i] = renamePred(p)
	}
	return HornClause{Premises: premises, Conclusion: renamePred(hc.Conclusion)}, counter
}
