package prop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/logica/pkg/logica/internalerr"
)

// Clause is a set of literals read as their disjunction. The empty
// clause denotes a derived contradiction. Clauses are values: the
// operations below never mutate their receiver.
type Clause struct {
	lits map[Lit]struct{}
}

// NewClause builds a clause from the given literals, discarding
// duplicates.
func NewClause(lits ...Lit) Clause {
	c := Clause{lits: make(map[Lit]struct{}, len(lits))}
	for _, l := range lits {
		c.lits[l] = struct{}{}
	}
	return c
}

// Contains reports whether the exact literal (name and polarity) is in
// the clause.
func (c Clause) Contains(l Lit) bool {
	_, ok := c.lits[l]
	return ok
}

// Len returns the number of distinct literals.
func (c Clause) Len() int { return len(c.lits) }

// IsEmpty reports whether this is the empty clause.
func (c Clause) IsEmpty() bool { return len(c.lits) == 0 }

// Literals returns the clause's literals sorted by name, negative
// polarity first within a name. The order is stable across runs.
func (c Clause) Literals() []Lit {
	out := make([]Lit, 0, len(c.lits))
	for l := range c.lits {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return !out[i].Positive && out[j].Positive
	})
	return out
}

// IsTautology reports whether the clause contains a literal together
// with its negation.
func (c Clause) IsTautology() bool {
	for l := range c.lits {
		if _, ok := c.lits[l.Negate()]; ok {
			return true
		}
	}
	return false
}

// Resolve computes the resolvent of c and other on the given literal:
// the union of both clauses minus l from c and ¬l from other. Neither
// input clause is modified.
func (c Clause) Resolve(other Clause, l Lit) Clause {
	r := Clause{lits: make(map[Lit]struct{}, len(c.lits)+len(other.lits))}
	for x := range c.lits {
		if x != l {
			r.lits[x] = struct{}{}
		}
	}
	neg := l.Negate()
	for x := range other.lits {
		if x != neg {
			r.lits[x] = struct{}{}
		}
	}
	return r
}

// Key returns a canonical fingerprint of the clause. Two clauses with
// the same literal set have the same key regardless of construction
// order, which is what makes clause sets associativity-independent.
func (c Clause) Key() string {
	lits := c.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

func (c Clause) String() string {
	if c.IsEmpty() {
		return "∅"
	}
	return "(" + c.Key() + ")"
}

// ClauseSet is a deduplicated set of clauses keyed by canonical form.
type ClauseSet struct {
	m map[string]Clause
}

// NewClauseSet builds a set from the given clauses.
func NewClauseSet(clauses ...Clause) ClauseSet {
	s := ClauseSet{m: make(map[string]Clause, len(clauses))}
	for _, c := range clauses {
		s.Add(c)
	}
	return s
}

// Add inserts a clause; adding an already-present clause is a no-op.
// It reports whether the clause was new.
func (s ClauseSet) Add(c Clause) bool {
	k := c.Key()
	if _, ok := s.m[k]; ok {
		return false
	}
	s.m[k] = c
	return true
}

// Has reports whether an equal clause is already in the set.
func (s ClauseSet) Has(c Clause) bool {
	_, ok := s.m[c.Key()]
	return ok
}

// Len returns the number of clauses.
func (s ClauseSet) Len() int { return len(s.m) }

// Clauses returns the clauses in canonical key order.
func (s ClauseSet) Clauses() []Clause {
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Clause, len(keys))
	for i, k := range keys {
		out[i] = s.m[k]
	}
	return out
}

// Clone returns an independent copy of the set.
func (s ClauseSet) Clone() ClauseSet {
	c := ClauseSet{m: make(map[string]Clause, len(s.m))}
	for k, v := range s.m {
		c.m[k] = v
	}
	return c
}

// CNFParser flattens a CNF-structured formula into a clause set:
// nested conjunctions become top-level clause boundaries and nested
// disjunctions within each conjunct become literal sets. Any legal CNF
// tree of the same clauses yields an identical set.
type CNFParser struct{}

// Parse returns the clause set of f. It fails if f contains a node a
// CNF formula cannot have (an implication, a biconditional, or a
// negation of a non-literal).
func (CNFParser) Parse(f Formula) (ClauseSet, error) {
	set := NewClauseSet()
	if err := splitConjuncts(f, set); err != nil {
		return ClauseSet{}, err
	}
	return set, nil
}

func splitConjuncts(f Formula, set ClauseSet) error {
	if a, ok := f.(and); ok {
		if err := splitConjuncts(a.l, set); err != nil {
			return err
		}
		return splitConjuncts(a.r, set)
	}
	c := NewClause()
	if err := collectLiterals(f, c); err != nil {
		return err
	}
	set.Add(c)
	return nil
}

func collectLiterals(f Formula, c Clause) error {
	switch t := f.(type) {
	case Lit:
		c.lits[t] = struct{}{}
		return nil
	case or:
		if err := collectLiterals(t.l, c); err != nil {
			return err
		}
		return collectLiterals(t.r, c)
	default:
		return fmt.Errorf("formula is not in CNF at %s: %w", f, internalerr.ErrInvalidInput)
	}
}
