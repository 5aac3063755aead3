package fol

import (
	"errors"
	"fmt"
)

// Unification failure reasons. A failed unification is routine control
// flow for the chaining engines, not a hard error; callers branch on
// it with errors.Is.
var (
	ErrSymbolMismatch = errors.New("symbol mismatch")
	ErrArityMismatch  = errors.New("arity mismatch")
	ErrOccursCheck    = errors.New("occurs check violation")
)

// Unifier computes most general unifiers. The zero value performs the
// occurs check, trading speed for soundness; set SkipOccursCheck for
// the classic unchecked behavior.
type Unifier struct {
	SkipOccursCheck bool
}

// Unify extends s to a most general substitution making x and y
// identical, or reports why none exists.
func (u Unifier) Unify(x, y Term, s Substitution) (Substitution, error) {
	x = s.Walk(x)
	y = s.Walk(y)

	switch {
	case x.Kind == Variable:
		return u.bind(x, y, s)
	case y.Kind == Variable:
		return u.bind(y, x, s)
	case x.Kind == Constant && y.Kind == Constant:
		if x.Name != y.Name {
			return Substitution{}, fmt.Errorf("%s vs %s: %w", x, y, ErrSymbolMismatch)
		}
		return s, nil
	case x.Kind == Function && y.Kind == Function:
		if x.Name != y.Name {
			return Substitution{}, fmt.Errorf("%s vs %s: %w", x.Name, y.Name, ErrSymbolMismatch)
		}
		if len(x.Args) != len(y.Args) {
			return Substitution{}, fmt.Errorf("%s/%d vs %s/%d: %w",
				x.Name, len(x.Args), y.Name, len(y.Args), ErrArityMismatch)
		}
		return u.UnifyArgs(x.Args, y.Args, s)
	default:
		return Substitution{}, fmt.Errorf("%s vs %s: %w", x, y, ErrSymbolMismatch)
	}
}

// UnifyArgs unifies two equal-length argument lists left to right,
// each step's bindings visible to the later pairs.
func (u Unifier) UnifyArgs(xs, ys []Term, s Substitution) (Substitution, error) {
	if len(xs) != len(ys) {
		return Substitution{}, fmt.Errorf("%d vs %d arguments: %w", len(xs), len(ys), ErrArityMismatch)
	}
	var err error
	for i := range xs {
		s, err = u.Unify(xs[i], ys[i], s)
		if err != nil {
			return Substitution{}, err
		}
	}
	return s, nil
}

// bind binds the walked variable v to t. v is known to be unbound
// under s.
func (u Unifier) bind(v, t Term, s Substitution) (Substitution, error) {
	if t.Kind == Variable && t.Name == v.Name {
		return s, nil
	}
	if !u.SkipOccursCheck && s.Apply(t).ContainsVar(v.Name) {
		return Substitution{}, fmt.Errorf("%s in %s: %w", v, t, ErrOccursCheck)
	}
	return s.Bind(v.Name, t), nil
}

// Unify applies the default unifier (occurs check enabled).
func Unify(x, y Term, s Substitution) (Substitution, error) {
	return Unifier{}.Unify(x, y, s)
}

// UnifyArgs applies the default unifier to two argument lists.
func UnifyArgs(xs, ys []Term, s Substitution) (Substitution, error) {
	return Unifier{}.UnifyArgs(xs, ys, s)
}
