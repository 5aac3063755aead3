package prop

import "testing"

// isCNF reports whether f is a conjunction of disjunctions of
// literals, with no implication, biconditional, or negation of a
// non-literal anywhere.
func isCNF(f Formula) bool {
	if a, ok := f.(and); ok {
		return isCNF(a.l) && isCNF(a.r)
	}
	return isDisjunctionOfLiterals(f)
}

func isDisjunctionOfLiterals(f Formula) bool {
	switch t := f.(type) {
	case Lit:
		return true
	case or:
		return isDisjunctionOfLiterals(t.l) && isDisjunctionOfLiterals(t.r)
	default:
		return false
	}
}

func TestToCNFDistribution(t *testing.T) {
	a, b, c, p, q := NewLit("A"), NewLit("B"), NewLit("C"), NewLit("P"), NewLit("Q")

	got := ToCNF(Or(ConjoinAll(a, b, c, p), q))
	want := ConjoinAll(Or(a, q), Or(b, q), Or(c, q), Or(p, q))
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestToCNFNegatedImplication(t *testing.T) {
	p, q, r := NewLit("P"), NewLit("Q"), NewLit("R")

	got := ToCNF(Not(And(Implies(p.Negate(), q.Negate()), r.Negate())))
	want := And(Or(p.Negate(), r), Or(q, r))
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestToCNFNestedConjunctionInDisjunction(t *testing.T) {
	a, b, c, p := NewLit("A"), NewLit("B"), NewLit("C"), NewLit("P")

	got := ToCNF(Or(Or(a, b), ConjoinAll(a.Negate(), b.Negate(), c, p)))
	ab := Or(a, b)
	want := ConjoinAll(Or(ab, a.Negate()), Or(ab, b.Negate()), Or(ab, c), Or(ab, p))
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestToCNFAlreadyCNF(t *testing.T) {
	a, b, c, p, q := NewLit("A"), NewLit("B"), NewLit("C"), NewLit("P"), NewLit("Q")

	f := And(DisjoinAll(a, b, c, p), q)
	if got := ToCNF(f); got != f {
		t.Errorf("CNF input should be a fixed point, got %s", got)
	}
}

func TestToCNFShapeInvariant(t *testing.T) {
	a, b, c, d := NewLit("A"), NewLit("B"), NewLit("C"), NewLit("D")

	inputs := []Formula{
		a,
		Not(Not(a)),
		Iff(a, b),
		Implies(Or(a, b), And(c, d)),
		Iff(Or(a, b), And(c, d)),
		Not(Iff(a, Implies(b, c))),
		And(Iff(a, Or(b, c)), Not(Or(a, And(b, Not(Or(c, d)))))),
		Implies(Implies(a, b), Implies(c, d)),
	}
	for _, f := range inputs {
		cnf := ToCNF(f)
		if !isCNF(cnf) {
			t.Errorf("ToCNF(%s) = %s is not in CNF", f, cnf)
		}
		if _, err := (CNFParser{}).Parse(cnf); err != nil {
			t.Errorf("ToCNF(%s) output does not parse: %v", f, err)
		}
	}
}
