package prop

import (
	"errors"
	"testing"

	"github.com/cognicore/logica/pkg/logica/internalerr"
)

func TestClauseBasics(t *testing.T) {
	p, q, a := NewLit("P"), NewLit("Q"), NewLit("A")

	c := NewClause(p, q, a, q) // duplicate q collapses
	if c.Len() != 3 {
		t.Errorf("expected 3 literals, got %d", c.Len())
	}
	if !c.Contains(q) || c.Contains(q.Negate()) {
		t.Error("Contains should match name and polarity exactly")
	}
	if NewClause().String() != "∅" {
		t.Error("empty clause should render as ∅")
	}
}

func TestClauseResolve(t *testing.T) {
	p, q, r, a := NewLit("P"), NewLit("Q"), NewLit("R"), NewLit("A")

	c1 := NewClause(p, q, a)
	c2 := NewClause(r, q.Negate())
	got := c1.Resolve(c2, q)
	want := NewClause(p, r, a)
	if got.Key() != want.Key() {
		t.Errorf("got %s, want %s", got, want)
	}

	// Neither input clause is mutated.
	if !c1.Contains(q) || !c2.Contains(q.Negate()) {
		t.Error("Resolve must not mutate its inputs")
	}
}

func TestClauseTautology(t *testing.T) {
	p, q := NewLit("P"), NewLit("Q")

	if !NewClause(p, p.Negate(), q).IsTautology() {
		t.Error("P ∨ ¬P ∨ Q is a tautology")
	}
	if NewClause(p, q.Negate()).IsTautology() {
		t.Error("P ∨ ¬Q is not a tautology")
	}
}

func TestClauseSetDeduplication(t *testing.T) {
	p, q := NewLit("P"), NewLit("Q")

	s := NewClauseSet()
	if !s.Add(NewClause(p, q)) {
		t.Error("first insert should report new")
	}
	if s.Add(NewClause(q, p)) {
		t.Error("same literal set in another order is not new")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 clause, got %d", s.Len())
	}
}

func TestCNFParser(t *testing.T) {
	b11, p12, p21 := NewLit("B11"), NewLit("P12"), NewLit("P21")

	set, err := CNFParser{}.Parse(ToCNF(Iff(b11, Or(p12, p21))))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := NewClauseSet(
		NewClause(b11, p21.Negate()),
		NewClause(b11, p12.Negate()),
		NewClause(p21, b11.Negate(), p12),
	)
	if set.Len() != want.Len() {
		t.Fatalf("expected %d clauses, got %d: %v", want.Len(), set.Len(), set.Clauses())
	}
	for _, c := range want.Clauses() {
		if !set.Has(c) {
			t.Errorf("missing clause %s", c)
		}
	}
}

func TestCNFParserAssociativityIndependence(t *testing.T) {
	a, b, c := NewLit("A"), NewLit("B"), NewLit("C")

	left, err := CNFParser{}.Parse(Or(Or(a, b), c))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	right, err := CNFParser{}.Parse(Or(a, Or(b, c)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if left.Clauses()[0].Key() != right.Clauses()[0].Key() {
		t.Error("different CNF trees of the same clause should flatten identically")
	}
}

func TestCNFParserRejectsNonCNF(t *testing.T) {
	a, b := NewLit("A"), NewLit("B")

	for _, f := range []Formula{
		Implies(a, b),
		Iff(a, b),
		Not(And(a, b)),
		Or(a, And(a, b)),
	} {
		if _, err := (CNFParser{}).Parse(f); !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("Parse(%s): expected ErrInvalidInput, got %v", f, err)
		}
	}
}
