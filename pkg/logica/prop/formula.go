// Package prop implements propositional logic: an immutable formula
// model, CNF conversion, and entailment queries over clause sets via
// resolution refutation or DPLL satisfiability search.
package prop

import "fmt"

// Formula is an immutable propositional expression tree. Trees are
// built only through the package combinators (Not, And, Or, Implies,
// Iff) over Lit leaves and are never mutated afterwards. All node
// types are comparable values, so == is structural equality and
// formulas can be used as map keys.
type Formula interface {
	fmt.Stringer

	// isFormula restricts the set of node types to this package.
	isFormula()
}

// Lit is an atomic proposition: a symbol name plus a polarity.
type Lit struct {
	Name     string
	Positive bool
}

// NewLit creates a positive literal for the given symbol.
func NewLit(name string) Lit {
	return Lit{Name: name, Positive: true}
}

// Negate returns the literal with its polarity flipped.
func (l Lit) Negate() Lit {
	return Lit{Name: l.Name, Positive: !l.Positive}
}

func (l Lit) isFormula() {}

func (l Lit) String() string {
	if l.Positive {
		return l.Name
	}
	return "¬" + l.Name
}

type not struct{ f Formula }

type and struct{ l, r Formula }

type or struct{ l, r Formula }

type implies struct{ l, r Formula }

type iff struct{ l, r Formula }

func (not) isFormula()     {}
func (and) isFormula()     {}
func (or) isFormula()      {}
func (implies) isFormula() {}
func (iff) isFormula()     {}

// Not negates a formula. Negating a literal folds into the literal
// itself so that ¬P and Lit{P, false} are the same value.
func Not(f Formula) Formula {
	if l, ok := f.(Lit); ok {
		return l.Negate()
	}
	return not{f}
}

// And conjoins two formulas.
func And(l, r Formula) Formula { return and{l, r} }

// Or disjoins two formulas.
func Or(l, r Formula) Formula { return or{l, r} }

// Implies builds the conditional l ⇒ r.
func Implies(l, r Formula) Formula { return implies{l, r} }

// Iff builds the biconditional l ⇔ r.
func Iff(l, r Formula) Formula { return iff{l, r} }

// Rendering policy: literals are bare, ¬ binds tighter than the binary
// connectives, and every binary node is parenthesized. The textual form
// is stable and is part of the package contract.

func (n not) String() string     { return "¬" + n.f.String() }
func (a and) String() string     { return "(" + a.l.String() + " ∧ " + a.r.String() + ")" }
func (o or) String() string      { return "(" + o.l.String() + " ∨ " + o.r.String() + ")" }
func (i implies) String() string { return "(" + i.l.String() + " ⇒ " + i.r.String() + ")" }
func (i iff) String() string     { return "(" + i.l.String() + " ⇔ " + i.r.String() + ")" }

// ConjoinAll folds a non-empty list of formulas into a left-nested
// conjunction.
func ConjoinAll(fs ...Formula) Formula {
	f := fs[0]
	for _, g := range fs[1:] {
		f = And(f, g)
	}
	return f
}

// DisjoinAll folds a non-empty list of formulas into a left-nested
// disjunction.
func DisjoinAll(fs ...Formula) Formula {
	f := fs[0]
	for _, g := range fs[1:] {
		f = Or(f, g)
	}
	return f
}
