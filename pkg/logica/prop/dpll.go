package prop

import "sort"

// DPLLKB answers entailment queries with the DPLL satisfiability
// procedure: KB entails alpha iff KB ∧ ¬alpha is unsatisfiable.
type DPLLKB struct {
	clauses ClauseSet
	parser  CNFParser
}

// NewDPLLKB creates a KB seeded with the given clauses, which must
// already be in clause-normal form.
func NewDPLLKB(clauses ...Clause) *DPLLKB {
	return &DPLLKB{clauses: NewClauseSet(clauses...)}
}

// Clauses returns the stored clauses.
func (kb *DPLLKB) Clauses() ClauseSet { return kb.clauses }

// Tell adds a sentence to the KB. Adding an already-known clause is a
// no-op.
func (kb *DPLLKB) Tell(f Formula) error {
	set, err := kb.parser.Parse(ToCNF(f))
	if err != nil {
		return err
	}
	for _, c := range set.Clauses() {
		kb.clauses.Add(c)
	}
	return nil
}

// Ask reports whether the KB entails alpha.
func (kb *DPLLKB) Ask(alpha Formula) bool {
	negated, err := kb.parser.Parse(ToCNF(Not(alpha)))
	if err != nil {
		return false
	}
	working := kb.clauses.Clone()
	for _, c := range negated.Clauses() {
		working.Add(c)
	}
	return !DPLLSatisfiableClauses(working)
}

// DPLLSatisfiable reports whether any assignment satisfies f.
func DPLLSatisfiable(f Formula) bool {
	set, err := CNFParser{}.Parse(ToCNF(f))
	if err != nil {
		return false
	}
	return DPLLSatisfiableClauses(set)
}

// DPLLSatisfiableClauses runs the DPLL search over a clause set.
func DPLLSatisfiableClauses(clauses ClauseSet) bool {
	return dpll(clauses, FindClauseSymbols(clauses), map[string]bool{})
}

// FindClauseSymbols returns every symbol name occurring in the clause
// set, sorted. The sorted order fixes the branching order of the
// search, making runs reproducible.
func FindClauseSymbols(clauses ClauseSet) []string {
	seen := make(map[string]struct{})
	for _, c := range clauses.Clauses() {
		for _, l := range c.Literals() {
			seen[l.Name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// FindPureSymbol looks for an unassigned symbol appearing with only
// one polarity across the clauses not yet satisfied by model. It
// returns the symbol, the polarity to assign, and whether one was
// found.
func FindPureSymbol(symbols []string, clauses ClauseSet, model map[string]bool) (string, bool, bool) {
	for _, sym := range symbols {
		if _, assigned := model[sym]; assigned {
			continue
		}
		seenPos, seenNeg := false, false
		for _, c := range clauses.Clauses() {
			if clauseTrue(c, model) {
				continue
			}
			if c.Contains(Lit{Name: sym, Positive: true}) {
				seenPos = true
			}
			if c.Contains(Lit{Name: sym, Positive: false}) {
				seenNeg = true
			}
		}
		if seenPos != seenNeg {
			return sym, seenPos, true
		}
	}
	return "", false, false
}

// FindUnitClause looks for a clause with exactly one unassigned
// literal and every other literal false under model; that literal's
// value is forced. It returns the symbol, the forced value, and
// whether a unit clause was found.
func FindUnitClause(clauses ClauseSet, model map[string]bool) (string, bool, bool) {
	for _, c := range clauses.Clauses() {
		var unit Lit
		units := 0
		forced := true
		for _, l := range c.Literals() {
			v, assigned := model[l.Name]
			if !assigned {
				unit = l
				units++
				continue
			}
			if v == l.Positive {
				// Clause already satisfied.
				forced = false
				break
			}
		}
		if forced && units == 1 {
			return unit.Name, unit.Positive, true
		}
	}
	return "", false, false
}

func clauseTrue(c Clause, model map[string]bool) bool {
	for _, l := range c.Literals() {
		if v, ok := model[l.Name]; ok && v == l.Positive {
			return true
		}
	}
	return false
}

// clauseFalse reports whether every literal in c is assigned and
// false under model.
func clauseFalse(c Clause, model map[string]bool) bool {
	for _, l := range c.Literals() {
		v, ok := model[l.Name]
		if !ok || v == l.Positive {
			return false
		}
	}
	return true
}

func dpll(clauses ClauseSet, symbols []string, model map[string]bool) bool {
	allTrue := true
	for _, c := range clauses.Clauses() {
		if clauseFalse(c, model) {
			return false
		}
		if !clauseTrue(c, model) {
			allTrue = false
		}
	}
	if allTrue {
		return true
	}

	if sym, val, ok := FindPureSymbol(symbols, clauses, model); ok {
		return dpll(clauses, symbols, extendModel(model, sym, val))
	}
	if sym, val, ok := FindUnitClause(clauses, model); ok {
		return dpll(clauses, symbols, extendModel(model, sym, val))
	}

	// Branch on the first unassigned symbol in enumeration order.
	for _, sym := range symbols {
		if _, assigned := model[sym]; assigned {
			continue
		}
		return dpll(clauses, symbols, extendModel(model, sym, true)) ||
			dpll(clauses, symbols, extendModel(model, sym, false))
	}
	return false
}

// extendModel returns a copy of model with one more assignment; the
// original is shared between sibling branches and never mutated.
func extendModel(model map[string]bool, sym string, val bool) map[string]bool {
	next := make(map[string]bool, len(model)+1)
	for k, v := range model {
		next[k] = v
	}
	next[sym] = val
	return next
}
