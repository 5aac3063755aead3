package prop

// KB is an entailment-queryable propositional knowledge base. Tell
// converts a sentence through the CNF pipeline and stores its clauses;
// Ask reports whether the stored clauses entail alpha. The two
// implementations, ResolutionKB and DPLLKB, agree on every input.
type KB interface {
	Tell(f Formula) error
	Ask(alpha Formula) bool
}

// ResolutionKB answers entailment queries by resolution refutation:
// KB ∧ ¬alpha is converted to clause form and resolved to a fixed
// point; deriving the empty clause proves entailment.
type ResolutionKB struct {
	clauses ClauseSet
	parser  CNFParser
}

// NewResolutionKB creates a KB seeded with the given clauses, which
// must already be in clause-normal form.
func NewResolutionKB(clauses ...Clause) *ResolutionKB {
	return &ResolutionKB{clauses: NewClauseSet(clauses...)}
}

// Clauses returns the stored clauses.
func (kb *ResolutionKB) Clauses() ClauseSet { return kb.clauses }

// Tell adds a sentence to the KB. Adding an already-known clause is a
// no-op.
func (kb *ResolutionKB) Tell(f Formula) error {
	set, err := kb.parser.Parse(ToCNF(f))
	if err != nil {
		return err
	}
	for _, c := range set.Clauses() {
		kb.clauses.Add(c)
	}
	return nil
}

// Ask reports whether the KB entails alpha. The query never mutates
// the stored clause set.
func (kb *ResolutionKB) Ask(alpha Formula) bool {
	negated, err := kb.parser.Parse(ToCNF(Not(alpha)))
	if err != nil {
		return false
	}
	working := kb.clauses.Clone()
	for _, c := range negated.Clauses() {
		working.Add(c)
	}

	for {
		clauses := working.Clauses()
		fresh := NewClauseSet()
		for i := 0; i < len(clauses); i++ {
			for j := i + 1; j < len(clauses); j++ {
				for _, r := range resolvents(clauses[i], clauses[j]) {
					if r.IsEmpty() {
						return true
					}
					if r.IsTautology() || working.Has(r) {
						continue
					}
					fresh.Add(r)
				}
			}
		}
		if fresh.Len() == 0 {
			return false
		}
		for _, c := range fresh.Clauses() {
			working.Add(c)
		}
	}
}

// resolvents returns every resolvent of the two clauses, one per
// complementary literal pair.
func resolvents(a, b Clause) []Clause {
	var out []Clause
	for _, l := range a.Literals() {
		if b.Contains(l.Negate()) {
			out = append(out, a.Resolve(b, l))
		}
	}
	return out
}
