package prop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/logica/pkg/logica/internalerr"
)

// HornClause is a definite propositional clause: a set of positive
// premise literals implying a single positive conclusion. A clause
// with no premises asserts its conclusion outright.
type HornClause struct {
	premises   map[Lit]struct{}
	conclusion Lit
}

// NewHornClause builds a Horn clause. Premises and the conclusion must
// be positive literals; duplicates among the premises are discarded.
func NewHornClause(premises []Lit, conclusion Lit) (HornClause, error) {
	for _, p := range premises {
		if !p.Positive {
			return HornClause{}, fmt.Errorf("negated premise %s: %w", p, internalerr.ErrInvalidInput)
		}
	}
	if !conclusion.Positive {
		return HornClause{}, fmt.Errorf("negated conclusion %s: %w", conclusion, internalerr.ErrInvalidInput)
	}
	hc := HornClause{premises: make(map[Lit]struct{}, len(premises)), conclusion: conclusion}
	for _, p := range premises {
		hc.premises[p] = struct{}{}
	}
	return hc, nil
}

// Premises returns the premise literals sorted by name.
func (hc HornClause) Premises() []Lit {
	out := make([]Lit, 0, len(hc.premises))
	for p := range hc.premises {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Conclusion returns the conclusion literal.
func (hc HornClause) Conclusion() Lit { return hc.conclusion }

// Equal reports whether two clauses have the same premise set and
// conclusion; premise order never matters.
func (hc HornClause) Equal(other HornClause) bool {
	if hc.conclusion != other.conclusion || len(hc.premises) != len(other.premises) {
		return false
	}
	for p := range hc.premises {
		if _, ok := other.premises[p]; !ok {
			return false
		}
	}
	return true
}

// Clause returns the clause form ¬p1 ∨ ... ∨ ¬pn ∨ c, directly usable
// with the resolution and DPLL engines.
func (hc HornClause) Clause() Clause {
	lits := make([]Lit, 0, len(hc.premises)+1)
	for p := range hc.premises {
		lits = append(lits, p.Negate())
	}
	lits = append(lits, hc.conclusion)
	return NewClause(lits...)
}

func (hc HornClause) String() string {
	if len(hc.premises) == 0 {
		return hc.conclusion.String()
	}
	ps := hc.Premises()
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ∧ ") + " ⇒ " + hc.conclusion.String()
}
