package fol

// ForwardChain derives ground facts bottom-up from the clause list
// until the goal is derivable or a full pass adds nothing new. It
// returns the substitution that first grounds the goal, or false when
// the fixed point is reached without deriving it.
//
// Matching is deliberately brute force: every pass rescans every
// clause against the full fact set, backtracking across alternative
// fact matches per premise. Worst-case behavior is exponential in the
// number of premises and facts; no indexing is attempted.
func ForwardChain(kb []HornClause, goal Predicate) (Substitution, bool) {
	u := Unifier{}
	counter := 0
	known := make(map[string]struct{})
	var facts []Predicate

	add := func(p Predicate) bool {
		k := p.String()
		if _, ok := known[k]; ok {
			return false
		}
		known[k] = struct{}{}
		facts = append(facts, p)
		return true
	}

	match := func(s Substitution, fact Predicate) (Substitution, bool) {
		theta, err := u.UnifyPredicates(goal, fact, s)
		if err != nil {
			return Substitution{}, false
		}
		if !theta.ApplyPredicate(goal).IsGround() {
			return Substitution{}, false
		}
		return theta, true
	}

	// Seed from zero-premise clauses; one of them may already ground
	// the goal.
	for _, hc := range kb {
		if hc.IsFact() {
			add(hc.Conclusion)
		}
	}
	for _, f := range facts {
		if theta, ok := match(NewSubstitution(), f); ok {
			return theta, true
		}
	}

	for {
		added := false
		for _, hc := range kb {
			if hc.IsFact() {
				continue
			}
			var std HornClause
			std, counter = StandardizeApart(hc, counter)
			for _, s := range satisfyPremises(u, std.Premises, facts, NewSubstitution()) {
				concl := s.ApplyPredicate(std.Conclusion)
				if !concl.IsGround() || !add(concl) {
					continue
				}
				added = true
				if theta, ok := match(s, concl); ok {
					return theta, true
				}
			}
		}
		if !added {
			return Substitution{}, false
		}
	}
}

// satisfyPremises enumerates every substitution satisfying the
// premises in order against the fact list, backtracking across
// alternative fact matches for the same premise.
func satisfyPremises(u Unifier, premises []Predicate, facts []Predicate, s Substitution) []Substitution {
	if len(premises) == 0 {
		return []Substitution{s}
	}
	var out []Substitution
	for _, f := range facts {
		next, err := u.UnifyPredicates(premises[0], f, s)
		if err != nil {
			continue
		}
		out = append(out, satisfyPremises(u, premises[1:], facts, next)...)
	}
	return out
}
