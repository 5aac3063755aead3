package fol

import "iter"

// BackwardChain proves the outstanding goals top-down against the
// clause list, starting from s. It returns a lazy sequence of every
// satisfying substitution reachable by depth-first backtracking; the
// search is suspended between yields and abandoned as soon as the
// caller stops ranging. An empty sequence means no proof.
//
// No termination guarantee exists for recursive rule sets; callers
// wanting bounded search must stop iterating themselves.
func BackwardChain(kb []HornClause, goals []Predicate, s Substitution) iter.Seq[Substitution] {
	return func(yield func(Substitution) bool) {
		counter := 0
		proveAll(Unifier{}, kb, goals, s, &counter, yield)
	}
}

// proveAll discharges the goal list left to right. It returns false
// when the caller has stopped consuming results, which unwinds the
// whole search.
func proveAll(u Unifier, kb []HornClause, goals []Predicate, s Substitution, counter *int, yield func(Substitution) bool) bool {
	if len(goals) == 0 {
		return yield(s)
	}
	goal := s.ApplyPredicate(goals[0])
	for _, hc := range kb {
		var std HornClause
		std, *counter = StandardizeApart(hc, *counter)
		theta, err := u.UnifyPredicates(std.Conclusion, goal, s)
		if err != nil {
			continue
		}
		rest := make([]Predicate, 0, len(std.Premises)+len(goals)-1)
		rest = append(rest, std.Premises...)
		rest = append(rest, goals[1:]...)
		if !proveAll(u, kb, rest, theta, counter, yield) {
			return false
		}
	}
	return true
}
