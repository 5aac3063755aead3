package prop

// ToCNF rewrites any formula into conjunctive normal form: a
// conjunction of disjunctions of literals. The rewrite proceeds in
// stages: biconditional elimination, implication elimination, pushing
// negation down to literals, then distributing ∨ over ∧ until a fixed
// point. Termination is guaranteed for any finite formula.
func ToCNF(f Formula) Formula {
	f = eliminateIff(f)
	f = eliminateImplies(f)
	f = toNNF(f)
	for {
		g := distribute(f)
		if g == f {
			return f
		}
		f = g
	}
}

// eliminateIff rewrites every A ⇔ B into (A ⇒ B) ∧ (B ⇒ A).
func eliminateIff(f Formula) Formula {
	switch t := f.(type) {
	case iff:
		l := eliminateIff(t.l)
		r := eliminateIff(t.r)
		return And(Implies(l, r), Implies(r, l))
	case not:
		return not{eliminateIff(t.f)}
	case and:
		return And(eliminateIff(t.l), eliminateIff(t.r))
	case or:
		return Or(eliminateIff(t.l), eliminateIff(t.r))
	case implies:
		return Implies(eliminateIff(t.l), eliminateIff(t.r))
	default:
		return f
	}
}

// eliminateImplies rewrites every A ⇒ B into ¬A ∨ B.
func eliminateImplies(f Formula) Formula {
	switch t := f.(type) {
	case implies:
		return Or(Not(eliminateImplies(t.l)), eliminateImplies(t.r))
	case not:
		return not{eliminateImplies(t.f)}
	case and:
		return And(eliminateImplies(t.l), eliminateImplies(t.r))
	case or:
		return Or(eliminateImplies(t.l), eliminateImplies(t.r))
	default:
		return f
	}
}

// toNNF pushes negation inward via De Morgan's laws and double
// negation elimination until negation applies only to literals.
// Implications and biconditionals must already be gone.
func toNNF(f Formula) Formula {
	switch t := f.(type) {
	case not:
		return negate(t.f)
	case and:
		return And(toNNF(t.l), toNNF(t.r))
	case or:
		return Or(toNNF(t.l), toNNF(t.r))
	default:
		return f
	}
}

func negate(f Formula) Formula {
	switch t := f.(type) {
	case Lit:
		return t.Negate()
	case not:
		return toNNF(t.f)
	case and:
		return Or(negate(t.l), negate(t.r))
	case or:
		return And(negate(t.l), negate(t.r))
	default:
		return f
	}
}

// distribute applies one recursive pass of A ∨ (B ∧ C) →
// (A ∨ B) ∧ (A ∨ C); ToCNF repeats it until the tree stops changing.
func distribute(f Formula) Formula {
	switch t := f.(type) {
	case and:
		return And(distribute(t.l), distribute(t.r))
	case or:
		l := distribute(t.l)
		r := distribute(t.r)
		if a, ok := l.(and); ok {
			return And(distribute(Or(a.l, r)), distribute(Or(a.r, r)))
		}
		if a, ok := r.(and); ok {
			return And(distribute(Or(l, a.l)), distribute(Or(l, a.r)))
		}
		return Or(l, r)
	default:
		return f
	}
}
