package fol

import (
	"strings"
	"testing"
)

// criminalKB is the classic AIMA "Criminal West" Horn-clause set.
func criminalKB() []HornClause {
	x, y, z := Var("x"), Var("y"), Var("z")
	nono := Const("Nono")
	west := Const("West")
	m1 := Const("M1")
	america := Const("America")

	return []HornClause{
		NewHornClause(
			[]Predicate{
				NewPredicate("American", x),
				NewPredicate("Weapon", y),
				NewPredicate("Sells", x, y, z),
				NewPredicate("Hostile", z),
			},
			NewPredicate("Criminal", x),
		),
		NewHornClause(nil, NewPredicate("Owns", nono, m1)),
		NewHornClause(nil, NewPredicate("Missile", m1)),
		NewHornClause(
			[]Predicate{
				NewPredicate("Missile", x),
				NewPredicate("Owns", nono, x),
			},
			NewPredicate("Sells", west, x, nono),
		),
		NewHornClause(
			[]Predicate{NewPredicate("Missile", x)},
			NewPredicate("Weapon", x),
		),
		NewHornClause(
			[]Predicate{NewPredicate("Enemy", x, america)},
			NewPredicate("Hostile", x),
		),
		NewHornClause(nil, NewPredicate("American", west)),
		NewHornClause(nil, NewPredicate("Enemy", nono, america)),
	}
}

// colorableKB is the Australian map-coloring Horn-clause set: a
// single Colorable rule over Diff premises plus the six ordered pairs
// of distinct colors.
func colorableKB() []HornClause {
	wa, sa, nt := Var("wa"), Var("sa"), Var("nt")
	q, nsw, v := Var("q"), Var("nsw"), Var("v")
	red, green, blue := Const("Red"), Const("Green"), Const("Blue")

	return []HornClause{
		NewHornClause(
			[]Predicate{
				NewPredicate("Diff", wa, nt),
				NewPredicate("Diff", wa, sa),
				NewPredicate("Diff", nt, q),
				NewPredicate("Diff", nt, sa),
				NewPredicate("Diff", q, nsw),
				NewPredicate("Diff", q, sa),
				NewPredicate("Diff", nsw, v),
				NewPredicate("Diff", nsw, sa),
				NewPredicate("Diff", v, sa),
			},
			NewPredicate("Colorable"),
		),
		NewHornClause(nil, NewPredicate("Diff", red, blue)),
		NewHornClause(nil, NewPredicate("Diff", red, green)),
		NewHornClause(nil, NewPredicate("Diff", green, red)),
		NewHornClause(nil, NewPredicate("Diff", green, blue)),
		NewHornClause(nil, NewPredicate("Diff", blue, red)),
		NewHornClause(nil, NewPredicate("Diff", blue, green)),
	}
}

// baseVarName strips the fresh-name counter suffix, recovering the
// source variable a standardized name came from.
func baseVarName(name string) string {
	return strings.TrimRight(name, "0123456789")
}

func TestForwardChainCriminal(t *testing.T) {
	goal := NewPredicate("Criminal", Const("West"))
	s, ok := ForwardChain(criminalKB(), goal)
	if !ok {
		t.Fatal("Criminal(West) should be derivable")
	}
	if got := s.ApplyPredicate(goal); got.String() != "Criminal(West)" {
		t.Errorf("substitution does not ground the goal: %s", got)
	}

	// The rule variables must be bound consistently: x to West, y to
	// M1, z to Nono.
	want := map[string]Term{"x": Const("West"), "y": Const("M1"), "z": Const("Nono")}
	for name, term := range s.Bindings() {
		resolved := s.Apply(term)
		expected, known := want[baseVarName(name)]
		if !known {
			continue
		}
		if !resolved.Equal(expected) {
			t.Errorf("%s resolved to %s, want %s", name, resolved, expected)
		}
	}
}

func TestForwardChainGoalIsSeedFact(t *testing.T) {
	s, ok := ForwardChain(criminalKB(), NewPredicate("Owns", Const("Nono"), Var("w")))
	if !ok {
		t.Fatal("Owns(Nono, w) matches a seed fact")
	}
	if got, _ := s.Lookup("w"); !got.Equal(Const("M1")) {
		t.Errorf("expected w → M1, got %s", s)
	}
}

func TestForwardChainFixedPointFailure(t *testing.T) {
	if _, ok := ForwardChain(criminalKB(), NewPredicate("Criminal", Const("Nono"))); ok {
		t.Error("Criminal(Nono) is not derivable")
	}
	if _, ok := ForwardChain(nil, NewPredicate("Anything", Const("A"))); ok {
		t.Error("an empty KB derives nothing")
	}
}

func TestBackwardChainCriminal(t *testing.T) {
	goal := NewPredicate("Criminal", Const("West"))

	var solutions []Substitution
	for s := range BackwardChain(criminalKB(), []Predicate{goal}, NewSubstitution()) {
		solutions = append(solutions, s)
	}
	if len(solutions) == 0 {
		t.Fatal("expected at least one proof of Criminal(West)")
	}
	for _, s := range solutions {
		if got := s.ApplyPredicate(goal); got.String() != "Criminal(West)" {
			t.Errorf("solution does not ground the goal: %s", got)
		}
		// Every binding resolves to exactly one ground term.
		for name, term := range s.Bindings() {
			if resolved := s.Apply(term); !resolved.IsGround() {
				t.Errorf("%s left unresolved at %s", name, resolved)
			}
		}
	}
}

func TestBackwardChainNoProof(t *testing.T) {
	goal := NewPredicate("Criminal", Const("Nono"))
	for range BackwardChain(criminalKB(), []Predicate{goal}, NewSubstitution()) {
		t.Fatal("Criminal(Nono) must yield no solutions")
	}
}

func TestBackwardChainMapColoring(t *testing.T) {
	regions := []string{"wa", "sa", "nt", "q", "nsw", "v"}
	adjacent := [][2]string{
		{"wa", "nt"}, {"wa", "sa"}, {"nt", "q"}, {"nt", "sa"},
		{"q", "nsw"}, {"q", "sa"}, {"nsw", "v"}, {"nsw", "sa"}, {"v", "sa"},
	}
	colors := map[string]bool{"Red": true, "Green": true, "Blue": true}

	seen := make(map[string]bool)
	for s := range BackwardChain(colorableKB(), []Predicate{NewPredicate("Colorable")}, NewSubstitution()) {
		assignment := make(map[string]string)
		for name := range s.Bindings() {
			region := baseVarName(name)
			resolved := s.Apply(Var(name))
			if !resolved.IsGround() {
				t.Fatalf("%s not resolved to a color: %s", name, resolved)
			}
			if !colors[resolved.Name] {
				t.Fatalf("%s bound to non-color %s", name, resolved)
			}
			if prev, ok := assignment[region]; ok && prev != resolved.Name {
				t.Fatalf("region %s colored twice: %s and %s", region, prev, resolved.Name)
			}
			assignment[region] = resolved.Name
		}
		for _, r := range regions {
			if assignment[r] == "" {
				t.Fatalf("region %s left uncolored in %s", r, s)
			}
		}
		for _, pair := range adjacent {
			if assignment[pair[0]] == assignment[pair[1]] {
				t.Errorf("invalid coloring: %s and %s share %s", pair[0], pair[1], assignment[pair[0]])
			}
		}

		key := ""
		for _, r := range regions {
			key += r + "=" + assignment[r] + ";"
		}
		if seen[key] {
			t.Errorf("duplicate coloring %s", key)
		}
		seen[key] = true
	}

	if len(seen) != 6 {
		t.Errorf("expected exactly 6 valid colorings, got %d", len(seen))
	}
}

func TestBackwardChainIsLazy(t *testing.T) {
	// Abandoning the sequence mid-search must be safe; the remaining
	// colorings are simply never computed.
	yielded := 0
	for range BackwardChain(colorableKB(), []Predicate{NewPredicate("Colorable")}, NewSubstitution()) {
		yielded++
		if yielded == 2 {
			break
		}
	}
	if yielded != 2 {
		t.Errorf("expected to stop after 2 solutions, got %d", yielded)
	}
}

func TestBackwardChainInitialSubstitution(t *testing.T) {
	kb := colorableKB()
	goal := NewPredicate("Diff", Var("a"), Var("b"))
	initial := NewSubstitution().Bind("a", Const("Red"))

	var partners []string
	for s := range BackwardChain(kb, []Predicate{goal}, initial) {
		b := s.Apply(Var("b"))
		if !b.IsGround() {
			t.Fatalf("b unresolved: %s", s)
		}
		partners = append(partners, b.Name)
	}
	if len(partners) != 2 {
		t.Fatalf("Red is Diff from exactly two colors, got %v", partners)
	}
	for _, p := range partners {
		if p == "Red" {
			t.Error("Diff(Red, Red) must not appear")
		}
	}
}

func TestBackwardChainMultipleGoals(t *testing.T) {
	kb := colorableKB()
	goals := []Predicate{
		NewPredicate("Diff", Var("a"), Var("b")),
		NewPredicate("Diff", Var("b"), Var("c")),
	}

	count := 0
	for s := range BackwardChain(kb, goals, NewSubstitution()) {
		count++
		a, b, c := s.Apply(Var("a")), s.Apply(Var("b")), s.Apply(Var("c"))
		if a.Name == b.Name || b.Name == c.Name {
			t.Errorf("chained Diff violated: %s, %s, %s", a, b, c)
		}
	}
	// 6 choices for (a, b), then 2 partners for each b.
	if count != 12 {
		t.Errorf("expected 12 solutions, got %d", count)
	}
}

func TestBackwardChainSiblingIndependence(t *testing.T) {
	// Collect all map colorings and re-check each substitution after
	// the full search finished: a later branch must not have leaked
	// bindings into an earlier result.
	var solutions []Substitution
	for s := range BackwardChain(colorableKB(), []Predicate{NewPredicate("Colorable")}, NewSubstitution()) {
		solutions = append(solutions, s)
	}
	byRegion := make([]map[string]string, len(solutions))
	for i, s := range solutions {
		byRegion[i] = make(map[string]string)
		for name := range s.Bindings() {
			byRegion[i][baseVarName(name)] = s.Apply(Var(name)).Name
		}
	}
	for i := range byRegion {
		for j := i + 1; j < len(byRegion); j++ {
			same := true
			for r, c := range byRegion[i] {
				if byRegion[j][r] != c {
					same = false
					break
				}
			}
			if same {
				t.Errorf("solutions %d and %d collapsed to the same coloring", i, j)
			}
		}
	}
}
