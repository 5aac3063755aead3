// Package fol implements the Horn-clause subset of first-order logic:
// terms, persistent substitutions, unification, and forward and
// backward chaining over Horn clauses.
package fol

import (
	"sort"
	"strings"
)

// TermKind tags the three term variants.
type TermKind int

const (
	// Constant is an opaque symbol naming an individual.
	Constant TermKind = iota
	// Variable is a placeholder bound through substitutions.
	Variable
	// Function is a function application; its arity is part of its
	// identity.
	Function
)

// Term is an immutable first-order term: a constant, a variable, or a
// function application over ordered argument terms.
type Term struct {
	Name string
	Kind TermKind
	Args []Term
}

// Const creates a constant term.
func Const(name string) Term { return Term{Name: name, Kind: Constant} }

// Var creates a variable term.
func Var(name string) Term { return Term{Name: name, Kind: Variable} }

// Func creates a function application term.
func Func(name string, args ...Term) Term {
	return Term{Name: name, Kind: Function, Args: args}
}

// Equal reports structural equality.
func (t Term) Equal(other Term) bool {
	if t.Name != other.Name || t.Kind != other.Kind || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// IsGround reports whether the term contains no variables.
func (t Term) IsGround() bool {
	if t.Kind == Variable {
		return false
	}
	for _, a := range t.Args {
		if !a.IsGround() {
			return false
		}
	}
	return true
}

// ContainsVar reports whether the variable name occurs anywhere in the
// term, including inside nested function arguments.
func (t Term) ContainsVar(name string) bool {
	if t.Kind == Variable && t.Name == name {
		return true
	}
	for _, a := range t.Args {
		if a.ContainsVar(name) {
			return true
		}
	}
	return false
}

func (t Term) String() string {
	if t.Kind != Function {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Substitution is a persistent mapping from variable names to terms.
// Bind returns a new substitution and never mutates the receiver, so
// sibling branches of a backtracking search can safely extend a shared
// ancestor.
type Substitution struct {
	m map[string]Term
}

// NewSubstitution creates a substitution from the given bindings; call
// it with no arguments for the empty substitution.
func NewSubstitution(bindings ...map[string]Term) Substitution {
	s := Substitution{m: make(map[string]Term)}
	for _, b := range bindings {
		for k, v := range b {
			s.m[k] = v
		}
	}
	return s
}

// Bind returns a copy of s with the variable bound to t.
func (s Substitution) Bind(name string, t Term) Substitution {
	next := Substitution{m: make(map[string]Term, len(s.m)+1)}
	for k, v := range s.m {
		next.m[k] = v
	}
	next.m[name] = t
	return next
}

// Lookup returns the direct binding of a variable name, if any.
func (s Substitution) Lookup(name string) (Term, bool) {
	t, ok := s.m[name]
	return t, ok
}

// Len returns the number of bound variables.
func (s Substitution) Len() int { return len(s.m) }

// Bindings returns a copy of the underlying mapping.
func (s Substitution) Bindings() map[string]Term {
	out := make(map[string]Term, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

// Walk resolves a variable term through chains of variable bindings
// until it reaches an unbound variable or a non-variable term. It does
// not descend into function arguments.
func (s Substitution) Walk(t Term) Term {
	for t.Kind == Variable {
		bound, ok := s.m[t.Name]
		if !ok {
			return t
		}
		t = bound
	}
	return t
}

// Apply replaces every bound variable in the term, recursively,
// including variables introduced by nested function terms.
func (s Substitution) Apply(t Term) Term {
	t = s.Walk(t)
	if t.Kind != Function {
		return t
	}
	args := make([]Term, len(t.Args))
	for i, a := range t.Args {
		args[i] = s.Apply(a)
	}
	return Term{Name: t.Name, Kind: Function, Args: args}
}

// Compose merges other into s; bindings in other win on conflict. Both
// inputs are left untouched.
func (s Substitution) Compose(other Substitution) Substitution {
	next := Substitution{m: make(map[string]Term, len(s.m)+len(other.m))}
	for k, v := range s.m {
		next.m[k] = v
	}
	for k, v := range other.m {
		next.m[k] = v
	}
	return next
}

// Equal reports whether two substitutions bind the same variables to
// structurally equal terms.
func (s Substitution) Equal(other Substitution) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for k, v := range s.m {
		w, ok := other.m[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

func (s Substitution) String() string {
	names := make([]string, 0, len(s.m))
	for k := range s.m {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = k + " → " + s.m[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
