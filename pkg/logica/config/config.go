// Package config loads knowledge bases from YAML files. Facts and
// rule parts are written in a compact text syntax, e.g.
// "Sells(x, y, Nono)": an identifier starting with a lower-case letter
// is a variable, anything else is a constant, and an identifier
// followed by parentheses inside an argument list is a function term.
//
// Multi-argument predicates contain commas, so list them in YAML block
// style (one "- Sells(x, y, z)" per line) or quote them inside flow
// sequences; an unquoted flow sequence splits them at the commas.
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/logica/pkg/logica/fol"
	"github.com/cognicore/logica/pkg/logica/internalerr"
)

// Knowledge is the YAML shape of a knowledge file.
type Knowledge struct {
	Facts []string `yaml:"facts"`
	Rules []Rule   `yaml:"rules"`
}

// Rule is one conditional clause in a knowledge file.
type Rule struct {
	If   []string `yaml:"if"`
	Then string   `yaml:"then"`
}

// LoadKnowledge reads a YAML knowledge file into Horn clauses.
func LoadKnowledge(path string) ([]fol.HornClause, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKnowledge(data)
}

// ParseKnowledge parses YAML knowledge-file contents.
func ParseKnowledge(data []byte) ([]fol.HornClause, error) {
	var k Knowledge
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	clauses := make([]fol.HornClause, 0, len(k.Facts)+len(k.Rules))
	for _, f := range k.Facts {
		p, err := ParsePredicate(f)
		if err != nil {
			return nil, fmt.Errorf("fact %q: %w", f, err)
		}
		clauses = append(clauses, fol.NewHornClause(nil, p))
	}
	for _, r := range k.Rules {
		if r.Then == "" {
			return nil, fmt.Errorf("rule without conclusion: %w", internalerr.ErrInvalidConfig)
		}
		concl, err := ParsePredicate(r.Then)
		if err != nil {
			return nil, fmt.Errorf("conclusion %q: %w", r.Then, err)
		}
		premises := make([]fol.Predicate, len(r.If))
		for i, s := range r.If {
			p, err := ParsePredicate(s)
			if err != nil {
				return nil, fmt.Errorf("premise %q: %w", s, err)
			}
			premises[i] = p
		}
		clauses = append(clauses, fol.NewHornClause(premises, concl))
	}
	return clauses, nil
}

// ParsePredicate parses "Name(arg, ...)" into a predicate. "Name()"
// and bare "Name" both denote a zero-argument predicate.
func ParsePredicate(s string) (fol.Predicate, error) {
	sc := &scanner{src: strings.TrimSpace(s)}
	name, err := sc.ident()
	if err != nil {
		return fol.Predicate{}, err
	}
	var args []fol.Term
	if sc.peek() == '(' {
		args, err = sc.argList()
		if err != nil {
			return fol.Predicate{}, err
		}
	}
	sc.skipSpace()
	if !sc.done() {
		return fol.Predicate{}, fmt.Errorf("trailing input at %q: %w", sc.rest(), internalerr.ErrInvalidInput)
	}
	return fol.NewPredicate(name, args...), nil
}

// ParseTerm parses a single term: a constant, a variable, or a nested
// function application.
func ParseTerm(s string) (fol.Term, error) {
	sc := &scanner{src: strings.TrimSpace(s)}
	t, err := sc.term()
	if err != nil {
		return fol.Term{}, err
	}
	sc.skipSpace()
	if !sc.done() {
		return fol.Term{}, fmt.Errorf("trailing input at %q: %w", sc.rest(), internalerr.ErrInvalidInput)
	}
	return t, nil
}

type scanner struct {
	src string
	pos int
}

func (sc *scanner) done() bool { return sc.pos >= len(sc.src) }

func (sc *scanner) rest() string { return sc.src[sc.pos:] }

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.src[sc.pos]
}

func (sc *scanner) skipSpace() {
	for !sc.done() && (sc.src[sc.pos] == ' ' || sc.src[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *scanner) ident() (string, error) {
	sc.skipSpace()
	start := sc.pos
	for !sc.done() {
		c := sc.src[sc.pos]
		if c == '(' || c == ')' || c == ',' || c == ' ' || c == '\t' {
			break
		}
		sc.pos++
	}
	if sc.pos == start {
		return "", fmt.Errorf("expected identifier at %q: %w", sc.rest(), internalerr.ErrInvalidInput)
	}
	return sc.src[start:sc.pos], nil
}

func (sc *scanner) term() (fol.Term, error) {
	name, err := sc.ident()
	if err != nil {
		return fol.Term{}, err
	}
	sc.skipSpace()
	if sc.peek() == '(' {
		args, err := sc.argList()
		if err != nil {
			return fol.Term{}, err
		}
		return fol.Func(name, args...), nil
	}
	if isVariableName(name) {
		return fol.Var(name), nil
	}
	return fol.Const(name), nil
}

// argList consumes "(t, t, ...)" including the empty list "()".
func (sc *scanner) argList() ([]fol.Term, error) {
	sc.pos++ // consume '('
	var args []fol.Term
	sc.skipSpace()
	if sc.peek() == ')' {
		sc.pos++
		return args, nil
	}
	for {
		t, err := sc.term()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		sc.skipSpace()
		switch sc.peek() {
		case ',':
			sc.pos++
		case ')':
			sc.pos++
			return args, nil
		default:
			return nil, fmt.Errorf("expected ',' or ')' at %q: %w", sc.rest(), internalerr.ErrInvalidInput)
		}
	}
}

func isVariableName(name string) bool {
	for _, r := range name {
		return unicode.IsLower(r)
	}
	return false
}
