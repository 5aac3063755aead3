// Package logica ties the inference engines to persistence: a
// knowledge base of Horn clauses that can be told facts and rules,
// queried by forward or backward chaining, and optionally backed by a
// store that keeps the knowledge and a log of executed queries.
package logica

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/logica/pkg/logica/config"
	"github.com/cognicore/logica/pkg/logica/fol"
	"github.com/cognicore/logica/pkg/logica/internalerr"
	"github.com/cognicore/logica/pkg/logica/store"
)

// Options configures a Logica instance
type Options struct {
	// Store persists told knowledge and the query log. Nil means
	// in-process only.
	Store store.Store
}

// Logica is the main knowledge engine facade
type Logica struct {
	store   store.Store
	clauses []fol.HornClause
	entropy *ulid.MonotonicEntropy
}

// New creates a Logica instance with the given dependencies
func New(opts Options) *Logica {
	return &Logica{
		store:   opts.Store,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Close cleanly shuts down the Logica instance
func (l *Logica) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}

// Clauses returns the current clause list in insertion order.
func (l *Logica) Clauses() []fol.HornClause {
	out := make([]fol.HornClause, len(l.clauses))
	copy(out, l.clauses)
	return out
}

// TellFact adds a ground predicate to the knowledge base.
func (l *Logica) TellFact(ctx context.Context, p fol.Predicate) error {
	if !p.IsGround() {
		return fmt.Errorf("fact %s contains variables: %w", p, internalerr.ErrInvalidInput)
	}
	l.clauses = append(l.clauses, fol.NewHornClause(nil, p))
	if l.store == nil {
		return nil
	}
	// Telling a fact the store already holds is fine.
	err := l.store.SaveFact(ctx, store.Fact{Predicate: p.String(), AddedAt: time.Now()})
	if errors.Is(err, internalerr.ErrDuplicate) {
		return nil
	}
	return err
}

// TellRule adds a Horn clause to the knowledge base.
func (l *Logica) TellRule(ctx context.Context, hc fol.HornClause) error {
	l.clauses = append(l.clauses, hc)
	if l.store == nil {
		return nil
	}
	premises := make([]string, len(hc.Premises))
	for i, p := range hc.Premises {
		premises[i] = p.String()
	}
	err := l.store.SaveRule(ctx, store.Rule{
		Premises:   premises,
		Conclusion: hc.Conclusion.String(),
		AddedAt:    time.Now(),
	})
	if errors.Is(err, internalerr.ErrDuplicate) {
		return nil
	}
	return err
}

// Load replaces the in-memory clause list with the store's contents.
func (l *Logica) Load(ctx context.Context) error {
	if l.store == nil {
		return internalerr.ErrNotFound
	}
	facts, err := l.store.ListFacts(ctx)
	if err != nil {
		return err
	}
	rules, err := l.store.ListRules(ctx)
	if err != nil {
		return err
	}

	clauses := make([]fol.HornClause, 0, len(facts)+len(rules))
	for _, f := range facts {
		p, err := config.ParsePredicate(f.Predicate)
		if err != nil {
			return fmt.Errorf("stored fact %q: %w", f.Predicate, err)
		}
		clauses = append(clauses, fol.NewHornClause(nil, p))
	}
	for _, r := range rules {
		concl, err := config.ParsePredicate(r.Conclusion)
		if err != nil {
			return fmt.Errorf("stored rule conclusion %q: %w", r.Conclusion, err)
		}
		premises := make([]fol.Predicate, len(r.Premises))
		for i, s := range r.Premises {
			p, err := config.ParsePredicate(s)
			if err != nil {
				return fmt.Errorf("stored rule premise %q: %w", s, err)
			}
			premises[i] = p
		}
		clauses = append(clauses, fol.NewHornClause(premises, concl))
	}
	l.clauses = clauses
	return nil
}

// Prove runs backward chaining on the goal and returns up to max
// satisfying substitutions (max <= 0 means all). The query is recorded
// in the store's query log when one is configured. The context is
// checked between solutions, so a cancelled context bounds an
// otherwise unbounded search.
func (l *Logica) Prove(ctx context.Context, goal fol.Predicate, max int) ([]fol.Substitution, error) {
	start := time.Now()
	var solutions []fol.Substitution
	var searchErr error
	for s := range fol.BackwardChain(l.clauses, []fol.Predicate{goal}, fol.NewSubstitution()) {
		if err := ctx.Err(); err != nil {
			searchErr = err
			break
		}
		solutions = append(solutions, s)
		if max > 0 && len(solutions) >= max {
			break
		}
	}
	if err := l.record(ctx, goal, "backward", len(solutions) > 0, len(solutions), time.Since(start)); err != nil {
		return solutions, err
	}
	return solutions, searchErr
}

// Derive runs forward chaining on the goal. It returns the
// substitution grounding the goal and whether one was derived.
func (l *Logica) Derive(ctx context.Context, goal fol.Predicate) (fol.Substitution, bool, error) {
	start := time.Now()
	s, ok := fol.ForwardChain(l.clauses, goal)
	solutions := 0
	if ok {
		solutions = 1
	}
	if err := l.record(ctx, goal, "forward", ok, solutions, time.Since(start)); err != nil {
		return s, ok, err
	}
	return s, ok, nil
}

func (l *Logica) record(ctx context.Context, goal fol.Predicate, mode string, proved bool, solutions int, elapsed time.Duration) error {
	if l.store == nil {
		return nil
	}
	// The log entry should survive cancellation of the search itself.
	return l.store.SaveQuery(context.WithoutCancel(ctx), store.QueryRecord{
		ID:        ulid.MustNew(ulid.Now(), l.entropy).String(),
		Goal:      goal.String(),
		Mode:      mode,
		Proved:    proved,
		Solutions: solutions,
		Elapsed:   elapsed,
		AskedAt:   time.Now(),
	})
}
