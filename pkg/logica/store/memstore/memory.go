package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cognicore/logica/pkg/logica/internalerr"
	"github.com/cognicore/logica/pkg/logica/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	facts   []store.Fact
	factIdx map[string]struct{}
	rules   []store.Rule
	ruleIdx map[string]struct{}
	queries []store.QueryRecord
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		factIdx: make(map[string]struct{}),
		ruleIdx: make(map[string]struct{}),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveFact inserts a fact, keyed by its text form. Re-saving leaves
// the store unchanged and reports ErrDuplicate.
func (s *Store) SaveFact(ctx context.Context, f store.Fact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.factIdx[f.Predicate]; ok {
		return fmt.Errorf("fact %s: %w", f.Predicate, internalerr.ErrDuplicate)
	}
	s.factIdx[f.Predicate] = struct{}{}
	s.facts = append(s.facts, f)
	return nil
}

// ListFacts returns facts in insertion order.
func (s *Store) ListFacts(ctx context.Context) ([]store.Fact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Fact, len(s.facts))
	copy(out, s.facts)
	return out, nil
}

// SaveRule inserts a rule, keyed by its text form. Re-saving leaves
// the store unchanged and reports ErrDuplicate.
func (s *Store) SaveRule(ctx context.Context, r store.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ruleKey(r)
	if _, ok := s.ruleIdx[key]; ok {
		return fmt.Errorf("rule %s: %w", key, internalerr.ErrDuplicate)
	}
	s.ruleIdx[key] = struct{}{}
	s.rules = append(s.rules, copyRule(r))
	return nil
}

// ListRules returns rules in insertion order.
func (s *Store) ListRules(ctx context.Context) ([]store.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = copyRule(r)
	}
	return out, nil
}

// SaveQuery appends a query record.
func (s *Store) SaveQuery(ctx context.Context, q store.QueryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries = append(s.queries, q)
	return nil
}

// ListQueries returns the most recent records first, up to limit.
func (s *Store) ListQueries(ctx context.Context, limit int) ([]store.QueryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.QueryRecord, len(s.queries))
	copy(out, s.queries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AskedAt.After(out[j].AskedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func ruleKey(r store.Rule) string {
	return strings.Join(r.Premises, " ∧ ") + " ⇒ " + r.Conclusion
}

func copyRule(r store.Rule) store.Rule {
	premises := make([]string, len(r.Premises))
	copy(premises, r.Premises)
	r.Premises = premises
	return r
}
