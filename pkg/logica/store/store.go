// Package store defines persistence for knowledge bases: ground
// facts, Horn rules, and a log of executed queries. Facts and rule
// parts are stored in the same text syntax the config package parses,
// which keeps the database round-trippable through the loader.
package store

import (
	"context"
	"time"
)

// Store persists knowledge and the query log. Saving a fact or rule
// the store already holds leaves it unchanged and reports
// internalerr.ErrDuplicate.
type Store interface {
	Close() error

	// Knowledge
	SaveFact(ctx context.Context, f Fact) error
	ListFacts(ctx context.Context) ([]Fact, error)
	SaveRule(ctx context.Context, r Rule) error
	ListRules(ctx context.Context) ([]Rule, error)

	// Query log
	SaveQuery(ctx context.Context, q QueryRecord) error
	ListQueries(ctx context.Context, limit int) ([]QueryRecord, error)
}

// Fact is a stored ground predicate, e.g. "Owns(Nono, M1)".
type Fact struct {
	Predicate string
	AddedAt   time.Time
}

// Rule is a stored Horn clause.
type Rule struct {
	Premises   []string
	Conclusion string
	AddedAt    time.Time
}

// QueryRecord is one executed entailment query.
type QueryRecord struct {
	ID        string // ULID assigned by the caller
	Goal      string
	Mode      string // "forward" or "backward"
	Proved    bool
	Solutions int
	Elapsed   time.Duration
	AskedAt   time.Time
}
