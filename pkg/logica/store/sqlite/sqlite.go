package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/logica/pkg/logica/internalerr"
	"github.com/cognicore/logica/pkg/logica/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and the
// schema initialized.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS facts (
	predicate TEXT PRIMARY KEY,
	added_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS rules (
	premises TEXT NOT NULL,
	conclusion TEXT NOT NULL,
	added_at TEXT NOT NULL,
	UNIQUE(premises, conclusion)
);

CREATE TABLE IF NOT EXISTS queries (
	id TEXT PRIMARY KEY,
	goal TEXT NOT NULL,
	mode TEXT NOT NULL,
	proved INTEGER NOT NULL,
	solutions INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	asked_at TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveFact inserts a fact. Re-saving leaves the table unchanged and
// reports ErrDuplicate.
func (s *sqliteStore) SaveFact(ctx context.Context, f store.Fact) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO facts (predicate, added_at) VALUES (?, ?)
		 ON CONFLICT(predicate) DO NOTHING`,
		f.Predicate, f.AddedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return err
	}
	return duplicateIfNoRows(res, "fact "+f.Predicate)
}

// ListFacts returns all stored facts ordered by insertion time.
func (s *sqliteStore) ListFacts(ctx context.Context) ([]store.Fact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT predicate, added_at FROM facts ORDER BY added_at, predicate`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Fact
	for rows.Next() {
		var f store.Fact
		var addedAt string
		if err := rows.Scan(&f.Predicate, &addedAt); err != nil {
			return nil, err
		}
		f.AddedAt, _ = time.Parse(time.RFC3339Nano, addedAt)
		out = append(out, f)
	}
	return out, rows.Err()
}

// SaveRule inserts a rule. Re-saving leaves the table unchanged and
// reports ErrDuplicate. Premises are stored joined by "|" since the
// text syntax never contains that character.
func (s *sqliteStore) SaveRule(ctx context.Context, r store.Rule) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rules (premises, conclusion, added_at) VALUES (?, ?, ?)
		 ON CONFLICT(premises, conclusion) DO NOTHING`,
		strings.Join(r.Premises, "|"), r.Conclusion,
		r.AddedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return err
	}
	return duplicateIfNoRows(res, "rule "+r.Conclusion)
}

// duplicateIfNoRows turns a conflict-skipped insert into ErrDuplicate.
func duplicateIfNoRows(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, internalerr.ErrDuplicate)
	}
	return nil
}

// ListRules returns all stored rules ordered by insertion time.
func (s *sqliteStore) ListRules(ctx context.Context) ([]store.Rule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT premises, conclusion, added_at FROM rules ORDER BY added_at, conclusion`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Rule
	for rows.Next() {
		var premises, addedAt string
		var r store.Rule
		if err := rows.Scan(&premises, &r.Conclusion, &addedAt); err != nil {
			return nil, err
		}
		if premises != "" {
			r.Premises = strings.Split(premises, "|")
		}
		r.AddedAt, _ = time.Parse(time.RFC3339Nano, addedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveQuery inserts a query-log record.
func (s *sqliteStore) SaveQuery(ctx context.Context, q store.QueryRecord) error {
	proved := 0
	if q.Proved {
		proved = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (id, goal, mode, proved, solutions, elapsed_ns, asked_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Goal, q.Mode, proved, q.Solutions, q.Elapsed.Nanoseconds(),
		q.AskedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// ListQueries returns the most recent records first, up to limit.
func (s *sqliteStore) ListQueries(ctx context.Context, limit int) ([]store.QueryRecord, error) {
	// ULIDs sort lexicographically by creation time, so id ordering is
	// chronological.
	query := `SELECT id, goal, mode, proved, solutions, elapsed_ns, asked_at
		  FROM queries ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.QueryRecord
	for rows.Next() {
		var q store.QueryRecord
		var proved int
		var elapsed int64
		var askedAt string
		if err := rows.Scan(&q.ID, &q.Goal, &q.Mode, &proved, &q.Solutions, &elapsed, &askedAt); err != nil {
			return nil, err
		}
		q.Proved = proved != 0
		q.Elapsed = time.Duration(elapsed)
		q.AskedAt, _ = time.Parse(time.RFC3339Nano, askedAt)
		out = append(out, q)
	}
	return out, rows.Err()
}
