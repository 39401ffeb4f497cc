// Package sqlite implements the journal store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/acelog/pkg/acelog/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite journal with WAL mode enabled, creating the schema if
// needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL improves concurrency between the appending session and readers.
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

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	raw TEXT NOT NULL,
	kind TEXT NOT NULL,
	translation TEXT NOT NULL DEFAULT '',
	query_type TEXT NOT NULL DEFAULT '',
	failure TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// AppendEntry records one processed line.
func (s *sqliteStore) AppendEntry(ctx context.Context, e store.Entry) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO entries (id, raw, kind, translation, query_type, failure, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Raw, e.Kind, e.Translation, e.QueryType, e.Failure,
		e.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// ListEntries returns entries in insertion order. Entry IDs are ULIDs, so
// lexical ID order is insertion order.
func (s *sqliteStore) ListEntries(ctx context.Context, limit int) ([]store.Entry, error) {
	return s.query(ctx, `
SELECT id, raw, kind, translation, query_type, failure, created_at
FROM entries ORDER BY id`, nil, limit)
}

// EntriesByKind returns entries of one statement kind in insertion order.
func (s *sqliteStore) EntriesByKind(ctx context.Context, kind string, limit int) ([]store.Entry, error) {
	return s.query(ctx, `
SELECT id, raw, kind, translation, query_type, failure, created_at
FROM entries WHERE kind = ? ORDER BY id`, []any{kind}, limit)
}

func (s *sqliteStore) query(ctx context.Context, q string, args []any, limit int) ([]store.Entry, error) {
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []store.Entry
	for rows.Next() {
		var e store.Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Raw, &e.Kind, &e.Translation, &e.QueryType, &e.Failure, &createdAt); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
