// Package store persists the session journal: one entry per processed line,
// pairing the original text with its translation or failure reason.
package store

import (
	"context"
	"time"
)

// Store is the interface for journal persistence.
type Store interface {
	Close() error

	// AppendEntry records one processed line.
	AppendEntry(ctx context.Context, e Entry) error

	// ListEntries returns entries in insertion order, newest last. A
	// non-positive limit returns everything.
	ListEntries(ctx context.Context, limit int) ([]Entry, error)

	// EntriesByKind returns entries of one statement kind ("fact", "rule",
	// "query") in insertion order.
	EntriesByKind(ctx context.Context, kind string, limit int) ([]Entry, error)
}

// Entry is one journaled line. Failure holds the translation failure reason
// when Translation is empty; exactly one of the two is set.
type Entry struct {
	ID          string
	Raw         string
	Kind        string
	Translation string
	QueryType   string
	Failure     string
	CreatedAt   time.Time
}
