// Package memstore is an in-memory journal store for tests and throwaway
// sessions.
package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/acelog/pkg/acelog/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	entries []store.Entry
}

// New creates an empty in-memory journal.
func New() *Store {
	return &Store{}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// AppendEntry records one processed line.
func (s *Store) AppendEntry(ctx context.Context, e store.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	return nil
}

// ListEntries returns entries in insertion order.
func (s *Store) ListEntries(ctx context.Context, limit int) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return capped(append([]store.Entry(nil), s.entries...), limit), nil
}

// EntriesByKind returns entries of one statement kind in insertion order.
func (s *Store) EntriesByKind(ctx context.Context, kind string, limit int) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Entry
	for _, e := range s.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return capped(out, limit), nil
}

func capped(entries []store.Entry, limit int) []store.Entry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
