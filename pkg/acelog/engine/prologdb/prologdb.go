// Package prologdb adapts an embedded Prolog interpreter to the
// engine.Engine contract.
package prologdb

import (
	"context"
	"fmt"
	"sync"

	"github.com/ichiban/prolog"

	"github.com/cognicore/acelog/pkg/acelog/engine"
)

// DB wraps a prolog.Interpreter behind the engine interface. The interpreter
// is not safe for concurrent use, so every operation holds the mutex;
// at most one mutating operation is in flight per knowledge-base session.
type DB struct {
	mu     sync.Mutex
	interp *prolog.Interpreter
}

var _ engine.Engine = (*DB)(nil)

// New creates an empty knowledge base.
func New() *DB {
	return &DB{interp: prolog.New(nil, nil)}
}

// Assert adds a fact or clause via assertz, which keeps the predicate
// dynamic and therefore retractable.
func (db *DB) Assert(ctx context.Context, clause string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := db.runOnce(fmt.Sprintf("assertz((%s)).", clause)); err != nil {
		return fmt.Errorf("assert %q: %w", clause, err)
	}
	return nil
}

// Retract removes all clauses matching the pattern. Retracting a predicate
// that was never asserted reports an error from the interpreter; callers
// clearing a whole knowledge base tolerate that per pattern.
func (db *DB) Retract(ctx context.Context, pattern string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := db.runOnce(fmt.Sprintf("retractall(%s).", pattern)); err != nil {
		return fmt.Errorf("retract %q: %w", pattern, err)
	}
	return nil
}

// runOnce proves a goal once, discarding bindings.
func (db *DB) runOnce(goal string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	sols, err := db.interp.Query(goal)
	if err != nil {
		return err
	}
	defer sols.Close()

	sols.Next()
	return sols.Err()
}

// Query proves the goal and collects every solution's variable bindings.
func (db *DB) Query(ctx context.Context, goal string) ([]engine.Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	sols, err := db.interp.Query(goal + ".")
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", goal, err)
	}
	defer sols.Close()

	var bindings []engine.Binding
	for sols.Next() {
		scanned := make(map[string]prolog.TermString)
		if err := sols.Scan(&scanned); err != nil {
			return nil, fmt.Errorf("query %q: %w", goal, err)
		}

		b := make(engine.Binding, len(scanned))
		for name, term := range scanned {
			b[name] = string(term)
		}
		bindings = append(bindings, b)
	}
	if err := sols.Err(); err != nil {
		return nil, fmt.Errorf("query %q: %w", goal, err)
	}

	return bindings, nil
}

// Close implements engine.Engine. The interpreter holds no external
// resources.
func (db *DB) Close() error { return nil }
