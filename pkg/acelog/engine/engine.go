// Package engine defines the inference-engine collaborator consumed by the
// translator: a black box that stores clause text and answers goal text.
package engine

import "context"

// Binding maps variable names of a goal to the terms they were bound to in
// one solution.
type Binding map[string]string

// Engine is the contract toward the external logic-programming runtime. The
// translator only ever hands it syntactically valid clause/goal text:
// functor(arg1, ..., argN), ":-" clauses, "," conjunction, ";" disjunction.
//
// Implementations serialize mutating operations themselves; the caller makes
// no ordering guarantee beyond the order statements are fed in.
type Engine interface {
	// Assert adds a fact or clause to the knowledge base.
	Assert(ctx context.Context, clause string) error

	// Retract removes every clause matching the given pattern,
	// e.g. "likes(_, _)".
	Retract(ctx context.Context, pattern string) error

	// Query proves the goal and returns one Binding per solution. A provable
	// goal without variables yields a single empty Binding; an unprovable
	// goal yields none.
	Query(ctx context.Context, goal string) ([]Binding, error)

	Close() error
}
