// Package acelog translates a controlled subset of English into clauses and
// goals of a logic-programming language and drives them through an external
// inference engine.
package acelog

import (
	"context"
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/acelog/pkg/acelog/engine"
	"github.com/cognicore/acelog/pkg/acelog/lexicon"
	"github.com/cognicore/acelog/pkg/acelog/statement"
	"github.com/cognicore/acelog/pkg/acelog/store"
	"github.com/cognicore/acelog/pkg/acelog/translate"
)

// retractPatterns are the predicate shapes cleared on Reset: every predicate
// the translators can emit.
var retractPatterns = []string{
	"person(_)", "likes(_, _)", "happy(_)", "sad(_)", "tall(_)", "smart(_)",
	"young(_)", "old(_)", "has_property(_, _, _)", "residence(_, _)",
	"employment_status(_, _)", "marital_status(_, _)", "children_count(_, _)",
	"birth_date(_, _)", "income(_, _, _)", "citizenship(_, _)",
	"eligible(_, _)", "benefit_amount(_, _, _)",
}

// Session is the main facade: a translator bound to one knowledge-base
// engine, with an optional persistent journal of every processed line.
type Session struct {
	trans   *translate.Translator
	eng     engine.Engine
	journal store.Store

	mu      sync.Mutex // guards entropy
	entropy *ulid.MonotonicEntropy
}

// Options configures a Session.
type Options struct {
	Lexicon *lexicon.Lexicon // nil selects the built-in word classes
	Engine  engine.Engine
	Journal store.Store // optional
}

// New creates a Session with the given dependencies.
func New(opts Options) *Session {
	return &Session{
		trans:   translate.New(opts.Lexicon),
		eng:     opts.Engine,
		journal: opts.Journal,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Close shuts down the engine and the journal.
func (s *Session) Close() error {
	var errs []error
	if s.eng != nil {
		errs = append(errs, s.eng.Close())
	}
	if s.journal != nil {
		errs = append(errs, s.journal.Close())
	}
	return errors.Join(errs...)
}

// ParseText translates a batch of lines without touching the engine. Blank
// lines and "#" comments are skipped; one failing line never aborts the rest.
func (s *Session) ParseText(text string) []translate.Result {
	return s.trans.ParseText(text)
}

// Tell classifies and translates one line and asserts the resulting fact or
// clause into the engine. Lines that classify as queries are translated and
// journaled but not asserted. The Result is returned even on failure so the
// caller can report the original text alongside the reason.
func (s *Session) Tell(ctx context.Context, line string) (translate.Result, error) {
	res := s.trans.Translate(line)
	s.record(ctx, res)

	if res.Err != nil {
		return res, res.Err
	}
	if res.Statement.Kind == statement.KindQuery {
		return res, nil
	}

	if err := s.eng.Assert(ctx, res.Translation); err != nil {
		return res, err
	}
	return res, nil
}

// Ask translates one interrogative line into a goal and runs it against the
// engine, returning one variable binding per solution.
func (s *Session) Ask(ctx context.Context, query string) (translate.Result, []engine.Binding, error) {
	res := translate.Result{
		Statement: statement.Statement{Raw: query, Kind: statement.KindQuery},
	}
	res.QueryType, res.Translation, res.Err = s.trans.Query(query)
	s.record(ctx, res)

	if res.Err != nil {
		return res, nil, res.Err
	}

	bindings, err := s.eng.Query(ctx, res.Translation)
	if err != nil {
		return res, nil, err
	}
	return res, bindings, nil
}

// LoadText runs the batch driver over the input and asserts every
// successfully translated fact and rule. Query lines are translated and
// journaled only. Translation failures are reported per line in the results;
// an engine failure aborts the load.
func (s *Session) LoadText(ctx context.Context, text string) ([]translate.Result, error) {
	results := s.trans.ParseText(text)

	for _, res := range results {
		s.record(ctx, res)
		if res.Err != nil || res.Statement.Kind == statement.KindQuery {
			continue
		}
		if err := s.eng.Assert(ctx, res.Translation); err != nil {
			return results, err
		}
	}

	return results, nil
}

// Reset clears every predicate the translators can emit from the engine.
// Patterns whose predicate was never asserted are skipped.
func (s *Session) Reset(ctx context.Context) error {
	for _, pattern := range retractPatterns {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Unknown-predicate failures are expected on a fresh knowledge base.
		_ = s.eng.Retract(ctx, pattern)
	}
	return nil
}

// History returns the journaled entries, oldest first. Without a journal it
// returns nothing.
func (s *Session) History(ctx context.Context, limit int) ([]store.Entry, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.ListEntries(ctx, limit)
}

// record journals one result; sessions without a journal skip this.
func (s *Session) record(ctx context.Context, res translate.Result) {
	if s.journal == nil {
		return
	}

	e := store.Entry{
		ID:        s.newID(),
		Raw:       res.Statement.Raw,
		Kind:      res.Statement.Kind.String(),
		QueryType: string(res.QueryType),
		CreatedAt: time.Now().UTC(),
	}
	if res.Err != nil {
		e.Failure = res.Err.Error()
	} else {
		e.Translation = res.Translation
	}

	// Journal failures must not fail translation; the journal is advisory.
	_ = s.journal.AppendEntry(ctx, e)
}

func (s *Session) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Now(), s.entropy).String()
}
