package translate

import (
	"strings"

	"github.com/cognicore/acelog/pkg/acelog/statement"
)

// Result pairs one input line with its translation or typed failure. A
// failing line never aborts a batch; the caller receives one Result per
// non-comment line either way.
type Result struct {
	Line        int // 1-based line number within the parsed text
	Statement   statement.Statement
	Translation string    // clause, predicate application, or goal text
	QueryType   QueryType // set only for queries
	Err         error
}

// Translate classifies a single line and dispatches it to the matching
// translator.
func (t *Translator) Translate(line string) Result {
	st := statement.Classify(line)
	res := Result{Statement: st}

	switch st.Kind {
	case statement.KindFact:
		res.Translation, res.Err = t.Fact(st.Raw)
	case statement.KindRule:
		res.Translation, res.Err = t.Rule(st.Raw)
	case statement.KindQuery:
		res.QueryType, res.Translation, res.Err = t.Query(st.Raw)
	}

	return res
}

// ParseText splits input into lines, skips blank lines and "#" comments, and
// translates each remaining line, aggregating per-line results and failures.
func (t *Translator) ParseText(text string) []Result {
	var results []Result

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		res := t.Translate(trimmed)
		res.Line = i + 1
		results = append(results, res)
	}

	return results
}
