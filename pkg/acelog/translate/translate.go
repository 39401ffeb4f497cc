// Package translate converts controlled-English statements into clauses and
// goals of the target logic-program syntax.
//
// Each translator works from an explicit, ordered table of
// (pattern, extractor) pairs consulted top-down, so pattern precedence is a
// testable artifact rather than incidental code layout. All translation is
// pure and deterministic; a Translator is safe for concurrent use.
package translate

import (
	"regexp"
	"strings"

	"github.com/cognicore/acelog/pkg/acelog/lexicon"
)

// Translator holds the compiled template tables for facts, rule conditions,
// and queries. The tables depend only on the lexicon passed at construction.
type Translator struct {
	lex        *lexicon.Lexicon
	facts      []factTemplate
	conditions []conditionTemplate
	queries    []queryTemplate
}

// New builds a translator over the given word classes. A nil lexicon selects
// the built-in defaults.
func New(lex *lexicon.Lexicon) *Translator {
	if lex == nil {
		lex = lexicon.Default()
	}
	t := &Translator{lex: lex}
	t.facts = t.factTemplates()
	t.conditions = t.conditionTemplates()
	t.queries = t.queryTemplates()
	return t
}

// alternation renders words as a regexp alternation group body.
func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// statusGoal routes a matched status word through the employment/marital
// lexicon split shared by fact and rule-condition templates.
func (t *Translator) statusGoal(subjectTerm, status string) string {
	atom := strings.ToLower(strings.ReplaceAll(status, "-", "_"))
	if t.lex.IsEmployment(status) {
		return "employment_status(" + subjectTerm + ", " + atom + ")"
	}
	return "marital_status(" + subjectTerm + ", " + atom + ")"
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// containsTerm reports whether term occurs in text as a whole word.
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	for i := 0; ; {
		j := strings.Index(text[i:], term)
		if j < 0 {
			return false
		}
		j += i
		startOK := j == 0 || !isWordChar(text[j-1])
		end := j + len(term)
		endOK := end == len(text) || !isWordChar(text[end])
		if startOK && endOK {
			return true
		}
		i = j + 1
	}
}
