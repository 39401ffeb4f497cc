// Package statement classifies one input line as a fact, rule, or query.
package statement

import (
	"regexp"
	"strings"
)

// Kind tags a statement with the translator that should handle it.
type Kind int

const (
	KindFact Kind = iota
	KindRule
	KindQuery
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFact:
		return "fact"
	case KindRule:
		return "rule"
	case KindQuery:
		return "query"
	}
	return "unknown"
}

// Statement pairs a raw input line with its classified kind. It is created
// once per line and consumed immediately by the matching translator.
type Statement struct {
	Raw  string
	Kind Kind
}

var (
	queryLead  = regexp.MustCompile(`(?i)^(is|are|does|do|who|what|when|where|why|how)\s`)
	ruleIfWord = regexp.MustCompile(`(?i)\sif\s`)
	factShape  = regexp.MustCompile(`^[A-Z][a-zA-Z0-9_-]+ (is|are|has|have) .+\.$`)
)

// Classify labels a line as fact, rule, or query. It is total: every input,
// including the empty string, yields a Statement. Precedence is
// query > rule > fact, with fact as the fallback (a trailing period is
// appended when absent). Lines holding several sentences are classified as a
// single statement by whichever rule matches first; that ambiguity is
// deliberate and documented rather than corrected.
func Classify(line string) Statement {
	text := strings.TrimSpace(line)
	lower := strings.ToLower(text)

	switch {
	case strings.HasSuffix(text, "?") || queryLead.MatchString(text):
		return Statement{Raw: text, Kind: KindQuery}

	case ruleIfWord.MatchString(text),
		strings.HasPrefix(lower, "if ") && strings.Contains(lower, " then "):
		return Statement{Raw: text, Kind: KindRule}

	case factShape.MatchString(text) || strings.HasSuffix(text, "."):
		return Statement{Raw: text, Kind: KindFact}

	default:
		return Statement{Raw: text + ".", Kind: KindFact}
	}
}
