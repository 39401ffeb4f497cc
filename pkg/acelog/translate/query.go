package translate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cognicore/acelog/pkg/acelog/entity"
	"github.com/cognicore/acelog/pkg/acelog/internalerr"
)

// QueryType tags each recognized interrogative shape with exactly one
// goal-construction rule.
type QueryType string

const (
	QueryIsXY          QueryType = "IS_X_Y"
	QueryWhoIsX        QueryType = "WHO_IS_X"
	QueryWhatDoesXLike QueryType = "WHAT_DOES_X_LIKE"
	QueryIsEligibleFor QueryType = "IS_ELIGIBLE_FOR"
	QueryWhatBenefits  QueryType = "WHAT_BENEFITS"
	QueryWhichEligible QueryType = "WHICH_ELIGIBLE"
	QueryHowMuch       QueryType = "HOW_MUCH"
)

// queryTemplate pairs an interrogative pattern with its type and goal
// builder. Patterns are matched against the lowercased query text, so
// matching is case-insensitive throughout.
type queryTemplate struct {
	re    *regexp.Regexp
	qtype QueryType
	build func(m []string) (string, error)
}

// queryTemplates builds the prioritized dispatch table. More specific
// patterns come strictly before generic ones sharing a lead word:
// "Is ... eligible for ..." must be tried before plain "Is ... ...".
func (t *Translator) queryTemplates() []queryTemplate {
	return []queryTemplate{
		{
			re:    regexp.MustCompile(`^is (.+) eligible for (.+)$`),
			qtype: QueryIsEligibleFor,
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				benefit, err := entity.Normalize(m[2])
				if err != nil {
					return "", err
				}
				return "eligible(" + e + ", " + benefit + ")", nil
			},
		},
		{
			re:    regexp.MustCompile(`^is ([a-z][a-z0-9_]*) ([a-z][a-z0-9_]*)$`),
			qtype: QueryIsXY,
			build: func(m []string) (string, error) {
				return m[2] + "(" + m[1] + ")", nil
			},
		},
		{
			re:    regexp.MustCompile(`^who is (.+)$`),
			qtype: QueryWhoIsX,
			build: func(m []string) (string, error) {
				prop, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				return prop + "(X)", nil
			},
		},
		{
			re:    regexp.MustCompile(`^what does ([a-z][a-z0-9_]*) like$`),
			qtype: QueryWhatDoesXLike,
			build: func(m []string) (string, error) {
				return "likes(" + m[1] + ", X)", nil
			},
		},
		{
			re:    regexp.MustCompile(`^what benefits does (.+) qualify for$`),
			qtype: QueryWhatBenefits,
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				return "eligible(" + e + ", X)", nil
			},
		},
		{
			re:    regexp.MustCompile(`^which (.+) are eligible for (.+)$`),
			qtype: QueryWhichEligible,
			build: func(m []string) (string, error) {
				benefit, err := entity.Normalize(m[2])
				if err != nil {
					return "", err
				}
				return "eligible(X, " + benefit + ")", nil
			},
		},
		{
			re:    regexp.MustCompile(`^how much (.+) does (.+) (receive|earn)$`),
			qtype: QueryHowMuch,
			build: func(m []string) (string, error) {
				kind, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				e, err := entity.Normalize(m[2])
				if err != nil {
					return "", err
				}
				if m[3] == "earn" {
					return "income(" + e + ", X, _)", nil
				}
				return "benefit_amount(" + e + ", " + kind + ", X)", nil
			},
		},
	}
}

// Query classifies an interrogative statement and produces a goal with
// exactly one free answer variable X. The trailing question mark is optional.
func (t *Translator) Query(text string) (QueryType, string, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "?"))
	lower := strings.ToLower(s)

	for _, tpl := range t.queries {
		m := tpl.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		goal, err := tpl.build(m)
		if err != nil {
			return "", "", fmt.Errorf("query %q: %w", text, err)
		}
		return tpl.qtype, goal, nil
	}

	return "", "", fmt.Errorf("query %q: %w", text, internalerr.ErrUnsupportedQuery)
}
