package translate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cognicore/acelog/pkg/acelog/entity"
	"github.com/cognicore/acelog/pkg/acelog/internalerr"
)

// factTemplate pairs a structural pattern with its predicate builder.
type factTemplate struct {
	re    *regexp.Regexp
	build func(m []string) (string, error)
}

// factTemplates builds the ordered fact table. First structural match wins;
// there is no backtracking to a later template once one matches.
func (t *Translator) factTemplates() []factTemplate {
	statuses := alternation(append(t.lex.EmploymentStatuses(), t.lex.MaritalStatuses()...))

	return []factTemplate{
		// <E> is a <Category>
		{
			re: regexp.MustCompile(`^(.+) is a ([a-zA-Z][a-zA-Z0-9_]*)`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				return entity.MustNormalize(m[2]) + "(" + e + ")", nil
			},
		},
		// <E> is <employment/marital-status>
		{
			re: regexp.MustCompile(`^(.+) is (` + statuses + `)$`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				return t.statusGoal(e, m[2]), nil
			},
		},
		// <E> is <Property>
		{
			re: regexp.MustCompile(`^(.+) is ([a-zA-Z][a-zA-Z0-9_]*)`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				return entity.MustNormalize(m[2]) + "(" + e + ")", nil
			},
		},
		// <E> likes <Object>
		{
			re: regexp.MustCompile(`^(.+) likes (.+)$`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				obj, err := entity.Normalize(m[2])
				if err != nil {
					return "", err
				}
				return "likes(" + e + ", " + obj + ")", nil
			},
		},
		// <E> earns <Number> <currency> per <period>
		{
			re: regexp.MustCompile(`^(.+) earns (\d+(?:\.\d+)?) (?:` +
				alternation(t.lex.CurrencyUnits()) + `) per (` +
				alternation(t.lex.IncomePeriods()) + `)$`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				// Amount passes through unnormalized.
				return "income(" + e + ", " + m[2] + ", " + entity.MustNormalize(m[3]) + ")", nil
			},
		},
		// <E> was born on YYYY-MM-DD
		{
			re: regexp.MustCompile(`^(.+) was born on (\d{4})-(\d{2})-(\d{2})$`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				return "birth_date(" + e + ", date(" + m[2] + ", " + m[3] + ", " + m[4] + "))", nil
			},
		},
		// <E> lives in <Place>
		{
			re: regexp.MustCompile(`^(.+) lives in (.+)$`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				place, err := entity.Normalize(m[2])
				if err != nil {
					return "", err
				}
				return "residence(" + e + ", " + place + ")", nil
			},
		},
		// <E> has <N> child(ren)
		{
			re: regexp.MustCompile(`^(.+) has (\d+) (?:child|children)$`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				return "children_count(" + e + ", " + m[2] + ")", nil
			},
		},
		// <E> has <citizenship-class> citizenship
		{
			re: regexp.MustCompile(`^(.+) has (` + alternation(t.lex.CitizenshipClasses()) + `) citizenship$`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				return "citizenship(" + e + ", " + entity.MustNormalize(m[2]) + ")", nil
			},
		},
		// <E> has <Property> <Value>
		{
			re: regexp.MustCompile(`^(.+) has (.+) (.+)$`),
			build: func(m []string) (string, error) {
				e, err := entity.Normalize(m[1])
				if err != nil {
					return "", err
				}
				prop, err := entity.Normalize(m[2])
				if err != nil {
					return "", err
				}
				val, err := entity.Normalize(m[3])
				if err != nil {
					return "", err
				}
				return "has_property(" + e + ", " + prop + ", " + val + ")", nil
			},
		},
	}
}

// Fact converts a fact statement into a single predicate application.
// Templates are tried in table order; the first structural match wins even if
// its extraction then fails.
func (t *Translator) Fact(text string) (string, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "."))

	for _, tpl := range t.facts {
		if m := tpl.re.FindStringSubmatch(s); m != nil {
			return tpl.build(m)
		}
	}

	return "", fmt.Errorf("fact %q: %w", text, internalerr.ErrUnrecognizedFact)
}
