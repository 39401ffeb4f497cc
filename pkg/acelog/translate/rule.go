package translate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cognicore/acelog/pkg/acelog/entity"
	"github.com/cognicore/acelog/pkg/acelog/internalerr"
)

var (
	infixIf   = regexp.MustCompile(`(?i)\s+if\s+`)
	infixThen = regexp.MustCompile(`(?i)\s+then\s+`)
	splitAnd  = regexp.MustCompile(`(?i)\s+and\s+`)
	splitOr   = regexp.MustCompile(`(?i)\s+or\s+`)

	headEligible = regexp.MustCompile(`^(\S+) is eligible for (.+)$`)
	headProperty = regexp.MustCompile(`^(\S+) is ([a-zA-Z][a-zA-Z0-9_]*)$`)
)

// comparisonOps maps the counted-children phrasing to goal operators.
var comparisonOps = map[string]string{
	"more than":  ">",
	"fewer than": "<",
	"at least":   ">=",
	"exactly":    "=:=",
}

// conditionTemplate pairs an atomic-condition pattern with its goal builder.
// The subject term arrives already resolved against the rule's symbol table.
type conditionTemplate struct {
	re    *regexp.Regexp
	build func(m []string, subject string) (string, error)
}

func (t *Translator) conditionTemplates() []conditionTemplate {
	statuses := alternation(append(t.lex.EmploymentStatuses(), t.lex.MaritalStatuses()...))

	return []conditionTemplate{
		// <S> has (more than|fewer than|at least|exactly) <N> child(ren)
		{
			re: regexp.MustCompile(`^(\S+) has (more than|fewer than|at least|exactly) (\d+) (?:child|children)$`),
			build: func(m []string, subject string) (string, error) {
				op := comparisonOps[strings.ToLower(m[2])]
				return "children_count(" + subject + ", Count), Count " + op + " " + m[3], nil
			},
		},
		// <S> has <citizenship-class> citizenship
		{
			re: regexp.MustCompile(`^(\S+) has (` + alternation(t.lex.CitizenshipClasses()) + `) citizenship$`),
			build: func(m []string, subject string) (string, error) {
				return "citizenship(" + subject + ", " + entity.MustNormalize(m[2]) + ")", nil
			},
		},
		// <S> lives in <Place>
		{
			re: regexp.MustCompile(`^(\S+) lives in (.+)$`),
			build: func(m []string, subject string) (string, error) {
				place, err := entity.Normalize(m[2])
				if err != nil {
					return "", err
				}
				return "residence(" + subject + ", " + place + ")", nil
			},
		},
		// <S> is <employment/marital-status>
		{
			re: regexp.MustCompile(`^(\S+) is (` + statuses + `)$`),
			build: func(m []string, subject string) (string, error) {
				return t.statusGoal(subject, m[2]), nil
			},
		},
		// <S> likes <Object>
		{
			re: regexp.MustCompile(`^(\S+) likes (.+)$`),
			build: func(m []string, subject string) (string, error) {
				obj, err := entity.Normalize(m[2])
				if err != nil {
					return "", err
				}
				return "likes(" + subject + ", " + obj + ")", nil
			},
		},
		// <S> is <Property>
		{
			re: regexp.MustCompile(`^(\S+) is ([a-zA-Z][a-zA-Z0-9_]*)$`),
			build: func(m []string, subject string) (string, error) {
				return entity.MustNormalize(m[2]) + "(" + subject + ")", nil
			},
		},
	}
}

// symbolTable maps each condition subject token (lowercased) to its rendered
// term: the rule's head Variable or a ground atom. It is built once per rule,
// before any goal text is generated, so the variable-or-ground decision is
// made in exactly one place.
type symbolTable map[string]string

func buildSymbols(variable string, conditions []string) (symbolTable, error) {
	syms := make(symbolTable, len(conditions))
	for _, cond := range conditions {
		fields := strings.Fields(cond)
		if len(fields) == 0 {
			continue
		}
		subject := fields[0]
		key := strings.ToLower(subject)
		if _, seen := syms[key]; seen {
			continue
		}
		if strings.EqualFold(subject, variable) {
			syms[key] = variable
			continue
		}
		atom, err := entity.Normalize(subject)
		if err != nil {
			return nil, err
		}
		syms[key] = atom
	}
	return syms, nil
}

// Rule converts a rule statement into a clause "head :- body".
func (t *Translator) Rule(text string) (string, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "."))
	lower := strings.ToLower(s)

	hasInfix := infixIf.MatchString(s)
	hasPrefix := strings.HasPrefix(lower, "if ") && strings.Contains(lower, " then ")

	var conclusion, condition string
	switch {
	case hasInfix && hasPrefix:
		return "", fmt.Errorf("rule %q: %w", text, internalerr.ErrAmbiguousSeparator)

	case hasInfix:
		parts := infixIf.Split(s, -1)
		if len(parts) != 2 {
			return "", fmt.Errorf("rule %q: %w", text, internalerr.ErrMalformedRule)
		}
		conclusion, condition = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	case hasPrefix:
		parts := infixThen.Split(strings.TrimSpace(s[len("if "):]), -1)
		if len(parts) != 2 {
			return "", fmt.Errorf("rule %q: %w", text, internalerr.ErrMalformedRule)
		}
		condition, conclusion = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	default:
		return "", fmt.Errorf("rule %q: %w", text, internalerr.ErrMalformedRule)
	}

	if conclusion == "" || condition == "" {
		return "", fmt.Errorf("rule %q: %w", text, internalerr.ErrMalformedRule)
	}

	head, variable, err := t.parseHead(conclusion)
	if err != nil {
		return "", fmt.Errorf("rule %q: %w", text, err)
	}

	body, err := t.parseBody(condition, variable)
	if err != nil {
		return "", fmt.Errorf("rule %q: %w", text, err)
	}

	// A head variable that never occurs in the body would translate into a
	// clause whose head can never be bound; reject it instead.
	if !containsTerm(body, variable) {
		return "", fmt.Errorf("rule %q: %w", text, internalerr.ErrUnboundHeadVariable)
	}

	return head + " :- " + body, nil
}

// parseHead matches the conclusion against the head templates, most specific
// first. The returned variable is the conclusion subject upper-cased
// verbatim, e.g. "Someone" becomes "SOMEONE".
func (t *Translator) parseHead(conclusion string) (head, variable string, err error) {
	if m := headEligible.FindStringSubmatch(conclusion); m != nil {
		variable = strings.ToUpper(m[1])
		benefit, err := entity.Normalize(m[2])
		if err != nil {
			return "", "", err
		}
		return "eligible(" + variable + ", " + benefit + ")", variable, nil
	}

	if m := headProperty.FindStringSubmatch(conclusion); m != nil {
		variable = strings.ToUpper(m[1])
		return entity.MustNormalize(m[2]) + "(" + variable + ")", variable, nil
	}

	return "", "", internalerr.ErrMalformedRule
}

// parseBody splits the condition string into atomic conditions joined
// uniformly by conjunction or disjunction, never a mix of both.
func (t *Translator) parseBody(condition, variable string) (string, error) {
	lower := strings.ToLower(condition)
	hasAnd := strings.Contains(lower, " and ")
	hasOr := strings.Contains(lower, " or ")

	var parts []string
	var joiner string
	switch {
	case hasAnd && hasOr:
		// Operator precedence between and/or is deliberately not guessed.
		return "", internalerr.ErrMalformedRule
	case hasAnd:
		parts, joiner = splitAnd.Split(condition, -1), ", "
	case hasOr:
		parts, joiner = splitOr.Split(condition, -1), "; "
	default:
		parts, joiner = []string{condition}, ", "
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	syms, err := buildSymbols(variable, parts)
	if err != nil {
		return "", err
	}

	goals := make([]string, 0, len(parts))
	for _, part := range parts {
		goal, err := t.translateCondition(part, syms)
		if err != nil {
			return "", err
		}
		goals = append(goals, goal)
	}

	return strings.Join(goals, joiner), nil
}

// translateCondition renders one atomic condition against the ordered
// condition table, with the subject looked up in the rule's symbol table.
func (t *Translator) translateCondition(condition string, syms symbolTable) (string, error) {
	for _, tpl := range t.conditions {
		m := tpl.re.FindStringSubmatch(condition)
		if m == nil {
			continue
		}
		subject, ok := syms[strings.ToLower(m[1])]
		if !ok {
			atom, err := entity.Normalize(m[1])
			if err != nil {
				return "", err
			}
			subject = atom
		}
		return tpl.build(m, subject)
	}
	return "", internalerr.ErrMalformedRule
}
