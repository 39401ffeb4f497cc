// Package lexicon holds the closed word classes the translators key on:
// employment and marital statuses, citizenship classes, currency units, and
// income periods. The sets are fixed per translator instance; they are data,
// not behavior, so template precedence stays testable on its own.
package lexicon

import (
	"strings"

	"github.com/cognicore/acelog/pkg/acelog/config"
)

// Lexicon is an immutable set of word classes.
type Lexicon struct {
	employment  []string
	marital     []string
	citizenship []string
	currencies  []string
	periods     []string
}

// Default returns the built-in word classes of the controlled language.
func Default() *Lexicon {
	return &Lexicon{
		employment:  []string{"employed", "unemployed", "self-employed", "retired"},
		marital:     []string{"married", "single", "divorced", "widowed"},
		citizenship: []string{"German", "EU", "non-EU"},
		currencies:  []string{"euros", "dollars"},
		periods:     []string{"month", "year"},
	}
}

// FromConfig builds a lexicon from loaded configuration. Empty config fields
// keep their defaults, so a partial override file is fine.
func FromConfig(cfg *config.Lexicon) *Lexicon {
	lex := Default()
	if cfg == nil {
		return lex
	}
	if len(cfg.EmploymentStatuses) > 0 {
		lex.employment = append([]string(nil), cfg.EmploymentStatuses...)
	}
	if len(cfg.MaritalStatuses) > 0 {
		lex.marital = append([]string(nil), cfg.MaritalStatuses...)
	}
	if len(cfg.CitizenshipClasses) > 0 {
		lex.citizenship = append([]string(nil), cfg.CitizenshipClasses...)
	}
	if len(cfg.CurrencyUnits) > 0 {
		lex.currencies = append([]string(nil), cfg.CurrencyUnits...)
	}
	if len(cfg.IncomePeriods) > 0 {
		lex.periods = append([]string(nil), cfg.IncomePeriods...)
	}
	return lex
}

// EmploymentStatuses returns the employment status words.
func (l *Lexicon) EmploymentStatuses() []string { return append([]string(nil), l.employment...) }

// MaritalStatuses returns the marital status words.
func (l *Lexicon) MaritalStatuses() []string { return append([]string(nil), l.marital...) }

// CitizenshipClasses returns the citizenship class words.
func (l *Lexicon) CitizenshipClasses() []string { return append([]string(nil), l.citizenship...) }

// CurrencyUnits returns the recognized currency unit words.
func (l *Lexicon) CurrencyUnits() []string { return append([]string(nil), l.currencies...) }

// IncomePeriods returns the recognized income period words.
func (l *Lexicon) IncomePeriods() []string { return append([]string(nil), l.periods...) }

// IsEmployment reports whether word is an employment status, case-insensitively.
func (l *Lexicon) IsEmployment(word string) bool { return containsFold(l.employment, word) }

// IsMarital reports whether word is a marital status, case-insensitively.
func (l *Lexicon) IsMarital(word string) bool { return containsFold(l.marital, word) }

func containsFold(words []string, word string) bool {
	for _, w := range words {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}
