// Package config loads acelog configuration files.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon represents the closed-word-class configuration. Empty fields fall
// back to the built-in defaults when handed to lexicon.FromConfig.
type Lexicon struct {
	EmploymentStatuses []string `yaml:"employment_statuses"`
	MaritalStatuses    []string `yaml:"marital_statuses"`
	CitizenshipClasses []string `yaml:"citizenship_classes"`
	CurrencyUnits      []string `yaml:"currency_units"`
	IncomePeriods      []string `yaml:"income_periods"`
}

// LoadLexicon loads word-class overrides from a YAML file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}

	return &lex, nil
}
