package lexicon

import (
	"testing"

	"github.com/cognicore/acelog/pkg/acelog/config"
)

func TestDefaultClasses(t *testing.T) {
	lex := Default()

	if got := lex.EmploymentStatuses(); len(got) != 4 || got[0] != "employed" {
		t.Errorf("EmploymentStatuses = %v", got)
	}
	if got := lex.CitizenshipClasses(); len(got) != 3 || got[2] != "non-EU" {
		t.Errorf("CitizenshipClasses = %v", got)
	}
	if got := lex.CurrencyUnits(); len(got) != 2 {
		t.Errorf("CurrencyUnits = %v", got)
	}
}

func TestIsEmploymentFoldsCase(t *testing.T) {
	lex := Default()

	for _, word := range []string{"employed", "Employed", "SELF-EMPLOYED"} {
		if !lex.IsEmployment(word) {
			t.Errorf("IsEmployment(%q) = false", word)
		}
	}
	if lex.IsEmployment("married") {
		t.Error("married is a marital status, not employment")
	}
	if !lex.IsMarital("Widowed") {
		t.Error("IsMarital(Widowed) = false")
	}
}

func TestFromConfigPartialOverride(t *testing.T) {
	cfg := &config.Lexicon{
		CurrencyUnits: []string{"euros", "pounds"},
	}
	lex := FromConfig(cfg)

	if got := lex.CurrencyUnits(); len(got) != 2 || got[1] != "pounds" {
		t.Errorf("CurrencyUnits = %v, want override applied", got)
	}
	// Untouched classes keep their defaults.
	if !lex.IsEmployment("retired") {
		t.Error("default employment statuses should survive a partial override")
	}
}

func TestFromConfigNil(t *testing.T) {
	lex := FromConfig(nil)
	if !lex.IsMarital("single") {
		t.Error("nil config should yield the default lexicon")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	lex := Default()

	words := lex.EmploymentStatuses()
	words[0] = "mangled"

	if !lex.IsEmployment("employed") {
		t.Error("mutating the returned slice must not change the lexicon")
	}
}
