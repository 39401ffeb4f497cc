package entity

import (
	"errors"
	"testing"

	"github.com/cognicore/acelog/pkg/acelog/internalerr"
)

func TestNormalizeBasic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John", "john"},
		{"  John  ", "john"},
		{"New York", "new_york"},
		{"self-employed", "self_employed"},
		{"non-EU", "non_eu"},
		{"machine - learning", "machine_learning"},
		{"a  lot   of   spaces", "a_lot_of_spaces"},
		{"25", "25"},
		{"Kindergeld", "kindergeld"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if err != nil {
			t.Errorf("Normalize(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"John", "New York", "self-employed", "non-EU", "a  b   c", "x", "25", "_",
	}

	for _, in := range inputs {
		once, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", in, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)): %v", in, err)
		}
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := Normalize(in)
		if !errors.Is(err, internalerr.ErrEmptyNormalization) {
			t.Errorf("Normalize(%q) error = %v, want ErrEmptyNormalization", in, err)
		}
	}
}

func TestNormalizeIsPure(t *testing.T) {
	// Same input must yield the same output regardless of call history.
	first, _ := Normalize("Alice")
	for i := 0; i < 10; i++ {
		Normalize("Bob")
		Normalize("Carol-Anne")
	}
	again, _ := Normalize("Alice")
	if first != again {
		t.Errorf("Normalize changed output across calls: %q then %q", first, again)
	}
}
