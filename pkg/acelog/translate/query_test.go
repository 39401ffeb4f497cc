package translate

import (
	"errors"
	"testing"

	"github.com/cognicore/acelog/pkg/acelog/internalerr"
)

func TestQueryTypes(t *testing.T) {
	trans := New(nil)

	tests := []struct {
		in       string
		wantType QueryType
		wantGoal string
	}{
		{"Is John happy?", QueryIsXY, "happy(john)"},
		{"Who is happy?", QueryWhoIsX, "happy(X)"},
		{"What does Mary like?", QueryWhatDoesXLike, "likes(mary, X)"},
		{"Is Hans eligible for Kindergeld?", QueryIsEligibleFor, "eligible(hans, kindergeld)"},
		{"What benefits does Hans qualify for?", QueryWhatBenefits, "eligible(hans, X)"},
		{"Which persons are eligible for Kindergeld?", QueryWhichEligible, "eligible(X, kindergeld)"},
		{"How much income does Hans earn?", QueryHowMuch, "income(hans, X, _)"},
		{"How much housing benefit does Hans receive?", QueryHowMuch, "benefit_amount(hans, housing_benefit, X)"},
	}

	for _, tt := range tests {
		gotType, gotGoal, err := trans.Query(tt.in)
		if err != nil {
			t.Errorf("Query(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if gotType != tt.wantType {
			t.Errorf("Query(%q) type = %v, want %v", tt.in, gotType, tt.wantType)
		}
		if gotGoal != tt.wantGoal {
			t.Errorf("Query(%q) goal = %q, want %q", tt.in, gotGoal, tt.wantGoal)
		}
	}
}

// More specific patterns are checked strictly before generic ones sharing a
// lead word: "Is ... eligible for ..." must never fall into plain IS_X_Y.
func TestQueryEligiblePrecedesIsXY(t *testing.T) {
	trans := New(nil)

	gotType, gotGoal, err := trans.Query("Is Hans eligible for Kindergeld?")
	if err != nil {
		t.Fatal(err)
	}
	if gotType != QueryIsEligibleFor {
		t.Errorf("type = %v, want IS_ELIGIBLE_FOR before IS_X_Y", gotType)
	}
	if gotGoal != "eligible(hans, kindergeld)" {
		t.Errorf("goal = %q", gotGoal)
	}
}

func TestQueryCaseInsensitive(t *testing.T) {
	trans := New(nil)

	gotType, gotGoal, err := trans.Query("WHO IS HAPPY?")
	if err != nil {
		t.Fatal(err)
	}
	if gotType != QueryWhoIsX || gotGoal != "happy(X)" {
		t.Errorf("got (%v, %q), want (WHO_IS_X, happy(X))", gotType, gotGoal)
	}
}

func TestQueryQuestionMarkOptional(t *testing.T) {
	trans := New(nil)

	withMark, _, err1 := trans.Query("Is John happy?")
	withoutMark, _, err2 := trans.Query("Is John happy")
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if withMark != withoutMark {
		t.Errorf("question mark changed classification: %v vs %v", withMark, withoutMark)
	}
}

func TestQueryUnsupported(t *testing.T) {
	trans := New(nil)

	unsupported := []string{
		"Where is John?",
		"When was Hans born?",
		"Why is Mary happy?",
		"Is?",
		"?",
		"",
	}

	for _, in := range unsupported {
		_, _, err := trans.Query(in)
		if !errors.Is(err, internalerr.ErrUnsupportedQuery) {
			t.Errorf("Query(%q) error = %v, want ErrUnsupportedQuery", in, err)
		}
	}
}

// Every goal carries at most the single designated answer variable X (plus
// the anonymous slot in HOW_MUCH income goals).
func TestQueryDeterminism(t *testing.T) {
	trans := New(nil)

	_, first, err := trans.Query("Who is happy?")
	if err != nil {
		t.Fatal(err)
	}
	trans.Query("Is John happy?")
	trans.Query("What does Mary like?")
	_, again, err := trans.Query("Who is happy?")
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Errorf("output changed across calls: %q then %q", first, again)
	}
}
