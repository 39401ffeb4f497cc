package prologdb

import (
	"context"
	"testing"
)

func TestAssertAndQuery(t *testing.T) {
	ctx := context.Background()
	db := New()
	defer db.Close()

	if err := db.Assert(ctx, "likes(john, chocolate)"); err != nil {
		t.Fatal(err)
	}
	if err := db.Assert(ctx, "likes(mary, tea)"); err != nil {
		t.Fatal(err)
	}
	if err := db.Assert(ctx, "happy(X) :- likes(X, chocolate)"); err != nil {
		t.Fatal(err)
	}

	bindings, err := db.Query(ctx, "happy(X)")
	if err != nil {
		t.Fatal(err)
	}
	if len(bindings) != 1 {
		t.Fatalf("bindings = %v, want one solution", bindings)
	}
	if bindings[0]["X"] != "john" {
		t.Errorf("X = %q, want john", bindings[0]["X"])
	}
}

func TestGroundQuery(t *testing.T) {
	ctx := context.Background()
	db := New()
	defer db.Close()

	if err := db.Assert(ctx, "person(john)"); err != nil {
		t.Fatal(err)
	}

	// Provable ground goal: one solution, no bindings.
	bindings, err := db.Query(ctx, "person(john)")
	if err != nil {
		t.Fatal(err)
	}
	if len(bindings) != 1 || len(bindings[0]) != 0 {
		t.Errorf("bindings = %v, want one empty binding", bindings)
	}

	// Unprovable ground goal: no solutions.
	bindings, err = db.Query(ctx, "person(mary)")
	if err != nil {
		t.Fatal(err)
	}
	if len(bindings) != 0 {
		t.Errorf("bindings = %v, want none", bindings)
	}
}

func TestRetract(t *testing.T) {
	ctx := context.Background()
	db := New()
	defer db.Close()

	if err := db.Assert(ctx, "likes(john, chocolate)"); err != nil {
		t.Fatal(err)
	}
	if err := db.Retract(ctx, "likes(_, _)"); err != nil {
		t.Fatal(err)
	}

	bindings, err := db.Query(ctx, "likes(X, Y)")
	if err != nil {
		t.Fatal(err)
	}
	if len(bindings) != 0 {
		t.Errorf("bindings after retract = %v, want none", bindings)
	}
}

func TestQueryComparisonGoal(t *testing.T) {
	ctx := context.Background()
	db := New()
	defer db.Close()

	if err := db.Assert(ctx, "children_count(hans, 2)"); err != nil {
		t.Fatal(err)
	}
	if err := db.Assert(ctx, "eligible(X, kindergeld) :- children_count(X, Count), Count > 0"); err != nil {
		t.Fatal(err)
	}

	bindings, err := db.Query(ctx, "eligible(X, kindergeld)")
	if err != nil {
		t.Fatal(err)
	}
	if len(bindings) != 1 || bindings[0]["X"] != "hans" {
		t.Errorf("bindings = %v, want X = hans", bindings)
	}
}

func TestCancelledContext(t *testing.T) {
	db := New()
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := db.Assert(ctx, "person(john)"); err == nil {
		t.Error("Assert with cancelled context should fail")
	}
}
