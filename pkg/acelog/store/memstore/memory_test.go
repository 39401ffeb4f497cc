package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/acelog/pkg/acelog/store"
)

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	entries := []store.Entry{
		{ID: "01A", Raw: "John is a person.", Kind: "fact", Translation: "person(john)", CreatedAt: time.Now()},
		{ID: "01B", Raw: "Who is happy?", Kind: "query", Translation: "happy(X)", QueryType: "WHO_IS_X", CreatedAt: time.Now()},
		{ID: "01C", Raw: "nonsense", Kind: "fact", Failure: "unrecognized fact pattern", CreatedAt: time.Now()},
	}
	for _, e := range entries {
		if err := s.AppendEntry(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListEntries(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("entries = %d, want 3", len(got))
	}
	if got[0].ID != "01A" || got[2].Failure == "" {
		t.Errorf("insertion order or fields lost: %+v", got)
	}
}

func TestListLimit(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.AppendEntry(ctx, store.Entry{ID: id, Kind: "fact"}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListEntries(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("entries = %d, want 2", len(got))
	}
}

func TestEntriesByKind(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AppendEntry(ctx, store.Entry{ID: "1", Kind: "fact"})
	s.AppendEntry(ctx, store.Entry{ID: "2", Kind: "query"})
	s.AppendEntry(ctx, store.Entry{ID: "3", Kind: "fact"})

	facts, err := s.EntriesByKind(ctx, "fact", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(facts) != 2 || facts[0].ID != "1" || facts[1].ID != "3" {
		t.Errorf("facts = %+v", facts)
	}
}
