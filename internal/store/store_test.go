// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePaper(pmid string) types.Paper {
	return types.Paper{
		PubmedID:        pmid,
		Title:           "A trial of a drug",
		PublicationDate: "2024/Mar/15",
		Abstract:        "Background text.",
		Authors: []types.Author{
			{Name: "Smith Alice", Affiliations: []string{"Pfizer Inc., New York"}, Email: "a@pfizer.com"},
			{Name: "Jones B", Affiliations: []string{"Harvard University"}},
		},
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	want := samplePaper("12345678")
	if err := s.Put(ctx, []types.Paper{want, samplePaper("22222222")}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, []string{"12345678"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d papers, want 1", len(got))
	}
	if !reflect.DeepEqual(got["12345678"], want) {
		t.Errorf("cached paper mismatch:\n got %+v\nwant %+v", got["12345678"], want)
	}
}

func TestGetUnknownPMIDsAbsent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, []types.Paper{samplePaper("1")}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, []string{"1", "404"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d papers, want 1", len(got))
	}
	if _, ok := got["404"]; ok {
		t.Error("unknown PMID must be absent from result")
	}
}

func TestGetEmptyInput(t *testing.T) {
	s := testStore(t)
	got, err := s.Get(context.Background(), nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d papers, want 0", len(got))
	}
}

func TestPutReplacesExisting(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p := samplePaper("1")
	if err := s.Put(ctx, []types.Paper{p}); err != nil {
		t.Fatal(err)
	}
	p.Title = "Updated title"
	if err := s.Put(ctx, []types.Paper{p}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, []string{"1"})
	if err != nil {
		t.Fatal(err)
	}
	if got["1"].Title != "Updated title" {
		t.Errorf("Title = %q, want %q", got["1"].Title, "Updated title")
	}
	if n, _ := s.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestCountAndClear(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, []types.Paper{samplePaper("1"), samplePaper("2")}); err != nil {
		t.Fatal(err)
	}
	if n, err := s.Count(ctx); err != nil || n != 2 {
		t.Errorf("Count = %d (%v), want 2", n, err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, err := s.Count(ctx); err != nil || n != 0 {
		t.Errorf("Count after Clear = %d (%v), want 0", n, err)
	}
}
