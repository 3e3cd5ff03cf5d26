// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"reflect"
	"testing"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

func TestAssemblePapersSearchOrder(t *testing.T) {
	ids := []string{"1", "2", "3"}
	cached := map[string]types.Paper{
		"2": {PubmedID: "2", Title: "cached"},
	}
	fetched := []types.Paper{
		{PubmedID: "3", Title: "fetched three"},
		{PubmedID: "1", Title: "fetched one"},
	}

	got := assemblePapers(ids, cached, fetched)
	want := []string{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("assemblePapers returned %d papers, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].PubmedID != id {
			t.Errorf("papers[%d].PubmedID = %q, want %q", i, got[i].PubmedID, id)
		}
	}
	if got[1].Title != "cached" {
		t.Errorf("papers[1].Title = %q, want cached record", got[1].Title)
	}
}

func TestAssemblePapersKeepsUnmatchedFetched(t *testing.T) {
	// A record whose details could not be extracted carries PMID
	// "unknown" and matches no searched ID; it must still be kept,
	// after the ordered results.
	ids := []string{"1", "2"}
	fetched := []types.Paper{
		{PubmedID: "1", Title: "fetched one"},
		{PubmedID: "unknown", Title: "Error extracting paper details", Authors: []types.Author{}},
	}

	got := assemblePapers(ids, nil, fetched)
	wantIDs := []string{"1", "unknown"}
	gotIDs := make([]string, len(got))
	for i, p := range got {
		gotIDs[i] = p.PubmedID
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("assemblePapers order = %v, want %v", gotIDs, wantIDs)
	}
}

func TestAssemblePapersEmptyFetch(t *testing.T) {
	cached := map[string]types.Paper{
		"1": {PubmedID: "1"},
		"2": {PubmedID: "2"},
	}
	got := assemblePapers([]string{"2", "1"}, cached, nil)
	if len(got) != 2 || got[0].PubmedID != "2" || got[1].PubmedID != "1" {
		t.Errorf("assemblePapers = %+v, want cached records in search order", got)
	}
}
