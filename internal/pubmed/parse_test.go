// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import "testing"

func TestFormatPubDate(t *testing.T) {
	tests := []struct {
		name string
		date pubDate
		want string
	}{
		{"full date", pubDate{Year: "2024", Month: "Mar", Day: "15"}, "2024/Mar/15"},
		{"year and month", pubDate{Year: "2024", Month: "Mar"}, "2024/Mar"},
		{"year only", pubDate{Year: "2024"}, "2024"},
		{"empty", pubDate{}, ""},
		{"month without year still joins", pubDate{Month: "Jan", Day: "2"}, "Jan/2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPubDate(tt.date); got != tt.want {
				t.Errorf("formatPubDate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEmail(t *testing.T) {
	tests := []struct {
		name         string
		affiliations []string
		want         string
	}{
		{
			"trailing address",
			[]string{"Pfizer Inc., New York, NY, USA. alice@pfizer.com."},
			"alice@pfizer.com",
		},
		{
			"bracketed address",
			[]string{"Genentech, South San Francisco, CA (bob@gene.com)"},
			"bob@gene.com",
		},
		{
			"last match wins across affiliations",
			[]string{"First Lab. one@a.com", "Second Lab. two@b.com"},
			"two@b.com",
		},
		{
			"at-sign without dot ignored",
			[]string{"Ward @ East Wing, City Hospital"},
			"",
		},
		{
			"no address",
			[]string{"Harvard University, Boston, MA"},
			"",
		},
		{"no affiliations", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseEmail(tt.affiliations); got != tt.want {
				t.Errorf("parseEmail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractAuthorsNamePrecedence(t *testing.T) {
	authors := extractAuthors([]pubmedAuthor{
		{LastName: "Smith", ForeName: "Alice", Initials: "A"},
		{LastName: "Jones", Initials: "B"},
		{LastName: "Solo"},
		{CollectiveName: "The Study Group"},
		{},
	})

	want := []string{"Smith Alice", "Jones B", "Solo", "The Study Group", ""}
	if len(authors) != len(want) {
		t.Fatalf("got %d authors, want %d", len(authors), len(want))
	}
	for i, w := range want {
		if authors[i].Name != w {
			t.Errorf("authors[%d].Name = %q, want %q", i, authors[i].Name, w)
		}
	}
}
