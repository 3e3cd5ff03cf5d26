// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"reflect"
	"sort"
	"testing"
)

func TestKnownCompaniesSorted(t *testing.T) {
	if !sort.StringsAreSorted(knownCompanies) {
		t.Fatal("knownCompanies must stay sorted for deterministic output")
	}
}

// The lexicon must carry the full company set; a missing entry silently
// changes classification for joint academic+industry affiliations.
func TestKnownCompaniesComplete(t *testing.T) {
	want := []string{
		"abbvie", "alexion", "alkermes", "allogene", "amgen", "astellas",
		"astrazeneca", "bayer", "biogen", "biomarin", "biontech",
		"bluebird bio", "bms", "boehringer", "bristol-myers squibb",
		"celgene", "curevac", "daiichi", "eisai", "eli lilly", "genentech",
		"gilead", "glaxosmithkline", "gsk", "incyte", "ionis", "j&j",
		"jazz", "johnson & johnson", "lilly", "merck", "moderna",
		"novartis", "novavax", "pfizer", "regeneron", "roche", "sanofi",
		"seagen", "shire", "takeda", "teva", "united therapeutics",
		"vertex", "viatris",
	}
	if !reflect.DeepEqual(knownCompanies, want) {
		t.Errorf("knownCompanies = %v, want %v", knownCompanies, want)
	}
}
