// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// companySuffixRe matches a capitalized name followed by an industry
// suffix word, e.g. "XYZ Pharmaceuticals" or "Acme Biotech". The whole
// span including the suffix is the company name.
var companySuffixRe = regexp.MustCompile(`([A-Z][a-zA-Z0-9\s&\-]+)\s+(?:Pharma(?:ceutical)?s?|Biotech|Therapeutics|Biosciences|Labs?|Laboratories)`)

// corporateSuffixRe matches a capitalized name followed by a corporate
// form, e.g. "Acme, Inc.". Only the name portion is the company name.
var corporateSuffixRe = regexp.MustCompile(`([A-Z][a-zA-Z0-9\s&\-]+)(?:,\s+Inc\.?|,\s+LLC\.?|,\s+Ltd\.?|,\s+Corp\.?|,\s+Corporation)`)

// extractCompany attempts to pull a company name out of an affiliation
// string. The known-company lexicon wins over pattern extraction; an
// empty string means nothing recognizable was found.
func extractCompany(affiliation string) string {
	lower := strings.ToLower(affiliation)
	for _, company := range knownCompanies {
		if strings.Contains(lower, company) {
			return titleCase(company)
		}
	}

	if m := companySuffixRe.FindString(affiliation); m != "" {
		return m
	}
	if m := corporateSuffixRe.FindStringSubmatch(affiliation); m != nil {
		return m[1]
	}
	return ""
}

// extractCompanyFromDomain attempts to pull a company name out of an
// email domain. The second-to-last dot-separated part is the candidate
// token; a known company matches when its normalized form (spaces and
// hyphens removed) is a substring of the token or vice versa. An
// unknown token is returned title-cased as-is, so generic providers
// produce names like "Gmail" — a documented imprecision of the
// heuristic, kept on purpose.
func extractCompanyFromDomain(domain string) string {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return ""
	}
	token := parts[len(parts)-2]

	for _, company := range knownCompanies {
		normalized := strings.ToLower(strings.NewReplacer(" ", "", "-", "").Replace(company))
		if strings.Contains(token, normalized) || strings.Contains(normalized, token) {
			return titleCase(company)
		}
	}
	return titleCase(token)
}

// titleCase uppercases every letter that follows a non-letter and
// lowercases the rest, so "bristol-myers squibb" becomes
// "Bristol-Myers Squibb" and "j&j" becomes "J&J".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
