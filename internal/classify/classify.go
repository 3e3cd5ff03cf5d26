// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides, per author, whether a paper's authors are
// industry-affiliated, and aggregates company names and emails per paper.
//
// The decision procedure is order-sensitive: an affiliation string is
// checked against academic indicators first, and only a string that is
// purely academic (no known company named in it) is excluded from the
// pharma-indicator pass. The skip applies to that single string, not to
// the author — other affiliation strings of the same author are still
// evaluated. An email domain outside edu/ac./gov flips an otherwise
// academic author to non-academic on its own.
package classify

import (
	"sort"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Filter classifies every paper and keeps only those with at least one
// non-academic author. Papers are independent of each other; output
// order follows input order.
func Filter(papers []types.Paper) []types.ClassifiedPaper {
	var out []types.ClassifiedPaper
	for _, p := range papers {
		if cp, ok := Paper(p); ok {
			out = append(out, cp)
		}
	}
	return out
}

// Paper classifies a single paper. The boolean is false when no author
// carries an industry signal; such papers are dropped from output
// entirely rather than emitted with empty fields.
func Paper(p types.Paper) (types.ClassifiedPaper, bool) {
	var names []string
	companySet := make(map[string]struct{})
	var emails []string

	for _, author := range p.Authors {
		nonAcademic, companies := classifyAuthor(author)
		if !nonAcademic {
			continue
		}
		names = append(names, author.Name)
		for _, c := range companies {
			companySet[c] = struct{}{}
		}
		if author.Email != "" {
			emails = append(emails, author.Email)
		}
	}

	if len(names) == 0 {
		return types.ClassifiedPaper{}, false
	}

	companies := make([]string, 0, len(companySet))
	for c := range companySet {
		companies = append(companies, c)
	}
	sort.Strings(companies)

	return types.ClassifiedPaper{
		PubmedID:            p.PubmedID,
		Title:               p.Title,
		PublicationDate:     p.PublicationDate,
		NonAcademicAuthors:  names,
		CompanyAffiliations: companies,
		CorrespondingEmail:  strings.Join(emails, "; "),
	}, true
}

// classifyAuthor runs the per-affiliation decision procedure and the
// email-domain check. It returns whether the author is non-academic and
// the company names extracted along the way (possibly with duplicates;
// the caller deduplicates).
func classifyAuthor(a types.Author) (bool, []string) {
	nonAcademic := false
	var companies []string

	for _, affiliation := range a.Affiliations {
		if affiliation == "" {
			continue
		}

		if matchesAny(academicIndicators, affiliation) {
			// Joint academic+industry affiliations ("Dept. of Biology,
			// Moderna Therapeutics") still count when a known company
			// is named in the same string.
			lower := strings.ToLower(affiliation)
			knownHit := false
			for _, company := range knownCompanies {
				if strings.Contains(lower, company) {
					knownHit = true
					companies = append(companies, titleCase(company))
				}
			}
			if !knownHit {
				// Purely academic string; skip pharma matching for
				// this string only.
				continue
			}
			nonAcademic = true
		}

		if matchesAny(pharmaIndicators, affiliation) {
			nonAcademic = true
			if name := extractCompany(affiliation); name != "" {
				companies = append(companies, name)
			}
		}
	}

	// A corporate email domain is an independent signal: it can flip an
	// author with only academic affiliation text to non-academic.
	if a.Email != "" && strings.Contains(a.Email, "@") {
		domain := strings.ToLower(strings.Split(a.Email, "@")[1])
		if !strings.Contains(domain, "edu") && !strings.Contains(domain, "ac.") && !strings.Contains(domain, "gov") {
			nonAcademic = true
			if name := extractCompanyFromDomain(domain); name != "" {
				companies = append(companies, name)
			}
		}
	}

	return nonAcademic, companies
}
