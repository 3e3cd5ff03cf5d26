// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// degradedTitle marks a record whose details could not be extracted.
const degradedTitle = "Error extracting paper details"

// IsDegraded reports whether p is a placeholder produced for a record
// that could not be extracted. Callers use this to keep placeholders
// out of the cache.
func IsDegraded(p types.Paper) bool {
	return p.Title == degradedTitle
}

// extractPaper converts one efetch record into a Paper. A record missing
// its Article payload yields a placeholder with the PMID preserved so
// the rest of the batch is unaffected.
func extractPaper(rec pubmedArticle) types.Paper {
	pmid := strings.TrimSpace(rec.MedlineCitation.PMID)
	if pmid == "" {
		pmid = "unknown"
	}

	article := rec.MedlineCitation.Article
	if article == nil {
		return types.Paper{
			PubmedID: pmid,
			Title:    degradedTitle,
			Authors:  []types.Author{},
		}
	}

	p := types.Paper{
		PubmedID:        pmid,
		Title:           strings.TrimSpace(article.Title),
		PublicationDate: formatPubDate(article.Journal.Issue.PubDate),
		Authors:         extractAuthors(article.Authors),
		Abstract:        firstAbstract(article.Abstract.Sections),
	}
	return p
}

// formatPubDate joins the non-empty Year/Month/Day parts with "/",
// allowing partial dates (year only, year/month, year/month/day).
func formatPubDate(d pubDate) string {
	var parts []string
	for _, part := range []string{d.Year, d.Month, d.Day} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "/")
}

// extractAuthors builds the author list. Name assembly prefers last
// name plus forename, then last name plus initials, then last name
// alone, then a collective (consortium) name.
func extractAuthors(list []pubmedAuthor) []types.Author {
	var authors []types.Author
	for _, a := range list {
		var name string
		switch {
		case a.LastName != "" && a.ForeName != "":
			name = a.LastName + " " + a.ForeName
		case a.LastName != "" && a.Initials != "":
			name = a.LastName + " " + a.Initials
		case a.LastName != "":
			name = a.LastName
		case a.CollectiveName != "":
			name = a.CollectiveName
		}

		var affiliations []string
		for _, info := range a.AffiliationInfo {
			if info.Affiliation != "" {
				affiliations = append(affiliations, info.Affiliation)
			}
		}

		authors = append(authors, types.Author{
			Name:         name,
			Affiliations: affiliations,
			Email:        parseEmail(affiliations),
		})
	}
	return authors
}

// parseEmail scans affiliation strings for an embedded email address.
// Addresses commonly trail the affiliation text; the last token that
// looks like one wins. Surrounding punctuation is stripped.
func parseEmail(affiliations []string) string {
	email := ""
	for _, affiliation := range affiliations {
		if !strings.Contains(affiliation, "@") {
			continue
		}
		for _, part := range strings.Fields(affiliation) {
			if strings.Contains(part, "@") && strings.Contains(part, ".") {
				email = strings.Trim(part, ".,;()[]<>{}")
			}
		}
	}
	return email
}

// firstAbstract returns the first abstract section, matching the record
// shape PubMed uses for structured abstracts.
func firstAbstract(sections []string) string {
	if len(sections) == 0 {
		return ""
	}
	return strings.TrimSpace(sections[0])
}

// efetch XML structures (PubmedArticleSet subset).
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	MedlineCitation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string          `xml:"PMID"`
	Article *articleDetails `xml:"Article"`
}

type articleDetails struct {
	Title    string          `xml:"ArticleTitle"`
	Journal  journal         `xml:"Journal"`
	Authors  []pubmedAuthor  `xml:"AuthorList>Author"`
	Abstract abstractDetails `xml:"Abstract"`
}

type journal struct {
	Issue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate pubDate `xml:"PubDate"`
}

type pubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type pubmedAuthor struct {
	LastName        string            `xml:"LastName"`
	ForeName        string            `xml:"ForeName"`
	Initials        string            `xml:"Initials"`
	CollectiveName  string            `xml:"CollectiveName"`
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}

type abstractDetails struct {
	Sections []string `xml:"AbstractText"`
}
