// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharma-papers pipeline.
package types

// Author is one entry in a paper's author list as returned by PubMed.
// Authors carry no identity beyond their name and are not deduplicated
// across papers.
type Author struct {
	// Name is the author's display name, assembled from the PubMed
	// name fields (last name plus forename or initials, or a
	// collective name for consortium authors).
	Name string `json:"name" yaml:"name"`

	// Affiliations lists the author's free-text affiliation strings in
	// source order. May be empty.
	Affiliations []string `json:"affiliations" yaml:"affiliations"`

	// Email is an address parsed opportunistically from the affiliation
	// text. Empty when none was found.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Paper holds the metadata of one retrieved PubMed record. A Paper is
// constructed once per record and is read-only input to classification.
type Paper struct {
	// PubmedID is the stable PubMed identifier (PMID).
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is a partial date string joined from the PubMed
	// Year/Month/Day fields with "/" (e.g. "2024", "2024/Mar",
	// "2024/Mar/15").
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Abstract is the first abstract section, when present.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// ClassifiedPaper is the per-paper classification outcome. One exists
// only for papers with at least one non-academic author.
type ClassifiedPaper struct {
	// PubmedID, Title and PublicationDate are copied from the Paper.
	PubmedID        string `json:"pubmed_id" yaml:"pubmed_id"`
	Title           string `json:"title" yaml:"title"`
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists the names of industry-affiliated
	// authors, preserving the paper's author order.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations is the deduplicated set of extracted company
	// names, sorted alphabetically so output is deterministic.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail joins the emails of non-academic authors with
	// "; ". Empty when none were found.
	CorrespondingEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}
