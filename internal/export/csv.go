// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes classification results. The CSV schema is
// fixed at six columns with every field quoted; multi-valued columns
// join their entries with "; ".
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Header is the fixed CSV column schema, in order.
var Header = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// ListSeparator joins multi-valued fields within a column.
const ListSeparator = "; "

// WriteCSV serializes papers and writes them to filename, creating
// parent directories as needed. An empty filename renders to console
// instead. A failed file write degrades to console rendering so the
// results are never lost; the warning goes to stderr and the run still
// succeeds. The returned string is the written path, empty when output
// went to the console.
func WriteCSV(papers []types.ClassifiedPaper, filename string, console io.Writer) (string, error) {
	rendered := Render(papers)

	if filename == "" {
		_, err := io.WriteString(console, rendered)
		return "", err
	}

	if err := writeFile(filename, rendered); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write %s: %v\n", filename, err)
		io.WriteString(console, rendered)
		return "", nil
	}
	return filename, nil
}

// Render returns the full CSV document, header included.
func Render(papers []types.ClassifiedPaper) string {
	var b strings.Builder
	writeRow(&b, Header)
	for _, p := range papers {
		writeRow(&b, []string{
			p.PubmedID,
			p.Title,
			p.PublicationDate,
			strings.Join(p.NonAcademicAuthors, ListSeparator),
			strings.Join(p.CompanyAffiliations, ListSeparator),
			p.CorrespondingEmail,
		})
	}
	return b.String()
}

// writeRow emits one row with every field quoted. encoding/csv quotes
// only when a field needs it; the schema requires quotes on all fields,
// so rows are rendered directly. Standard CSV readers parse the output.
func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func writeFile(filename, content string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(filename, []byte(content), 0o644)
}
