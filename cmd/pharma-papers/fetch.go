// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pharma-papers/internal/classify"
	"github.com/pdiddy/pharma-papers/internal/export"
	"github.com/pdiddy/pharma-papers/internal/pubmed"
	"github.com/pdiddy/pharma-papers/internal/store"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultMaxResults = 100
	defaultBatchSize  = 50
	defaultUserAgent  = "pharma-papers/0.1"
	defaultCacheDir   = ".pharma-papers"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch QUERY",
	Short: "Fetch papers for a PubMed query and report industry-affiliated authors",
	Long: `Fetch searches PubMed with the given query (PubMed query syntax passes
through unmodified), retrieves record metadata, classifies each author as
academic or industry-affiliated, and exports papers with at least one
industry author as CSV. Without --file the CSV is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("file", "f", "", "output filename for CSV results (default: print to console)")
	fetchCmd.Flags().IntP("max", "m", defaultMaxResults, "maximum number of results to fetch from PubMed")
	fetchCmd.Flags().String("email", "", "email address for NCBI (required by their terms of service)")
	fetchCmd.Flags().String("api-key", "", "NCBI API key for higher rate limits")
	fetchCmd.Flags().Int("batch-size", defaultBatchSize, "number of records per efetch call")
	fetchCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	fetchCmd.Flags().Bool("cache", false, "cache fetched records in a local database")
	fetchCmd.Flags().String("cache-dir", defaultCacheDir, "directory for the record cache")
	fetchCmd.Flags().String("dump-raw", "", "also write the raw fetched records to this YAML file")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx := cmd.Context()
	progress := os.Stderr

	flagEmail, _ := cmd.Flags().GetString("email")
	flagAPIKey, _ := cmd.Flags().GetString("api-key")
	maxResults, _ := cmd.Flags().GetInt("max")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	outFile, _ := cmd.Flags().GetString("file")
	dumpRaw, _ := cmd.Flags().GetString("dump-raw")
	useCache, _ := cmd.Flags().GetBool("cache")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg := types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Email:      firstNonEmpty(flagEmail, viper.GetString("pubmed.email"), loadedSecrets["ncbi-email"]),
		APIKey:     firstNonEmpty(flagAPIKey, viper.GetString("pubmed.api_key"), loadedSecrets["ncbi-api-key"]),
		MaxResults: maxResults,
		BatchSize:  batchSize,
	}
	if !useCache {
		useCache = viper.GetBool("cache.enabled")
	}

	client := pubmed.NewClient(cfg)

	fmt.Fprintf(progress, "Searching PubMed for: %s\n", query)
	ids, err := client.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("searching PubMed: %w", err)
	}
	if len(ids) == 0 {
		fmt.Fprintln(progress, "No papers found matching the query.")
		return nil
	}

	// With the cache enabled, known records skip efetch.
	var cached map[string]types.Paper
	var st *store.Store
	if useCache {
		st, err = store.Open(cacheDir)
		if err != nil {
			fmt.Fprintf(progress, "warning: cache unavailable: %v\n", err)
		} else {
			defer st.Close()
			cached, err = st.Get(ctx, ids)
			if err != nil {
				fmt.Fprintf(progress, "warning: cache lookup failed: %v\n", err)
				cached = nil
			}
		}
	}

	missing := ids
	if len(cached) > 0 {
		missing = make([]string, 0, len(ids)-len(cached))
		for _, id := range ids {
			if _, ok := cached[id]; !ok {
				missing = append(missing, id)
			}
		}
	}

	fmt.Fprintf(progress, "Fetching details for %d papers (%d cached)\n", len(ids), len(cached))
	fetched, err := client.FetchDetails(ctx, missing)
	if err != nil {
		return fmt.Errorf("fetching paper details: %w", err)
	}

	if st != nil && len(fetched) > 0 {
		fresh := make([]types.Paper, 0, len(fetched))
		for _, p := range fetched {
			if !pubmed.IsDegraded(p) {
				fresh = append(fresh, p)
			}
		}
		if err := st.Put(ctx, fresh); err != nil {
			fmt.Fprintf(progress, "warning: cache update failed: %v\n", err)
		}
	}

	papers := assemblePapers(ids, cached, fetched)

	if dumpRaw != "" {
		if err := export.WriteRawYAML(papers, dumpRaw); err != nil {
			return fmt.Errorf("dumping raw records: %w", err)
		}
		if debug {
			fmt.Fprintf(progress, "Raw records written to: %s\n", dumpRaw)
		}
	}

	results := classify.Filter(papers)

	written, err := export.WriteCSV(results, outFile, os.Stdout)
	if err != nil {
		return fmt.Errorf("exporting results: %w", err)
	}

	fmt.Fprintf(progress, "Found %d papers with pharmaceutical company affiliations\n", len(results))
	if written != "" {
		fmt.Fprintf(progress, "Results saved to: %s\n", written)
	}
	return nil
}

// assemblePapers merges cached and freshly fetched records back into
// search-result order. Fetched records whose PMID matches no searched ID
// (placeholders for records that could not be extracted) are kept,
// appended after the ordered results.
func assemblePapers(ids []string, cached map[string]types.Paper, fetched []types.Paper) []types.Paper {
	byID := make(map[string]types.Paper, len(fetched))
	for _, p := range fetched {
		byID[p.PubmedID] = p
	}

	papers := make([]types.Paper, 0, len(ids))
	matched := make(map[string]bool, len(fetched))
	for _, id := range ids {
		if p, ok := cached[id]; ok {
			papers = append(papers, p)
		} else if p, ok := byID[id]; ok {
			papers = append(papers, p)
			matched[id] = true
		}
	}
	for _, p := range fetched {
		if !matched[p.PubmedID] {
			papers = append(papers, p)
		}
	}
	return papers
}
