// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI Entrez E-utilities API: esearch for
// PMIDs matching a query, efetch for full record metadata.
package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pharma-papers/internal/httputil"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute
// httptest servers.
var (
	esearchAPIBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchAPIBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultTool       = "pharma-papers"
	defaultMaxResults = 100
	defaultBatchSize  = 50

	// NCBI allows 3 requests per second without an API key, 10 with one.
	keylessRate = 3
	keyedRate   = 10
)

// RetrievalError reports a terminal API failure after the retry budget
// was exhausted or the response could not be decoded.
type RetrievalError struct {
	Op  string // "search" or "fetch"
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("pubmed %s: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// Client is a rate-limited client for the PubMed E-utilities API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        types.PubMedConfig
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a PubMed client. Zero config fields fall back to
// defaults; the request rate follows the NCBI courtesy limits for the
// presence or absence of an API key.
func NewClient(cfg types.PubMedConfig, opts ...Option) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Tool == "" {
		cfg.Tool = defaultTool
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultTool + "/0.1"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	rps := keylessRate
	if cfg.APIKey != "" {
		rps = keyedRate
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// identityParams returns the E-utilities etiquette parameters sent with
// every request.
func (c *Client) identityParams() url.Values {
	params := url.Values{
		"db":   {"pubmed"},
		"tool": {c.cfg.Tool},
	}
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
	return params
}

func (c *Client) get(ctx context.Context, base string, params url.Values, op string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, &RetrievalError{Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &RetrievalError{Op: op, Err: fmt.Errorf("API returned HTTP %d", resp.StatusCode)}
	}
	return resp, nil
}

// Search returns the PMIDs matching query, most relevant first. A query
// with zero matches returns an empty, non-nil slice; terminal API
// failures return a *RetrievalError.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	params := c.identityParams()
	params.Set("term", query)
	params.Set("retmax", fmt.Sprintf("%d", c.cfg.MaxResults))
	params.Set("sort", "relevance")
	params.Set("retmode", "json")

	resp, err := c.get(ctx, esearchAPIBase, params, "search")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var sr esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &RetrievalError{Op: "search", Err: fmt.Errorf("parsing response: %w", err)}
	}

	ids := sr.ESearchResult.IDList
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// FetchDetails retrieves full records for the given PMIDs in batches,
// preserving input order. A single record that cannot be interpreted
// degrades to a placeholder Paper instead of failing the batch.
func (c *Client) FetchDetails(ctx context.Context, ids []string) ([]types.Paper, error) {
	papers := make([]types.Paper, 0, len(ids))

	for start := 0; start < len(ids); start += c.cfg.BatchSize {
		end := start + c.cfg.BatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := c.fetchBatch(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		papers = append(papers, batch...)
	}
	return papers, nil
}

func (c *Client) fetchBatch(ctx context.Context, ids []string) ([]types.Paper, error) {
	params := c.identityParams()
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "xml")

	resp, err := c.get(ctx, efetchAPIBase, params, "fetch")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var set pubmedArticleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, &RetrievalError{Op: "fetch", Err: fmt.Errorf("parsing response: %w", err)}
	}

	papers := make([]types.Paper, 0, len(set.Articles))
	for _, rec := range set.Articles {
		papers = append(papers, extractPaper(rec))
	}
	return papers, nil
}

// esearch JSON response structure.
type esearchResponse struct {
	ESearchResult struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}
