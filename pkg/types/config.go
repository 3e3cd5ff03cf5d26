// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharma-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the NCBI E-utilities client.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email identifies the caller to NCBI, required by the E-utilities
	// usage policy.
	Email string `json:"email" yaml:"email"`

	// Tool is the application name sent with every request.
	Tool string `json:"tool" yaml:"tool"`

	// APIKey is an optional NCBI API key. With a key NCBI allows 10
	// requests per second instead of 3.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults is the maximum number of search results to fetch (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BatchSize is the number of records fetched per efetch call (default 50).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CacheConfig holds settings for the optional local record cache.
type CacheConfig struct {
	// Enabled turns the read-through cache on.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the cache database (default ".pharma-papers").
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	PubMed PubMedConfig `json:"pubmed" yaml:"pubmed"`
	Cache  CacheConfig  `json:"cache" yaml:"cache"`
}
