package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "artw/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// IngestConfig holds settings for the PDF ingestion stage.
type IngestConfig struct {
	// SourceDir is the directory searched recursively for *.pdf files.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// OutputPath is the corpus JSONL file written by ingestion.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Sample limits ingestion to the first N discovered files (0 means all).
	Sample int `json:"sample" yaml:"sample"`

	// Workers is the number of concurrent extraction workers (default 6).
	Workers int `json:"workers" yaml:"workers"`

	// CacheEnabled reuses previously extracted text for unchanged files.
	CacheEnabled bool `json:"cache_enabled" yaml:"cache_enabled"`

	// CachePath is the sqlite database holding the extraction cache.
	CachePath string `json:"cache_path" yaml:"cache_path"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gpt-4o", "gemini-1.5-pro",
	// "claude-sonnet-4-5-20250929", or "mock").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GenerationConfig holds settings for the generation stage.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// MaxTokens bounds the length of a single completion.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Timeout bounds a single generation call including retries.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// OutputDir is the directory for generated outlines and prompts.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// CitationConfig holds settings for the citation checker.
type CitationConfig struct {
	HTTPConfig `yaml:",inline"`

	// CheckDOIs enables the DOI reachability check.
	CheckDOIs bool `json:"check_dois" yaml:"check_dois"`
}
