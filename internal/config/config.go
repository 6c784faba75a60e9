// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config builds the CLI configuration from, in increasing order of
// precedence: built-in defaults, the artw.yaml config file, the .secrets/
// directory (API keys only), and environment variables. Environment names
// are accepted with the ARTW_ prefix and, for the settings users already
// export, without it (OPENAI_API_KEY, CORPUS_DIR, MAX_WORKERS, ...).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/artw-stylekit/internal/generate"
	"github.com/pdiddy/artw-stylekit/internal/secrets"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// EnvPrefix is prepended to every setting name for environment lookup.
const EnvPrefix = "ARTW"

// Config is the resolved configuration handed to commands.
type Config struct {
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`

	CorpusDir string `mapstructure:"corpus_dir"`
	DataDir   string `mapstructure:"data_dir" validate:"required"`
	OutDir    string `mapstructure:"out_dir" validate:"required"`

	MaxWorkers   int    `mapstructure:"max_workers" validate:"gte=1"`
	CacheEnabled bool   `mapstructure:"cache_enabled"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error"`

	// Model is the default model for generate-* commands.
	Model       string        `mapstructure:"model" validate:"required"`
	Temperature float64       `mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxRetries  int           `mapstructure:"max_retries" validate:"gte=0"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`

	// DOITimeout bounds a single DOI reachability check.
	DOITimeout time.Duration `mapstructure:"doi_timeout" validate:"gt=0"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// defaults mirror the environment defaults of the original tool.
var defaults = map[string]any{
	"openai_api_key":    "",
	"gemini_api_key":    "",
	"anthropic_api_key": "",
	"corpus_dir":        "C:/Korpus",
	"data_dir":          "data",
	"out_dir":           "out",
	"max_workers":       6,
	"cache_enabled":     true,
	"log_level":         "INFO",
	"model":             "mock",
	"temperature":       generate.DefaultTemperature,
	"max_retries":       3,
	"timeout":           "120s",
	"doi_timeout":       "5s",
	"user_agent":        "artw/0.1",
}

// unprefixedEnv lists settings also read from their bare environment name.
var unprefixedEnv = []string{
	"openai_api_key",
	"gemini_api_key",
	"anthropic_api_key",
	"corpus_dir",
	"max_workers",
	"cache_enabled",
	"log_level",
}

// secretKeys maps secret file names to the settings they fill.
var secretKeys = map[string]string{
	secrets.OpenAIKey:    "openai_api_key",
	secrets.GeminiKey:    "gemini_api_key",
	secrets.AnthropicKey: "anthropic_api_key",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Setup registers defaults and environment bindings on v. It does not read
// the config file.
func Setup(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, k := range unprefixedEnv {
		// BindEnv with explicit names skips the prefix, so list both.
		_ = v.BindEnv(k, EnvPrefix+"_"+strings.ToUpper(k), strings.ToUpper(k))
	}
}

// Load resolves the configuration from v. Keys from store fill API key
// settings that neither the config file nor the environment set.
func Load(v *viper.Viper, store secrets.Store) (*Config, error) {
	for file, key := range secretKeys {
		if val := store.Get(file); val != "" && v.GetString(key) == "" {
			v.Set(key, val)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// APIKeyFor returns the key for the provider serving model, or "" for the
// mock provider.
func (c *Config) APIKeyFor(model string) string {
	switch generate.ProviderFor(model) {
	case generate.ProviderOpenAI:
		return c.OpenAIAPIKey
	case generate.ProviderGemini:
		return c.GeminiAPIKey
	case generate.ProviderAnthropic:
		return c.AnthropicAPIKey
	default:
		return ""
	}
}

// AI returns the model settings for model, falling back to the configured
// default model when model is empty.
func (c *Config) AI(model string) types.AIConfig {
	if model == "" {
		model = c.Model
	}
	return types.AIConfig{
		Model:      model,
		APIKey:     c.APIKeyFor(model),
		MaxRetries: c.MaxRetries,
	}
}

// Generation returns generation settings for model with the given token limit.
func (c *Config) Generation(model string, maxTokens int) types.GenerationConfig {
	return types.GenerationConfig{
		AIConfig:    c.AI(model),
		MaxTokens:   maxTokens,
		Temperature: c.Temperature,
		Timeout:     c.Timeout,
		OutputDir:   c.OutDir,
	}
}

// Citation returns settings for the citation checker.
func (c *Config) Citation(checkDOIs bool) types.CitationConfig {
	return types.CitationConfig{
		HTTPConfig: types.HTTPConfig{Timeout: c.DOITimeout, UserAgent: c.UserAgent},
		CheckDOIs:  checkDOIs,
	}
}

// Ingest returns ingestion settings. Empty src falls back to CorpusDir and
// zero workers to MaxWorkers.
func (c *Config) Ingest(src, out string, sample, workers int) types.IngestConfig {
	if src == "" {
		src = c.CorpusDir
	}
	if workers <= 0 {
		workers = c.MaxWorkers
	}
	return types.IngestConfig{
		SourceDir:    src,
		OutputPath:   out,
		Sample:       sample,
		Workers:      workers,
		CacheEnabled: c.CacheEnabled,
		CachePath:    c.CachePath(),
	}
}

// CorpusPath is the default corpus JSONL file.
func (c *Config) CorpusPath() string { return filepath.Join(c.DataDir, "corpus.jsonl") }

// ProfilePath is the default style profile file.
func (c *Config) ProfilePath() string { return filepath.Join(c.DataDir, "style_profile.json") }

// CachePath is the extraction cache database.
func (c *Config) CachePath() string { return filepath.Join(c.DataDir, "cache.db") }

// LogPath is the debug log file.
func (c *Config) LogPath() string { return filepath.Join(c.DataDir, "artw.log") }

// PromptsDir holds saved prompt files.
func (c *Config) PromptsDir() string { return filepath.Join(c.OutDir, "prompts") }

// OutPath joins name onto the output directory.
func (c *Config) OutPath(name string) string { return filepath.Join(c.OutDir, name) }

// EnsureDirs creates the data, output and prompts directories.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DataDir, c.OutDir, c.PromptsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
