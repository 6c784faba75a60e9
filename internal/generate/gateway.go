// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"

	"github.com/pdiddy/artw-stylekit/internal/logging"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

const defaultMaxRetries = 3

// Gateway routes requests to the backend for its model and falls back to the
// mock payload when that backend is missing or failing.
type Gateway struct {
	model      string
	provider   Provider
	backend    Generator
	maxRetries int
	log        logging.Logger
}

// New builds a Gateway for cfg.Model. cfg.APIKey must hold the key for the
// model's provider; without one the Gateway serves mock responses.
func New(ctx context.Context, cfg types.AIConfig, log logging.Logger) *Gateway {
	if log == nil {
		log = logging.Nop()
	}
	provider := ProviderFor(cfg.Model)

	var backend Generator
	var err error
	switch {
	case provider == ProviderMock:
	case cfg.APIKey == "":
		log.Warn("API key missing, using mock responses", "model", cfg.Model, "provider", provider.String())
	default:
		backend, err = newBackend(ctx, provider, cfg)
		if err != nil {
			log.Warn("could not initialize client, using mock responses", "model", cfg.Model, "error", err.Error())
			backend = nil
		} else {
			log.Info("initialized client", "model", cfg.Model, "provider", provider.String())
		}
	}
	return NewWithBackend(cfg.Model, backend, cfg.MaxRetries, log)
}

// NewWithBackend builds a Gateway around an existing backend. A nil backend
// serves mock responses. maxRetries of 0 uses the default.
func NewWithBackend(model string, backend Generator, maxRetries int, log logging.Logger) *Gateway {
	if log == nil {
		log = logging.Nop()
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	provider := ProviderFor(model)
	if backend == nil {
		provider = ProviderMock
	}
	return &Gateway{
		model:      model,
		provider:   provider,
		backend:    backend,
		maxRetries: maxRetries,
		log:        log,
	}
}

func newBackend(ctx context.Context, p Provider, cfg types.AIConfig) (Generator, error) {
	switch p {
	case ProviderOpenAI:
		return NewOpenAIBackend(cfg.APIKey, cfg.Model), nil
	case ProviderGemini:
		return NewGeminiBackend(ctx, cfg.APIKey, cfg.Model)
	case ProviderAnthropic:
		return NewAnthropicBackend(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("no backend for provider %s", p)
	}
}

// Model returns the configured model name.
func (g *Gateway) Model() string { return g.model }

// Provider returns the provider that serves requests. It is ProviderMock
// when no backend is available.
func (g *Gateway) Provider() Provider { return g.provider }

// Generate returns generated text for req. It never fails: when the backend
// is unavailable or still failing after retries, the mock payload is
// returned and the failure is logged.
func (g *Gateway) Generate(ctx context.Context, req Request) string {
	if req.MaxTokens <= 0 {
		req.MaxTokens = DefaultMaxTokens
	}
	if g.backend == nil {
		g.log.Warn("generation unavailable, returning mock response", "model", g.model)
		return MockResponse(req.JSONMode)
	}

	start := time.Now()
	text, err := callWithRetry(ctx, g.backend, req, g.maxRetries)
	if err != nil {
		g.log.Error("generation failed, returning mock response", "model", g.model, "error", err.Error())
		return MockResponse(req.JSONMode)
	}
	g.log.Debug("generation complete", "model", g.model, "chars", len(text), "elapsed", time.Since(start).String())
	return text
}

// Close releases backend resources.
func (g *Gateway) Close() error {
	if c, ok := g.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// callWithRetry calls the backend with exponential backoff. Errors that
// are not retryable end the loop after the failing attempt.
func callWithRetry(ctx context.Context, backend Generator, req Request, maxRetries int) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := backoffBase << (attempt - 1)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		text, err := backend.Generate(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !retryable(err) {
			return "", err
		}
	}
	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

// retryable reports whether a failed call may succeed on a later attempt.
// Transport errors carry no status and are retried; of the HTTP statuses
// only 408, 409, 429 and 5xx are.
func retryable(err error) bool {
	code := statusCode(err)
	switch {
	case code == 0:
		return true
	case code == http.StatusRequestTimeout, code == http.StatusConflict, code == http.StatusTooManyRequests:
		return true
	default:
		return code >= http.StatusInternalServerError
	}
}

// statusCode extracts the HTTP status from a provider SDK error, or 0.
func statusCode(err error) int {
	var oaiErr *openai.APIError
	if errors.As(err, &oaiErr) {
		return oaiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	var antErr *anthropic.Error
	if errors.As(err, &antErr) {
		return antErr.StatusCode
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) && coded.HTTPCode() > 0 {
		return coded.HTTPCode()
	}
	return 0
}
