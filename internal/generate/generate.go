// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate sends prompts to a text-generation provider. The provider
// is chosen from the model name once, when the Gateway is built. When no
// credentials are configured, or the provider keeps failing, the Gateway
// answers with a fixed mock payload so the pipeline keeps running.
package generate

import (
	"context"
	"strings"
)

// Request is one generation call.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64

	// JSONMode asks the provider for a JSON object response.
	JSONMode bool
}

// Default request settings.
const (
	DefaultMaxTokens   = 4000
	DefaultTemperature = 0.7
)

// Generator produces text for a request. Each provider backend implements
// this interface.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Provider identifies a generation backend.
type Provider int

const (
	ProviderMock Provider = iota
	ProviderOpenAI
	ProviderGemini
	ProviderAnthropic
)

func (p Provider) String() string {
	switch p {
	case ProviderOpenAI:
		return "openai"
	case ProviderGemini:
		return "gemini"
	case ProviderAnthropic:
		return "anthropic"
	default:
		return "mock"
	}
}

// providerPrefixes maps model-name prefixes to providers. The first match
// wins; unmatched names use the mock provider.
var providerPrefixes = []struct {
	prefix   string
	provider Provider
}{
	{"gpt", ProviderOpenAI},
	{"o1", ProviderOpenAI},
	{"o3", ProviderOpenAI},
	{"gemini", ProviderGemini},
	{"claude", ProviderAnthropic},
}

// ProviderFor returns the provider serving model.
func ProviderFor(model string) Provider {
	m := strings.ToLower(strings.TrimSpace(model))
	for _, p := range providerPrefixes {
		if strings.HasPrefix(m, p.prefix) {
			return p.provider
		}
	}
	return ProviderMock
}

// Mock payloads returned when generation is unavailable.
const (
	MockJSON = `{"title": "Mock Başlık - API Key Gerekli", "abstract_tr": "Bu bir test yanıtıdır. Gerçek içerik üretmek için API key ekleyin.", "sections": [], "note": "API key missing - using mock response"}`
	MockText = "Mock response: API key gerekli. .env dosyasına API anahtarınızı ekleyin."
)

// MockResponse returns the mock payload for the requested mode.
func MockResponse(jsonMode bool) string {
	if jsonMode {
		return MockJSON
	}
	return MockText
}

// MockGenerator always returns the mock payload.
type MockGenerator struct{}

// Generate implements Generator.
func (MockGenerator) Generate(_ context.Context, req Request) (string, error) {
	return MockResponse(req.JSONMode), nil
}
