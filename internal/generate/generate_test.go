// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/pdiddy/artw-stylekit/internal/logging"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

func init() {
	backoffBase = time.Millisecond
}

// fakeGenerator fails a fixed number of times before answering.
type fakeGenerator struct {
	failures int32
	calls    int32
	answer   string
	err      error
	last     Request
}

func (f *fakeGenerator) Generate(_ context.Context, req Request) (string, error) {
	n := atomic.AddInt32(&f.calls, 1)
	f.last = req
	if n <= f.failures {
		if f.err != nil {
			return "", f.err
		}
		return "", errors.New("service unavailable")
	}
	return f.answer, nil
}

func TestProviderFor(t *testing.T) {
	tests := []struct {
		model string
		want  Provider
	}{
		{"gpt-4", ProviderOpenAI},
		{"gpt-4o-mini", ProviderOpenAI},
		{"o3-mini", ProviderOpenAI},
		{"gemini-1.5-pro", ProviderGemini},
		{"gemini-pro", ProviderGemini},
		{"claude-3-5-sonnet-latest", ProviderAnthropic},
		{"Claude-3", ProviderAnthropic},
		{"mock", ProviderMock},
		{"", ProviderMock},
		{"llama-3", ProviderMock},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProviderFor(tt.model), tt.model)
	}
}

func TestGateway_NoCredentialsReturnsMock(t *testing.T) {
	for _, model := range []string{"gpt-4", "gemini-pro", "claude-3", "mock"} {
		t.Run(model, func(t *testing.T) {
			g := New(context.Background(), types.AIConfig{Model: model}, logging.Nop())
			defer g.Close()

			assert.Equal(t, ProviderMock, g.Provider())

			out := g.Generate(context.Background(), Request{Prompt: "p", JSONMode: true})
			assert.Equal(t, MockJSON, out)

			var payload map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &payload))
			assert.Equal(t, "Mock Başlık - API Key Gerekli", payload["title"])
			assert.Equal(t, []any{}, payload["sections"])
			assert.Equal(t, "API key missing - using mock response", payload["note"])

			assert.Equal(t, MockText, g.Generate(context.Background(), Request{Prompt: "p"}))
		})
	}
}

func TestGateway_RetriesThenSucceeds(t *testing.T) {
	fake := &fakeGenerator{failures: 2, answer: `{"title":"Gerçek"}`}
	g := NewWithBackend("gpt-4", fake, 3, logging.Nop())

	out := g.Generate(context.Background(), Request{Prompt: "p", JSONMode: true})

	assert.Equal(t, `{"title":"Gerçek"}`, out)
	assert.Equal(t, int32(3), atomic.LoadInt32(&fake.calls))
	assert.Equal(t, ProviderOpenAI, g.Provider())
}

func TestGateway_PersistentFailureFallsBackToMock(t *testing.T) {
	fake := &fakeGenerator{failures: 100}
	g := NewWithBackend("claude-3", fake, 2, logging.Nop())

	assert.Equal(t, MockText, g.Generate(context.Background(), Request{Prompt: "p"}))
	// 1 initial + 2 retries.
	assert.Equal(t, int32(3), atomic.LoadInt32(&fake.calls))
}

func TestGateway_CancelledContextFallsBackToMock(t *testing.T) {
	old := backoffBase
	backoffBase = time.Second
	defer func() { backoffBase = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	fake := &fakeGenerator{failures: 100}
	g := NewWithBackend("gpt-4", fake, 3, logging.Nop())

	assert.Equal(t, MockJSON, g.Generate(ctx, Request{Prompt: "p", JSONMode: true}))
	assert.Equal(t, int32(1), atomic.LoadInt32(&fake.calls))
}

func TestGateway_DefaultMaxTokens(t *testing.T) {
	fake := &fakeGenerator{answer: "ok"}
	g := NewWithBackend("gpt-4", fake, 0, logging.Nop())

	g.Generate(context.Background(), Request{Prompt: "p"})
	assert.Equal(t, DefaultMaxTokens, fake.last.MaxTokens)

	g.Generate(context.Background(), Request{Prompt: "p", MaxTokens: 3000})
	assert.Equal(t, 3000, fake.last.MaxTokens)
}

func TestOpenAIBackend_Generate(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"c1","object":"chat.completion","model":"gpt-4o","choices":[{"index":0,"message":{"role":"assistant","content":"{\"title\":\"Dijital Sanat\"}"},"finish_reason":"stop"}]}`)
	}))
	defer ts.Close()

	old := openAIBaseURL
	openAIBaseURL = ts.URL + "/v1"
	defer func() { openAIBaseURL = old }()

	b := NewOpenAIBackend("sk-test", "gpt-4o")
	out, err := b.Generate(context.Background(), Request{Prompt: "taslak", MaxTokens: 3000, Temperature: 0.7, JSONMode: true})
	require.NoError(t, err)

	assert.Equal(t, `{"title":"Dijital Sanat"}`, out)
	assert.Equal(t, "gpt-4o", body["model"])
	assert.EqualValues(t, 3000, body["max_completion_tokens"])
	assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])
}

func TestOpenAIBackend_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"invalid key","type":"invalid_request_error"}}`)
	}))
	defer ts.Close()

	old := openAIBaseURL
	openAIBaseURL = ts.URL + "/v1"
	defer func() { openAIBaseURL = old }()

	_, err := NewOpenAIBackend("bad", "gpt-4").Generate(context.Background(), Request{Prompt: "p"})
	assert.Error(t, err)
}

func TestAnthropicBackend_Generate(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "ak-test", r.Header.Get("X-Api-Key"))
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-sonnet-latest","content":[{"type":"text","text":"Bölüm "},{"type":"text","text":"metni"}],"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":2}}`)
	}))
	defer ts.Close()

	old := anthropicBaseURL
	anthropicBaseURL = ts.URL + "/"
	defer func() { anthropicBaseURL = old }()

	b := NewAnthropicBackend("ak-test", "claude-3-5-sonnet-latest")
	out, err := b.Generate(context.Background(), Request{Prompt: "yaz", MaxTokens: 500, Temperature: 0.5})
	require.NoError(t, err)

	assert.Equal(t, "Bölüm metni", out)
	assert.Equal(t, "claude-3-5-sonnet-latest", body["model"])
	assert.EqualValues(t, 500, body["max_tokens"])
	assert.EqualValues(t, 0.5, body["temperature"])
}

func TestNew_WithKeyBuildsBackend(t *testing.T) {
	g := New(context.Background(), types.AIConfig{Model: "gpt-4o", APIKey: "sk-x"}, logging.Nop())
	defer g.Close()

	assert.Equal(t, ProviderOpenAI, g.Provider())
	assert.Equal(t, "gpt-4o", g.Model())
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "transport error", err: errors.New("connection reset"), want: true},
		{name: "openai unauthorized", err: fmt.Errorf("calling OpenAI API: %w", &openai.APIError{HTTPStatusCode: 401}), want: false},
		{name: "openai bad request", err: &openai.APIError{HTTPStatusCode: 400}, want: false},
		{name: "openai rate limited", err: &openai.APIError{HTTPStatusCode: 429}, want: true},
		{name: "openai request error 503", err: &openai.RequestError{HTTPStatusCode: 503}, want: true},
		{name: "anthropic forbidden", err: fmt.Errorf("calling Anthropic API: %w", anthropicError(403)), want: false},
		{name: "anthropic overloaded", err: anthropicError(529), want: true},
		{name: "gemini invalid key", err: &googleapi.Error{Code: 400}, want: false},
		{name: "gemini unavailable", err: &googleapi.Error{Code: 503}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryable(tt.err))
		})
	}
}

func anthropicError(code int) *anthropic.Error {
	return &anthropic.Error{
		StatusCode: code,
		Request:    httptest.NewRequest(http.MethodPost, "https://api.anthropic.com/v1/messages", nil),
		Response:   &http.Response{StatusCode: code},
	}
}

func TestGateway_ClientErrorNotRetried(t *testing.T) {
	fake := &fakeGenerator{failures: 100, err: &openai.APIError{HTTPStatusCode: 401, Message: "invalid key"}}
	g := NewWithBackend("gpt-4o", fake, 3, logging.Nop())

	assert.Equal(t, MockText, g.Generate(context.Background(), Request{Prompt: "p"}))
	assert.Equal(t, int32(1), atomic.LoadInt32(&fake.calls))
}

func TestGateway_HTTPStatusRetries(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "unauthorized is final", status: http.StatusUnauthorized, wantCalls: 1},
		{name: "unavailable is retried", status: http.StatusServiceUnavailable, wantCalls: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				io.WriteString(w, `{"error":{"message":"hata","type":"invalid_request_error"}}`)
			}))
			defer ts.Close()

			old := openAIBaseURL
			openAIBaseURL = ts.URL + "/v1"
			defer func() { openAIBaseURL = old }()

			g := NewWithBackend("gpt-4o", NewOpenAIBackend("sk-test", "gpt-4o"), 2, logging.Nop())
			assert.Equal(t, MockJSON, g.Generate(context.Background(), Request{Prompt: "p", JSONMode: true}))
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}
