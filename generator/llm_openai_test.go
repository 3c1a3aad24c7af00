package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	N           int     `json:"n"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newCompletionServer(t *testing.T, choices string, seen *chatRequest, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-3.5-turbo","choices":%s}`, choices)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestOpenAI(t *testing.T, baseURL string) *OpenAILLM {
	t.Helper()
	llm, err := NewOpenAILLMFromConfig(&LLMSettings{
		Provider: "openai",
		Model:    "gpt-3.5-turbo",
		APIKey:   "sk-test",
		BaseURL:  baseURL,
	})
	require.NoError(t, err)
	return llm
}

func TestOpenAILLMComplete(t *testing.T) {
	var seen chatRequest
	var calls atomic.Int32
	srv := newCompletionServer(t,
		`[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"What's your favorite bug?"}}]`,
		&seen, &calls)

	msg, err := newTestOpenAI(t, srv.URL).Complete(context.Background(), "the prompt")
	require.NoError(t, err)

	assert.Equal(t, Message{Role: "assistant", Content: "What's your favorite bug?"}, msg)
	assert.Equal(t, "gpt-3.5-turbo", seen.Model)
	assert.Equal(t, MaxTokens, seen.MaxTokens)
	assert.Equal(t, Completions, seen.N)
	assert.InDelta(t, Temperature, seen.Temperature, 1e-9)
	require.Len(t, seen.Messages, 1)
	assert.Equal(t, "user", seen.Messages[0].Role)
	assert.Equal(t, "the prompt", seen.Messages[0].Content)
}

func TestOpenAILLMNoChoices(t *testing.T) {
	var seen chatRequest
	var calls atomic.Int32
	srv := newCompletionServer(t, `[]`, &seen, &calls)

	_, err := newTestOpenAI(t, srv.URL).Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestOpenAILLMDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"boom","type":"server_error"}}`)
	}))
	defer srv.Close()

	_, err := newTestOpenAI(t, srv.URL).Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewOpenAILLMFromConfig(t *testing.T) {
	_, err := NewOpenAILLMFromConfig(nil)
	assert.Error(t, err)

	_, err = NewOpenAILLMFromConfig(&LLMSettings{APIKey: "k"})
	assert.EqualError(t, err, "llm model is required")

	llm, err := NewOpenAILLMFromConfig(&LLMSettings{Model: "gpt-3.5-turbo"})
	require.NoError(t, err, "missing key is reported by the API, not here")
	assert.Equal(t, "gpt-3.5-turbo", llm.Model)
}
