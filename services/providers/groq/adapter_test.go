package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codessneha/synthia/services"
	"github.com/codessneha/synthia/services/providers"
)

func TestNew_Defaults(t *testing.T) {
	adapter := New(providers.Config{APIKey: "test-key"})

	require.NotNil(t, adapter)
	assert.Equal(t, providers.FamilyGroq, adapter.Name())
	assert.Equal(t, defaultBaseURL, adapter.config.BaseURL)
}

func TestAdapter_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(chatResponse{
			ID:    "cmpl-456",
			Model: "llama-3.3-70b-versatile",
			Choices: []choice{
				{Message: chatMessage{Role: "assistant", Content: "Fast answer"}, FinishReason: "stop"},
			},
			Usage: usage{PromptTokens: 5, CompletionTokens: 15, TotalTokens: 20},
		})
	}))
	defer server.Close()

	adapter := New(providers.Config{APIKey: "test-key", BaseURL: server.URL})

	resp, err := adapter.Complete(context.Background(), &providers.ChatRequest{
		Model:    "llama-3.3-70b-versatile",
		Messages: []providers.Message{{Role: "user", Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Fast answer", resp.Content)
	assert.Equal(t, 20, resp.Tokens)
	assert.Equal(t, providers.FamilyGroq, resp.Provider)
}

func TestAdapter_Complete_MissingAPIKey(t *testing.T) {
	adapter := New(providers.Config{})

	_, err := adapter.Complete(context.Background(), &providers.ChatRequest{
		Model:    "llama-3.3-70b-versatile",
		Messages: []providers.Message{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.True(t, services.IsErrorType(err, services.ErrorTypeConfiguration))
}

func TestAdapter_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"Service overloaded","type":"service_unavailable"}}`))
	}))
	defer server.Close()

	adapter := New(providers.Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := adapter.Complete(context.Background(), &providers.ChatRequest{
		Model:    "llama-3.3-70b-versatile",
		Messages: []providers.Message{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	var provErr *providers.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusServiceUnavailable, provErr.StatusCode)
}
