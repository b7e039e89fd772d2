package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newChatServer returns a test server answering /chat/completions with content
func newChatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(chatCompletionResponse{
			Model: req.Model,
			Choices: []chatCompletionChoice{
				{Message: chatMessage{Role: "assistant", Content: content}},
			},
		})
	}))
}

// TestPerplexityClient_Chat tests a successful completion round trip
func TestPerplexityClient_Chat(t *testing.T) {
	srv := newChatServer(t, http.StatusOK, `{"answer": 42}`)
	defer srv.Close()

	client, err := NewPerplexityClient(&Config{BaseURL: srv.URL, Model: "sonar-pro"}, "test-key")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	got, err := client.Chat(context.Background(), "You are a test.", "Answer.")
	require.NoError(t, err)
	assert.Equal(t, `{"answer": 42}`, got)
}

// TestPerplexityClient_NonOKStatus tests that non-2xx becomes a ProviderError
func TestPerplexityClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewPerplexityClient(&Config{BaseURL: srv.URL}, "test-key")
	require.NoError(t, err)

	_, err = client.Chat(context.Background(), "sys", "user")
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Contains(t, provErr.Message, "429")
}

// TestPerplexityClient_EmptyChoices tests the empty-choices failure path
func TestPerplexityClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatCompletionResponse{})
	}))
	defer srv.Close()

	client, err := NewPerplexityClient(&Config{BaseURL: srv.URL}, "test-key")
	require.NoError(t, err)

	_, err = client.Chat(context.Background(), "sys", "user")
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Contains(t, provErr.Message, "no choices")
}

// TestNewPerplexityClient_RequiresKey tests that a missing API key is rejected
func TestNewPerplexityClient_RequiresKey(t *testing.T) {
	_, err := NewPerplexityClient(DefaultPerplexityConfig(), "")
	require.Error(t, err)
}

// TestNewPerplexityClient_Defaults tests default model and base URL fill-in
func TestNewPerplexityClient_Defaults(t *testing.T) {
	client, err := NewPerplexityClient(&Config{}, "test-key")
	require.NoError(t, err)
	assert.Equal(t, "sonar-pro", client.Model())
	assert.Equal(t, "https://api.perplexity.ai", client.baseURL)
}
