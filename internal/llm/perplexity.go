package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// PerplexityClient implements Client for any OpenAI-compatible
// chat-completions endpoint. Perplexity is the default deployment target,
// but only the base URL distinguishes providers on this wire.
type PerplexityClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewPerplexityClient creates a new Perplexity client
func NewPerplexityClient(config *Config, apiKey string) (*PerplexityClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	cfg := *config
	if cfg.Model == "" {
		cfg.Model = DefaultPerplexityConfig().Model
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultPerplexityConfig().BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &PerplexityClient{
		apiKey:     apiKey,
		model:      cfg.Model,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// chatMessage is one entry of the OpenAI-compatible messages array.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatCompletionResponse struct {
	ID      string                 `json:"id"`
	Model   string                 `json:"model"`
	Choices []chatCompletionChoice `json:"choices"`
}

// Chat sends one system+user exchange and returns the completion text
func (c *PerplexityClient) Chat(ctx context.Context, system, user string) (string, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &ProviderError{Provider: string(ProviderPerplexity), Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: string(ProviderPerplexity), Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: string(ProviderPerplexity), Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: string(ProviderPerplexity), Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Provider: string(ProviderPerplexity),
			Message:  fmt.Sprintf("API returned status %s: %s", resp.Status, Excerpt(string(respBody))),
		}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", &ProviderError{Provider: string(ProviderPerplexity), Message: "failed to decode response", Cause: err}
	}

	if len(completion.Choices) == 0 {
		return "", &ProviderError{Provider: string(ProviderPerplexity), Message: "no choices in response"}
	}

	return completion.Choices[0].Message.Content, nil
}

// Model returns the model identifier
func (c *PerplexityClient) Model() string {
	return c.model
}

// Close releases resources held by the client
func (c *PerplexityClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
