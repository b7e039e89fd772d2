// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers without touching the
// pipeline code that consumes them.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderPerplexity is the Perplexity Sonar provider (OpenAI-compatible wire)
	ProviderPerplexity Provider = "perplexity"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultTimeout bounds a single chat-completion call. The upstream service
// never documented a bound; slow completions otherwise hang a whole analysis.
const DefaultTimeout = 120 * time.Second

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	BaseURL  string        // OpenAI-compatible endpoint base, Perplexity only
	Timeout  time.Duration // per-call bound; DefaultTimeout when zero
}

// DefaultConfig returns the default configuration (currently Perplexity)
func DefaultConfig() *Config {
	return DefaultPerplexityConfig()
}

// DefaultPerplexityConfig returns the default Perplexity configuration
func DefaultPerplexityConfig() *Config {
	return &Config{
		Provider: ProviderPerplexity,
		Model:    "sonar-pro",
		BaseURL:  "https://api.perplexity.ai",
		Timeout:  DefaultTimeout,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
		Timeout:  DefaultTimeout,
	}
}
