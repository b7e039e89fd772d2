// Package config provides environment-based configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the server's runtime configuration. Components receive their
// settings through constructors; nothing reads the environment at use time.
type Config struct {
	Port        string
	DatabaseURL string

	// Language-model provider
	LLMProvider string
	LLMModel    string
	LLMBaseURL  string
	LLMAPIKey   string
	LLMTimeout  time.Duration

	// Resume storage
	StorageToken string

	// Job discovery
	JobSearchLocation string
	JobSearchBrowser  bool

	// Pipeline pacing. Zero means the component default.
	JobSearchDelay time.Duration
	SkillCallDelay time.Duration
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              envOr("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		LLMProvider:       envOr("LLM_PROVIDER", "perplexity"),
		LLMModel:          os.Getenv("LLM_MODEL"),
		LLMBaseURL:        os.Getenv("LLM_BASE_URL"),
		StorageToken:      os.Getenv("STORAGE_TOKEN"),
		JobSearchLocation: envOr("JOB_SEARCH_LOCATION", "India"),
		JobSearchBrowser:  os.Getenv("JOB_SEARCH_BROWSER") == "true",
	}

	cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	if cfg.LLMAPIKey == "" {
		// Provider-specific variable names kept for existing deployments.
		switch cfg.LLMProvider {
		case "gemini":
			cfg.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
		default:
			cfg.LLMAPIKey = os.Getenv("PERPLEXITY_API_KEY")
		}
	}

	var err error
	if cfg.LLMTimeout, err = durationEnv("LLM_TIMEOUT_SECONDS", time.Second); err != nil {
		return nil, err
	}
	if cfg.JobSearchDelay, err = durationEnv("JOB_SEARCH_DELAY_MS", time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.SkillCallDelay, err = durationEnv("SKILL_CALL_DELAY_MS", time.Millisecond); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// intEnv parses an integer environment variable. Unset means fallback.
func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

// durationEnv parses an integer environment variable into a duration with
// the given unit. Unset means zero.
func durationEnv(key string, unit time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got: %d", key, n)
	}
	return time.Duration(n) * unit, nil
}
