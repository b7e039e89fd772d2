package llm

import "fmt"

// excerptLen caps how much raw model output an error message carries.
const excerptLen = 200

// Excerpt truncates raw model output for inclusion in error messages.
func Excerpt(raw string) string {
	if len(raw) <= excerptLen {
		return raw
	}
	return raw[:excerptLen] + "..."
}

// ProviderError represents a failed call to the LLM provider
// (network, auth, rate limit, malformed provider envelope).
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ResponseFormatError means the provider answered but the text contained
// no parsable JSON object where one was demanded.
type ResponseFormatError struct {
	Message string
	Excerpt string
	Cause   error
}

func (e *ResponseFormatError) Error() string {
	if e.Excerpt != "" {
		return fmt.Sprintf("response format error: %s (model said: %q)", e.Message, e.Excerpt)
	}
	return fmt.Sprintf("response format error: %s", e.Message)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Cause
}
