package resume

import "fmt"

// DownloadError means the resume could not be fetched from storage.
type DownloadError struct {
	URL    string
	Status string // provider status line, e.g. "403 Forbidden"
	Cause  error
}

func (e *DownloadError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("failed to download resume %s: status %s", e.URL, e.Status)
	}
	return fmt.Sprintf("failed to download resume %s: %v", e.URL, e.Cause)
}

func (e *DownloadError) Unwrap() error {
	return e.Cause
}

// ExtractionError means downloaded bytes could not be parsed as a document.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not read resume file: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("could not read resume file: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
