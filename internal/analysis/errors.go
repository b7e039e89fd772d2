package analysis

import "fmt"

// ReportSynthesisError means the gap-report call failed or its response was
// not the pure JSON document the synthesis stage demands.
type ReportSynthesisError struct {
	Message string
	Excerpt string
	Cause   error
}

func (e *ReportSynthesisError) Error() string {
	if e.Excerpt != "" {
		return fmt.Sprintf("failed to generate final report: %s (raw: %q)", e.Message, e.Excerpt)
	}
	return fmt.Sprintf("failed to generate final report: %s", e.Message)
}

func (e *ReportSynthesisError) Unwrap() error {
	return e.Cause
}
