package jobsearch

import "fmt"

// SearchError means one role query could not be completed.
type SearchError struct {
	Role  string
	Cause error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("job search failed for role %q: %v", e.Role, e.Cause)
}

func (e *SearchError) Unwrap() error {
	return e.Cause
}
