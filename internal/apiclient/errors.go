package apiclient

import "fmt"

// ValidationError reports input rejected locally, before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// APIError reports a non-success response (or a malformed body) from the
// backend. Message carries the server-provided error text when the body had
// one, a generic message otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}
