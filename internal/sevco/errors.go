package sevco

import (
	"errors"
	"fmt"
)

// ErrNoExecutions is returned by LatestExecution when the server reports zero
// run records for the integration config.
var ErrNoExecutions = errors.New("no execution found")

// APIError is any non-2xx response. Status and body are kept verbatim for
// diagnosis; nothing is retried.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("sevco api: %s %s: %s", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("sevco api: %s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// MissingFieldError is a response body that lacks a field this client
// requires. Required fields are never silently defaulted.
type MissingFieldError struct {
	Record string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s response missing required field %q", e.Record, e.Field)
}
