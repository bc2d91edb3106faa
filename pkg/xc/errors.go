package xc

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by an APIError for HTTP 404 responses.
// The locator's shared-namespace fallback keys off this distinction, so 404
// must stay checkable separately from every other failure.
var ErrNotFound = errors.New("xc: object not found")

// APIError describes a non-2xx response from the control-plane API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("xc: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("xc: %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap exposes ErrNotFound for 404 responses so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	if e.StatusCode == 404 {
		return ErrNotFound
	}
	return nil
}

// IsNotFound reports whether err represents a 404 from the API.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
