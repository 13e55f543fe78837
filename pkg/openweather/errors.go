package openweather

import (
	"context"
	"errors"
	"fmt"
)

// ErrClientClosed is returned by every operation after Close
var ErrClientClosed = errors.New("openweather: client is closed")

// ValidationError reports a missing or conflicting request field.
// It is always returned before any network activity.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "openweather: invalid request: " + e.Message
	}
	return fmt.Sprintf("openweather: invalid request: %s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError is returned when the API answers with an unexpected status.
// Body holds the raw response text.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweather: api returned status %d: %s", e.StatusCode, e.Body)
}

// CanceledError is returned when the caller's context ends while a request is in flight
type CanceledError struct {
	Err error
}

func (e *CanceledError) Error() string {
	return "openweather: request canceled: " + e.Err.Error()
}

func (e *CanceledError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// canceled converts a context error into a CanceledError; it returns nil when ctx is still live
func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &CanceledError{Err: err}
	}
	return nil
}
