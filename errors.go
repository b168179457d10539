package chat

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a configuration or request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrMissingCredential indicates no API key was supplied when one was
	// required. It is the only error allowed to end the process abnormally.
	ErrMissingCredential = errors.New("an API key is required")
)

// ServiceError is an error reported by the completion service itself, such as
// an invalid request, an authentication failure or an overloaded backend.
type ServiceError struct {
	StatusCode int    // HTTP status, 0 if unknown
	Type       string // provider error type, e.g. "invalid_request_error"
	Message    string
}

func (e *ServiceError) Error() string {
	switch {
	case e.Type != "" && e.StatusCode != 0:
		return fmt.Sprintf("%s (HTTP %d): %s", e.Type, e.StatusCode, e.Message)
	case e.Type != "":
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	default:
		return e.Message
	}
}

// TransportError is a failure to reach the completion service or to read its
// response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Error classes reported to the user.
const (
	ClassService    = "API error"
	ClassTransport  = "Transport error"
	ClassUnexpected = "Unexpected error"
)

// ErrorClass returns the user-facing class label of a per-turn error.
func ErrorClass(err error) string {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return ClassService
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return ClassTransport
	}
	return ClassUnexpected
}
