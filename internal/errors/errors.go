// Package errors provides sentinel errors, structured error details and exit
// codes for the wip CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a violated pre-condition: a target that already
	// exists, an invalid flag value, a malformed parameter file.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a missing project, component or credential file.
	ErrNotFound = errors.New("not found")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrAborted indicates the user declined to answer a required prompt.
	// It is not a failure and maps to exit code 0.
	ErrAborted = errors.New("interrupted")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("ERROR: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a pre-condition violation with details.
// The returned error carries ExitValidationError.
func NewValidationError(message, location, hint string) error {
	return &ExitError{
		Code: ExitValidationError,
		Err: &DetailError{
			Type:     "validation failed",
			Message:  message,
			Location: location,
			Hint:     hint,
			Cause:    ErrValidation,
		},
	}
}

// NewNotFoundError creates a not found error with details.
// The returned error carries ExitNotFound.
func NewNotFoundError(message, location, hint string) error {
	return &ExitError{
		Code: ExitNotFound,
		Err: &DetailError{
			Type:     "not found",
			Message:  message,
			Location: location,
			Hint:     hint,
			Cause:    ErrNotFound,
		},
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
