//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrAborted)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "A file with name 'foo' exists already.",
		Location: "/work/foo",
		Context:  map[string]string{"Command": "init"},
		Hint:     "Choose a different project name.",
	}

	output := detail.Error()

	assert.Contains(t, output, "ERROR: validation failed")
	assert.Contains(t, output, "Location: /work/foo")
	assert.Contains(t, output, "Command: init")
	assert.Contains(t, output, "exists already")
	assert.Contains(t, output, "Hint: Choose a different project name.")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid value", "/path", "Use public, private or none")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "invalid value", detail.Message)
	assert.Equal(t, "/path", detail.Location)
	assert.Equal(t, "Use public, private or none", detail.Hint)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("no token", "/home/me/.wiptools/me.pat", "")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"aborted", fmt.Errorf("prompt: %w", ErrAborted), ExitSuccess},
		{"validation", Wrap(ErrValidation, "bad"), ExitValidationError},
		{"permission", Wrap(ErrPermission, "bad"), ExitPermissionDenied},
		{"not found", Wrap(ErrNotFound, "bad"), ExitNotFound},
		{"exit error wins", &ExitError{Code: 42, Err: ErrValidation}, 42},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Code: ExitNotFound}
	assert.Equal(t, "Not Found", err.Error())

	wrapped := &ExitError{Code: ExitGeneralError, Err: errors.New("boom")}
	assert.Equal(t, "boom", wrapped.Error())
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
