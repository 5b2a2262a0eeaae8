// ABOUTME: Error types and handling for the newsagg library
// ABOUTME: Provides structured errors with context for library operations

package newsagg

import (
	"errors"
	"fmt"

	coreerrors "newsagg-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration indicates invalid client options
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeValidation indicates an invalid source definition
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeInterrupted indicates the caller cancelled an aggregation
	ErrorTypeInterrupted ErrorType = "interrupted"

	// ErrorTypeUnavailable indicates the worker pool refused work
	ErrorTypeUnavailable ErrorType = "unavailable"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// fromCoreError translates aggregation errors into library errors
func fromCoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case coreerrors.IsInterrupted(err):
		return NewError(ErrorTypeInterrupted, "aggregation interrupted").WithCause(err)
	case coreerrors.IsRejected(err):
		return NewError(ErrorTypeUnavailable, "aggregation unavailable").WithCause(err)
	case coreerrors.IsValidation(err):
		return NewError(ErrorTypeValidation, "invalid source").WithCause(err)
	default:
		return NewError(ErrorTypeInternal, "aggregation failed").WithCause(err)
	}
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == errType
	}
	return false
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsInterruptedError checks if an error is an interrupted aggregation
func IsInterruptedError(err error) bool {
	return isType(err, ErrorTypeInterrupted)
}

// IsUnavailableError checks if an error is a rejected aggregation
func IsUnavailableError(err error) bool {
	return isType(err, ErrorTypeUnavailable)
}
