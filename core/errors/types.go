// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates absorbed source failures from the run-level failures surfaced to callers

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// InterruptedError is returned when the caller cancels an aggregation run.
// Partial results are discarded.
type InterruptedError struct {
	Cause error
}

// Error implements the error interface
func (e *InterruptedError) Error() string {
	if e.Cause == nil {
		return "aggregation interrupted"
	}
	return fmt.Sprintf("aggregation interrupted: %v", e.Cause)
}

// Unwrap returns the underlying cause
func (e *InterruptedError) Unwrap() error {
	return e.Cause
}

// RejectedError is returned when the worker pool refuses a unit of work
type RejectedError struct {
	Target string
	Cause  error
}

// Error implements the error interface
func (e *RejectedError) Error() string {
	return fmt.Sprintf("aggregation rejected for target %s: %v", e.Target, e.Cause)
}

// Unwrap returns the underlying cause
func (e *RejectedError) Unwrap() error {
	return e.Cause
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsInterrupted checks if an error is an InterruptedError
func IsInterrupted(err error) bool {
	var interruptedErr *InterruptedError
	return errors.As(err, &interruptedErr)
}

// IsRejected checks if an error is a RejectedError
func IsRejected(err error) bool {
	var rejectedErr *RejectedError
	return errors.As(err, &rejectedErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
