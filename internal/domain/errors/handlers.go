package errors

import "net/http"

// FieldErrors maps request field names to user-facing Spanish messages.
type FieldErrors map[string]string

// ValidationError is a validation failure carrying per-field messages, so
// the frontend can annotate the exact inputs that were rejected.
type ValidationError struct {
	fields FieldErrors
}

// NewValidationError builds a ValidationError from per-field messages.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the machine-readable error type
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-facing error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return ""
}

// Fields returns the per-field messages.
func (e *ValidationError) Fields() FieldErrors {
	return e.fields
}
