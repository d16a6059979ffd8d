package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidIdentifier = errors.New("invalid identifier format")

	// Store errors
	ErrConnection     = errors.New("document store unreachable")
	ErrStoreOperation = errors.New("document store operation failed")
)

// Entity errors
var (
	ErrStudentNotFound    = NewResourceNotFoundError("student not found")
	ErrCourseNotFound     = NewResourceNotFoundError("course not found")
	ErrUniversityNotFound = NewResourceNotFoundError("university not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewInvalidIdentifierError reports a malformed identifier for the named field
func NewInvalidIdentifierError(field, value string) error {
	return (&CustomError{
		Err:     ErrInvalidIdentifier,
		Message: "invalid " + field + " format",
	}).WithDetails(map[string]interface{}{field: value})
}

// NewStoreError wraps a driver error so callers only see ErrStoreOperation
func NewStoreError(op string, err error) error {
	return &CustomError{
		Err:     errors.Join(ErrStoreOperation, err),
		Message: op + " failed",
	}
}

// NewConnectionError wraps a driver error raised because the store could not be reached
func NewConnectionError(op string, err error) error {
	return &CustomError{
		Err:     errors.Join(ErrConnection, err),
		Message: op + " failed: document store unreachable",
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
