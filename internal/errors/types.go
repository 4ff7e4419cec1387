package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeUnauthorized  ErrorType = "unauthorized"
	ErrorTypeExternal      ErrorType = "external"
	ErrorTypeInternal      ErrorType = "internal"
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeTimeout       ErrorType = "timeout"
	ErrorTypeCanceled      ErrorType = "canceled"
)

// CheckoutError is the base error type for all application errors
type CheckoutError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *CheckoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *CheckoutError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *CheckoutError) WithContext(key string, value any) *CheckoutError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new CheckoutError
func New(errorType ErrorType, message string) *CheckoutError {
	return &CheckoutError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errorType ErrorType, message string) *CheckoutError {
	return &CheckoutError{
		Type:    errorType,
		Message: message,
		Cause:   err,
		Context: make(map[string]any),
	}
}

// Validation creates a validation error
func Validation(message string) *CheckoutError {
	return New(ErrorTypeValidation, message)
}

// NotFound creates a not found error
func NotFound(resource string) *CheckoutError {
	return New(ErrorTypeNotFound, fmt.Sprintf("%s not found", resource))
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) *CheckoutError {
	return New(ErrorTypeUnauthorized, message)
}

// External creates an external service error
func External(service string, err error) *CheckoutError {
	return Wrap(err, ErrorTypeExternal, fmt.Sprintf("external service %s failed", service))
}

// Internal creates an internal error
func Internal(message string) *CheckoutError {
	return New(ErrorTypeInternal, message)
}

// Configuration creates a configuration error
func Configuration(message string) *CheckoutError {
	return New(ErrorTypeConfiguration, message)
}

// Timeout creates a timeout error
func Timeout(operation string) *CheckoutError {
	return New(ErrorTypeTimeout, fmt.Sprintf("operation %s timed out", operation))
}

// Canceled creates an error for an operation the user backed out of
func Canceled(operation string) *CheckoutError {
	return New(ErrorTypeCanceled, fmt.Sprintf("%s canceled", operation))
}

// TypeOf returns the ErrorType of the first CheckoutError in err's chain,
// or an empty type when there is none.
func TypeOf(err error) ErrorType {
	var ce *CheckoutError
	if stderrors.As(err, &ce) {
		return ce.Type
	}
	return ""
}

// IsType reports whether err carries a CheckoutError of the given type
func IsType(err error, errorType ErrorType) bool {
	return TypeOf(err) == errorType
}

// UserMessage returns the message intended for dialogs: the CheckoutError
// message when present, the raw error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ce *CheckoutError
	if stderrors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

// As is errors.As from the standard library
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Is is errors.Is from the standard library
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
