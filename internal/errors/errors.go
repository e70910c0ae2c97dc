package errors

import (
	"fmt"
	"runtime"
)

// ErrorType classifies a failure.
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeIO            ErrorType = "io"
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeComputation   ErrorType = "computation"
)

// StructuredError carries the failing operation, a message, an optional
// cause and free-form context.
type StructuredError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
	Context   map[string]interface{}
	Stack     []uintptr
}

// Error implements the error interface
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Operation, e.Message)
}

// Unwrap returns the underlying cause
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new structured error
func New(errType ErrorType, operation, message string) *StructuredError {
	return &StructuredError{
		Type:      errType,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]interface{}),
		Stack:     captureStack(),
	}
}

// Wrap wraps err with an operation and message. It returns nil for a nil err.
func Wrap(err error, errType ErrorType, operation, message string) *StructuredError {
	if err == nil {
		return nil
	}
	se := New(errType, operation, message)
	se.Cause = err
	return se
}

// WithContext adds context information to an error
func (e *StructuredError) WithContext(key string, value interface{}) *StructuredError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Is reports whether target is a StructuredError of the same type, so
// callers can match on category with errors.Is.
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	if !ok {
		return false
	}
	return t.Type == e.Type && t.Operation == "" && t.Message == ""
}

// captureStack captures the current stack trace
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:]) // skip runtime.Callers, captureStack and New
	return pcs[:n]
}

// Kind returns a bare error of the given type for use as an errors.Is target.
func Kind(errType ErrorType) error {
	return &StructuredError{Type: errType}
}

// NewValidationError creates a validation error
func NewValidationError(operation, message string) *StructuredError {
	return New(ErrorTypeValidation, operation, message)
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(operation, message string) *StructuredError {
	return New(ErrorTypeConfiguration, operation, message)
}

// NewComputationError creates a computation error
func NewComputationError(operation, message string) *StructuredError {
	return New(ErrorTypeComputation, operation, message)
}

// WrapValidationError wraps an error as a validation error
func WrapValidationError(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeValidation, operation, message)
}

// WrapIOError wraps an error raised by a reader or writer
func WrapIOError(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeIO, operation, message)
}

// WrapConfigurationError wraps an error as a configuration error
func WrapConfigurationError(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeConfiguration, operation, message)
}
