package errors

import (
	"fmt"
	"strings"
)

// PropgenError defines the base interface for all propgen errors
type PropgenError interface {
	error
	ErrorCode() ErrorCode
	Context() map[string]interface{}
	Suggestions() []string
	Unwrap() error
}

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota

	// UnresolvableTypeErrorCode: a requested raw type has no registered
	// generator and is not adaptable as a functional interface
	UnresolvableTypeErrorCode

	// TypeDefinitionErrorCode: a universe definition conflict
	TypeDefinitionErrorCode

	// UnknownTypeErrorCode: a type expression names a type the universe
	// has never seen
	UnknownTypeErrorCode

	// ParseErrorCode: a malformed type expression
	ParseErrorCode

	// RegistrationErrorCode: a generator declares a producible type the
	// universe has never seen
	RegistrationErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case UnresolvableTypeErrorCode:
		return "UnresolvableTypeError"
	case TypeDefinitionErrorCode:
		return "TypeDefinitionError"
	case UnknownTypeErrorCode:
		return "UnknownTypeError"
	case ParseErrorCode:
		return "ParseError"
	case RegistrationErrorCode:
		return "RegistrationError"
	default:
		return "UnknownError"
	}
}

// BaseError provides a common implementation of the PropgenError interface
type BaseError struct {
	Code        ErrorCode              // type of error
	Message     string                 // error message
	Cause       error                  // underlying error cause
	ContextData map[string]interface{} // additional context information
	Hints       []string               // helpful suggestions for fixing the error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.Message
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

// Context returns the additional context information
func (e *BaseError) Context() map[string]interface{} {
	return e.ContextData
}

// Suggestions returns helpful hints for fixing the error
func (e *BaseError) Suggestions() []string {
	return e.Hints
}

// Unwrap returns the underlying error cause
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a context key/value pair to the error
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.ContextData == nil {
		e.ContextData = make(map[string]interface{})
	}
	e.ContextData[key] = value
	return e
}

// WithSuggestion attaches a suggestion to the error
func (e *BaseError) WithSuggestion(hint string) *BaseError {
	e.Hints = append(e.Hints, hint)
	return e
}

// Detailed returns the message together with any suggestions, for
// user-facing diagnostics.
func (e *BaseError) Detailed() string {
	if len(e.Hints) == 0 {
		return e.Message
	}

	var sb strings.Builder
	sb.WriteString(e.Message)
	for _, hint := range e.Hints {
		sb.WriteString(fmt.Sprintf("\n  hint: %s", hint))
	}
	return sb.String()
}
