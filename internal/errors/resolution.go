package errors

import (
	"errors"
	"fmt"
)

// UnresolvableTypeError is the resolver's single hard failure: the
// requested raw type has no registered generator and no functional
// adapter applies. It is a configuration error and is reproducible for
// the same registry state and request.
type UnresolvableTypeError struct {
	*BaseError

	// TypeName is the unresolved raw type identity
	TypeName string
}

// NewUnresolvableTypeError creates an error for a type no generator can satisfy
func NewUnresolvableTypeError(typeName string) *UnresolvableTypeError {
	base := &BaseError{
		Code:    UnresolvableTypeErrorCode,
		Message: fmt.Sprintf("cannot find generator for %s", typeName),
	}
	base.WithContext("type", typeName)
	base.WithSuggestion(fmt.Sprintf("register a generator producing %s, or one of its subtypes", typeName))

	return &UnresolvableTypeError{BaseError: base, TypeName: typeName}
}

// IsUnresolvableType reports whether err is (or wraps) an UnresolvableTypeError
func IsUnresolvableType(err error) bool {
	var target *UnresolvableTypeError
	return errors.As(err, &target)
}

// TypeDefinitionError reports a conflicting or invalid type definition
// in a universe.
type TypeDefinitionError struct {
	*BaseError

	// TypeName is the conflicting type identity
	TypeName string
}

// NewTypeDefinitionError creates an error for an invalid universe definition
func NewTypeDefinitionError(typeName, message string) *TypeDefinitionError {
	base := &BaseError{
		Code:    TypeDefinitionErrorCode,
		Message: fmt.Sprintf("type %s: %s", typeName, message),
	}
	base.WithContext("type", typeName)

	return &TypeDefinitionError{BaseError: base, TypeName: typeName}
}

// UnknownTypeError reports a type-expression reference to a type the
// universe has never seen.
type UnknownTypeError struct {
	*BaseError

	// TypeName is the unknown name
	TypeName string

	// Expression is the full type expression being parsed
	Expression string
}

// NewUnknownTypeError creates an error for an undeclared type name
func NewUnknownTypeError(typeName, expression string) *UnknownTypeError {
	base := &BaseError{
		Code:    UnknownTypeErrorCode,
		Message: fmt.Sprintf("unknown type %q in %q", typeName, expression),
	}
	base.WithContext("type", typeName)
	base.WithContext("expression", expression)
	base.WithSuggestion("declare the type in the universe before requesting it")

	return &UnknownTypeError{BaseError: base, TypeName: typeName, Expression: expression}
}

// ParseError reports a malformed type expression
type ParseError struct {
	*BaseError

	// Expression is the input that failed to parse
	Expression string
}

// NewParseError creates an error for a malformed type expression
func NewParseError(expression string, cause error) *ParseError {
	base := &BaseError{
		Code:    ParseErrorCode,
		Message: fmt.Sprintf("malformed type expression %q: %v", expression, cause),
		Cause:   cause,
	}
	base.WithContext("expression", expression)

	return &ParseError{BaseError: base, Expression: expression}
}

// RegistrationError reports a generator whose declared producible type
// is not part of the universe.
type RegistrationError struct {
	*BaseError

	// TypeName is the undeclared producible type
	TypeName string
}

// NewRegistrationError creates an error for a generator declaring an unknown type
func NewRegistrationError(typeName string) *RegistrationError {
	base := &BaseError{
		Code:    RegistrationErrorCode,
		Message: fmt.Sprintf("generator declares producible type %q not present in the universe", typeName),
	}
	base.WithContext("type", typeName)
	base.WithSuggestion("define every producible type in the universe before registering generators")

	return &RegistrationError{BaseError: base, TypeName: typeName}
}
