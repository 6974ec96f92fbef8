// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeNegativeValue indicates a value that must not be negative
	TypeNegativeValue Type = "NEGATIVE_VALUE"

	// TypeLessOrEqualToZero indicates a value that must be strictly positive
	TypeLessOrEqualToZero Type = "LESS_OR_EQUAL_TO_ZERO"

	// TypeSignMismatch indicates values that must share the same sign
	TypeSignMismatch Type = "SIGN_MISMATCH"

	// TypeLengthMismatch indicates parallel sequences of unequal length
	TypeLengthMismatch Type = "LENGTH_MISMATCH"

	// TypeSymbolNotFound indicates a template symbol with zero occurrences
	TypeSymbolNotFound Type = "SYMBOL_NOT_FOUND"

	// TypeSymbolRepeated indicates a template symbol with multiple occurrences
	TypeSymbolRepeated Type = "SYMBOL_REPEATED"

	// TypeDomain indicates an input outside a formula's valid domain
	TypeDomain Type = "DOMAIN_ERROR"

	// TypeDefinition indicates a defective report definition
	TypeDefinition Type = "DEFINITION_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotImplemented indicates an unimplemented optional capability
	TypeNotImplemented Type = "NOT_IMPLEMENTED"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Negative creates a negative-value error for a named argument
func Negative(name string, value float64) *Error {
	return Newf(TypeNegativeValue, "invalid negative value for %s: %v", name, value).
		WithContext("argument", name)
}

// LessOrEqualToZero creates a non-positive-value error for a named argument
func LessOrEqualToZero(name string, value float64) *Error {
	return Newf(TypeLessOrEqualToZero, "invalid non-positive value for %s: %v", name, value).
		WithContext("argument", name)
}

// SignMismatch creates a sign-mismatch error for a set of named arguments
func SignMismatch(names ...string) *Error {
	return Newf(TypeSignMismatch, "values must share the same sign: %v", names)
}

// LengthMismatch creates a length-mismatch error for parallel sequences
func LengthMismatch(names ...string) *Error {
	return Newf(TypeLengthMismatch, "sequences differ in length: %v", names)
}

// SymbolNotFound creates a missing-template-symbol error
func SymbolNotFound(symbol string) *Error {
	return Newf(TypeSymbolNotFound, "symbol %q not found in the template", symbol).
		WithContext("symbol", symbol)
}

// SymbolRepeated creates a repeated-template-symbol error
func SymbolRepeated(symbol string) *Error {
	return Newf(TypeSymbolRepeated, "symbol %q found multiple times in the template", symbol).
		WithContext("symbol", symbol)
}

// Domain creates a domain-range error
func Domain(message string) *Error {
	return New(TypeDomain, message)
}

// Domainf creates a formatted domain-range error
func Domainf(format string, args ...interface{}) *Error {
	return Newf(TypeDomain, format, args...)
}

// Definition creates a report-definition error
func Definition(message string) *Error {
	return New(TypeDefinition, message)
}

// NotImplemented creates a not-implemented error
func NotImplemented(capability string) *Error {
	return Newf(TypeNotImplemented, "capability not implemented: %s", capability)
}
