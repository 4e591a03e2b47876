// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"

	"go.uber.org/multierr"
)

// Type identifies the category of error
type Type string

const (
	// TypeUsage indicates input that does not have the expression shape
	TypeUsage Type = "USAGE_ERROR"

	// TypeParsing indicates a malformed value token
	TypeParsing Type = "PARSING_ERROR"

	// TypeUnknownUnit indicates unit text that resolves to no catalog entry
	TypeUnknownUnit Type = "UNKNOWN_UNIT"

	// TypeFamilyMismatch indicates units from different families in one expression
	TypeFamilyMismatch Type = "FAMILY_MISMATCH"

	// TypeFormulaCompound indicates a formula target given several source components
	TypeFormulaCompound Type = "FORMULA_COMPOUND"

	// TypeFormulaTransform indicates a formula with no case for the other unit
	TypeFormulaTransform Type = "FORMULA_TRANSFORM"

	// TypePrecision indicates a rejected precision directive. It is a warning.
	TypePrecision Type = "PRECISION_WARNING"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type" yaml:"type"`
	Message string                 `json:"message" yaml:"message"`
	Cause   error                  `json:"-" yaml:"-"`
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
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

// IsType reports whether err, or any error it wraps or combines, is of type t.
func IsType(err error, t Type) bool {
	for _, e := range multierr.Errors(err) {
		var de *Error
		if stderrors.As(e, &de) && de.Type == t {
			return true
		}
	}
	return false
}

// As returns the first domain error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Usage creates a usage error
func Usage(message string) *Error {
	return New(TypeUsage, message)
}

// NoSeparator is returned when an expression has neither "=" nor " to ".
func NoSeparator(input string) *Error {
	return New(TypeUsage, "expected <value><unit> ... =|to <unit>[:<precision>]").
		WithContext("input", input)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// UnknownUnit creates an unknown unit error
func UnknownUnit(unit string) *Error {
	return Newf(TypeUnknownUnit, "Unknown unit: %s", unit).
		WithContext("unit", unit)
}

// UnknownUnitInFamily creates an unknown unit error for a unit missing from the required family
func UnknownUnitInFamily(unit, family string) *Error {
	return UnknownUnit(unit).WithContext("family", family)
}

// FamilyMismatch creates a unit type mismatch error
func FamilyMismatch(expected, actual, unit string) *Error {
	return Newf(TypeFamilyMismatch, "Unit type mismatch: mixed '%s' with '%s'", expected, actual).
		WithContext("expected_family", expected).
		WithContext("family", actual).
		WithContext("unit", unit)
}

// FormulaCompound creates an error for a formula target with several source components
func FormulaCompound(target string, components int) *Error {
	return Newf(TypeFormulaCompound, "Compound values cannot be converted to %s", target).
		WithContext("unit", target).
		WithContext("components", components)
}

// FormulaTransform creates an error for a formula lacking a case for a unit
func FormulaTransform(from, to string) *Error {
	return Newf(TypeFormulaTransform, "No conversion from %s to %s", from, to).
		WithContext("unit", from).
		WithContext("target", to)
}

// Precision creates a precision warning
func Precision(rejected string, substitute int, reason string) *Error {
	return Newf(TypePrecision, "Not a valid precision: %s (%s, using %d instead)", rejected, reason, substitute).
		WithContext("rejected", rejected).
		WithContext("substitute", substitute)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
