// Package errors defines the structured error taxonomy shared by the
// tablekit components.
//
// Exactly two kinds of failure exist: a referenced column is absent
// (KindColumnNotFound), or an argument has an invalid shape, type, or
// degenerate numeric value (KindInvalidValue). Invalid input is a
// programming error on the caller's side, not a transient condition, so
// there is no retry or recovery machinery here.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the two taxonomy branches.
type Kind string

const (
	// KindColumnNotFound marks references to columns that do not exist.
	KindColumnNotFound Kind = "column_not_found"
	// KindInvalidValue marks invalid shapes, invalid types, and
	// degenerate numeric cases (zero variance, zero range, quartiles
	// over too few observations).
	KindInvalidValue Kind = "invalid_value"
)

// Stable error codes carried on Error.Code.
const (
	CodeColumnNotFound   = "COLUMN_NOT_FOUND"
	CodeEmptySequence    = "EMPTY_SEQUENCE"
	CodeZeroVariance     = "ZERO_VARIANCE"
	CodeZeroRange        = "ZERO_RANGE"
	CodeInvalidWindow    = "INVALID_WINDOW"
	CodeInsufficientData = "INSUFFICIENT_DATA"
	CodeTypeMismatch     = "TYPE_MISMATCH"
	CodeShapeMismatch    = "SHAPE_MISMATCH"
	CodeInvalidQuantile  = "INVALID_QUANTILE"
	CodeInvalidConfig    = "INVALID_CONFIG"
)

// Error is a structured library error with a kind, a stable code, a
// human-readable message, and optional details.
type Error struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New creates a new Error with the given parameters
func New(kind Kind, code, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// NewWithDetails creates a new Error with additional details
func NewWithDetails(kind Kind, code, message string, details any) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ColumnNotFound creates a column-not-found error for a single column.
func ColumnNotFound(column string) *Error {
	return NewWithDetails(
		KindColumnNotFound,
		CodeColumnNotFound,
		fmt.Sprintf("column %q not found in table", column),
		column,
	)
}

// ColumnsNotFound creates a column-not-found error listing every
// missing column at once.
func ColumnsNotFound(columns []string) *Error {
	return NewWithDetails(
		KindColumnNotFound,
		CodeColumnNotFound,
		fmt.Sprintf("columns not found in table: %v", columns),
		columns,
	)
}

// InvalidValue creates an invalid-value error with the given code.
func InvalidValue(code, message string) *Error {
	return New(KindInvalidValue, code, message)
}

// InvalidValueWithDetails creates an invalid-value error with details.
func InvalidValueWithDetails(code, message string, details any) *Error {
	return NewWithDetails(KindInvalidValue, code, message, details)
}

// IsColumnNotFound reports whether err is a column-not-found error.
func IsColumnNotFound(err error) bool {
	return hasKind(err, KindColumnNotFound)
}

// IsInvalidValue reports whether err is an invalid-value error.
func IsInvalidValue(err error) bool {
	return hasKind(err, KindInvalidValue)
}

// CodeOf returns the stable code of err, or the empty string when err
// is not a tablekit error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
