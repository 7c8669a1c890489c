// Package errors provides structured error types for grigorchuk.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (words, directions, config)
//   - UNKNOWN_*: References to things the engine never produced
//   - INTERNAL_*: Broken invariants
//
// The algebra itself cannot fail: every operation on interned elements is
// total. Errors only arise at the edges, when parsing user input or when a
// caller hands back a node or element that was never materialized.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidWord, "invalid generator %q", r)
//	if errors.Is(err, errors.ErrCodeInvalidWord) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidWord      Code = "INVALID_WORD"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"

	// Reference errors
	ErrCodeUnknownNode    Code = "UNKNOWN_NODE"
	ErrCodeUnknownElement Code = "UNKNOWN_ELEMENT"
	ErrCodeUnlabeled      Code = "UNLABELED_ELEMENT"

	// Internal errors
	ErrCodeLabelCycle Code = "LABEL_CYCLE"
	ErrCodeInternal   Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// DirectionError reports a step direction outside the trivalent range.
type DirectionError struct {
	Direction int // The rejected direction
	Max       int // Number of valid directions
}

// Error implements the error interface.
func (e *DirectionError) Error() string {
	return fmt.Sprintf("direction %d out of range [0,%d)", e.Direction, e.Max)
}

// Code returns the error code for this error type.
func (e *DirectionError) Code() Code {
	return ErrCodeInvalidDirection
}
