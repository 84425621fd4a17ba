// Package errors provides structured error types for panelcut.
//
// Geometry never fails: infeasible arcs and degenerate hole layouts fall back
// locally. The errors here come from the edges of the system, such as
// settings files, output paths, renderers and the one fatal core condition,
// computing material utilization without a shape.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - MISSING_* / *_NOT_FOUND: Absent input
//   - RENDER_FAILED: Output generation failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidShape, "unsupported side count: %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidShape) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "failed to write %s", path)
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
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidShape    Code = "INVALID_SHAPE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidSettings Code = "INVALID_SETTINGS"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeUnsupportedVer  Code = "UNSUPPORTED_VERSION"

	// Missing input errors
	ErrCodeMissingShape Code = "MISSING_SHAPE"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
	if errors.As(err, &e) {
		return e.Code == code
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

// VersionError reports a settings snapshot written by a newer release.
type VersionError struct {
	Got, Max int
}

// Error implements the error interface.
func (e *VersionError) Error() string {
	return fmt.Sprintf("settings version %d is newer than supported version %d", e.Got, e.Max)
}

// Code returns the error code for this error type.
func (e *VersionError) Code() Code {
	return ErrCodeUnsupportedVer
}
