// Package utils provides small utilities shared by the segy codec and geometry
// packages: a pooled byte-buffer allocator, overflow-checked arithmetic, and
// the error wrapper that carries the library's stable error codes.
package utils

import "fmt"

// Code is one of the library's stable, small integer error identifiers.
// Callers that need to branch on failure kind (rather than just log it)
// compare against these constants instead of parsing error strings.
type Code int

// Error codes, stable across releases per the format's error contract.
const (
	OK Code = iota
	FSeekError
	FReadError
	FWriteError
	FOpenError
	InvalidField
	InvalidSorting
	InvalidOffsets
	InvalidArgs
	MissingLineIndex
	TraceSizeMismatch
	MMapInvalid
	MMapError
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case FSeekError:
		return "FSEEK_ERROR"
	case FReadError:
		return "FREAD_ERROR"
	case FWriteError:
		return "FWRITE_ERROR"
	case FOpenError:
		return "FOPEN_ERROR"
	case InvalidField:
		return "INVALID_FIELD"
	case InvalidSorting:
		return "INVALID_SORTING"
	case InvalidOffsets:
		return "INVALID_OFFSETS"
	case InvalidArgs:
		return "INVALID_ARGS"
	case MissingLineIndex:
		return "MISSING_LINE_INDEX"
	case TraceSizeMismatch:
		return "TRACE_SIZE_MISMATCH"
	case MMapInvalid:
		return "MMAP_INVALID"
	case MMapError:
		return "MMAP_ERROR"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// CodecError is a structured error carrying one of the stable codes above
// plus the operation context and, when available, an underlying cause.
type CodecError struct {
	Code    Code
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Context)
}

// Unwrap provides compatibility with errors.Unwrap/errors.Is/errors.As.
func (e *CodecError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *CodecError carrying the same code,
// letting callers match a sentinel (e.g. segy.ErrInvalidField) via
// errors.Is regardless of the wrapped context or cause.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WrapError builds a CodecError for the given code and context, wrapping cause.
// Returns nil when cause is nil, so a wrap at the end of a function that may
// or may not have failed can be written unconditionally.
func WrapError(code Code, context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &CodecError{Code: code, Context: context, Cause: cause}
}

// NewError builds a CodecError with no underlying cause, for validation
// failures detected directly by the library rather than propagated from I/O.
func NewError(code Code, context string) error {
	return &CodecError{Code: code, Context: context}
}
