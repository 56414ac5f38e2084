package segy

import (
	"errors"

	"github.com/scigolib/segy/internal/utils"
)

// Code is one of the library's stable, small integer error identifiers,
// per the format's error contract. The Code field of any *CodecError
// returned by this package holds one of these; CodeOf extracts it from a
// wrapped error.
type Code = utils.Code

// Stable error codes, re-exported from internal/utils so callers never
// need to import the internal package to branch on failure kind.
const (
	OK                = utils.OK
	FSeekError        = utils.FSeekError
	FReadError        = utils.FReadError
	FWriteError       = utils.FWriteError
	FOpenError        = utils.FOpenError
	InvalidField      = utils.InvalidField
	InvalidSorting    = utils.InvalidSorting
	InvalidOffsets    = utils.InvalidOffsets
	InvalidArgs       = utils.InvalidArgs
	MissingLineIndex  = utils.MissingLineIndex
	TraceSizeMismatch = utils.TraceSizeMismatch
	MMapInvalid       = utils.MMapInvalid
	MMapError         = utils.MMapError
)

// Sentinel errors for errors.Is, matching by code regardless of the
// wrapped context or cause (see (*utils.CodecError).Is).
var (
	ErrFSeek             = &utils.CodecError{Code: utils.FSeekError}
	ErrFRead             = &utils.CodecError{Code: utils.FReadError}
	ErrFWrite            = &utils.CodecError{Code: utils.FWriteError}
	ErrFOpen             = &utils.CodecError{Code: utils.FOpenError}
	ErrInvalidField      = &utils.CodecError{Code: utils.InvalidField}
	ErrInvalidSorting    = &utils.CodecError{Code: utils.InvalidSorting}
	ErrInvalidOffsets    = &utils.CodecError{Code: utils.InvalidOffsets}
	ErrInvalidArgs       = &utils.CodecError{Code: utils.InvalidArgs}
	ErrMissingLineIndex  = &utils.CodecError{Code: utils.MissingLineIndex}
	ErrTraceSizeMismatch = &utils.CodecError{Code: utils.TraceSizeMismatch}
	ErrMMapInvalid       = &utils.CodecError{Code: utils.MMapInvalid}
	ErrMMapError         = &utils.CodecError{Code: utils.MMapError}
)

// CodeOf extracts the stable error code from err, returning OK if err is
// nil and InvalidArgs if err does not wrap a *CodecError (which should
// not happen for errors returned from this package, but gives callers
// a defined fallback rather than a panic).
func CodeOf(err error) Code {
	if err == nil {
		return utils.OK
	}
	var codecErr *utils.CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Code
	}
	return utils.InvalidArgs
}
