// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidHRP indicates the human-readable part is empty, longer
	// than MaxHRPLength, contains a character outside the printable ASCII
	// range 33-126 or mixes upper and lower case.
	ErrInvalidHRP = ErrorKind("ErrInvalidHRP")

	// ErrInvalidChar indicates the data or checksum part of a string
	// contains a character that is not part of the bech32 charset.
	ErrInvalidChar = ErrorKind("ErrInvalidChar")

	// ErrInvalidValue indicates a data value does not fit in 5 bits and so
	// has no character in the charset.
	ErrInvalidValue = ErrorKind("ErrInvalidValue")

	// ErrMixedCase indicates a string contains both upper and lower case
	// characters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrMissingSeparator indicates a string does not contain the '1'
	// separator between the human-readable and data parts.
	ErrMissingSeparator = ErrorKind("ErrMissingSeparator")

	// ErrTooShort indicates a string is shorter than MinLength or does not
	// leave room for a full checksum after the separator.
	ErrTooShort = ErrorKind("ErrTooShort")

	// ErrTooLong indicates an encoded string is, or would be, longer than
	// MaxLength.
	ErrTooLong = ErrorKind("ErrTooLong")

	// ErrChecksumMismatch indicates none of the allowed versions produce a
	// valid checksum for a string.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrAmbiguousVariant indicates more than one of the allowed versions
	// produce a valid checksum for a string.
	ErrAmbiguousVariant = ErrorKind("ErrAmbiguousVariant")

	// ErrNonZeroPadding indicates the bits left over after regrouping are
	// not all zero.
	ErrNonZeroPadding = ErrorKind("ErrNonZeroPadding")

	// ErrIncompleteGroup indicates regrouping left a partial group that is
	// at least as wide as an input group, so the input did not end on a
	// group boundary.
	ErrIncompleteGroup = ErrorKind("ErrIncompleteGroup")

	// ErrInvalidBitGroups indicates an unsupported bit group width was
	// requested from ConvertBits.
	ErrInvalidBitGroups = ErrorKind("ErrInvalidBitGroups")

	// ErrInvalidVersion indicates an unknown bech32 version was requested.
	ErrInvalidVersion = ErrorKind("ErrInvalidVersion")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to bech32 encoding or decoding.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string

	// Index is the position in the input of the character that caused
	// the error, or -1 when the error is not tied to a single character.
	Index int
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc, Index: -1}
}

// makeIndexError creates an Error that points at the character at index i.
func makeIndexError(kind ErrorKind, i int, desc string) Error {
	return Error{Err: kind, Description: desc, Index: i}
}
