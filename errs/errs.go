// Package errs defines the sentinel errors returned by astdict packages.
//
// Errors are wrapped with fmt.Errorf("%w: ...") to add context such as byte
// offsets or string indexes, so callers should match them with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

// Input errors.
var (
	// ErrTruncatedInput is the parent of every error caused by the source ending early.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrTruncatedSignature is returned when fewer than 7 signature bytes are available.
	ErrTruncatedSignature = fmt.Errorf("%w: signature", ErrTruncatedInput)

	// ErrTruncatedVarint is returned when the source ends before a varint is complete.
	ErrTruncatedVarint = fmt.Errorf("%w: varint", ErrTruncatedInput)

	// ErrTruncatedString is returned when the source ends before a string terminator.
	ErrTruncatedString = fmt.Errorf("%w: string", ErrTruncatedInput)

	ErrSignatureMismatch = errors.New("string table signature mismatch")
	ErrVarintOverflow    = errors.New("varint overflows 64 bits")
	ErrStringTooLong     = errors.New("string exceeds maximum length")
)

// API errors.
var (
	ErrIndexOutOfRange        = errors.New("string table index out of range")
	ErrInvalidOption          = errors.New("invalid option")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrReaderConsumed         = errors.New("reader already consumed")
)
