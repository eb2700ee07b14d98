// Package astdict decodes the string table ("dictionary") section of binary AST
// documents.
//
// A string table stores every distinct string of a document once; the rest of
// the document refers to strings by their index in the table. The section is an
// optional 7-byte "astdict" signature, a varint count, and that many
// null-terminated strings in which 0x01 escapes the following byte.
//
// # Basic Usage
//
// Decoding a table from a stream, verifying the signature:
//
//	import "github.com/arloliu/astdict"
//
//	table, err := astdict.ReadStringTable(r, true)
//	if err != nil {
//	    return err
//	}
//	for i, s := range table.All() {
//	    fmt.Printf("%d: %q\n", i, s)
//	}
//
// Decoding a zstd-compressed section held in memory:
//
//	table, err := astdict.DecodeCompressed(data, format.CompressionZstd)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the strtab package.
// For limits, eager lookup indexes and other options, use strtab directly. The
// encoding package exposes the varint reader, section the byte layout, compress
// the section codecs, and errs the sentinel errors.
package astdict

import (
	"io"

	"github.com/arloliu/astdict/format"
	"github.com/arloliu/astdict/section"
	"github.com/arloliu/astdict/strtab"
)

// Signature is the magic marker that may precede a string table.
const Signature = section.Signature

// Table is a decoded string table. See strtab.Table.
type Table = strtab.Table

// ReadStringTable decodes a string table from r, verifying the "astdict"
// signature first when checkSignature is true.
//
// On failure the returned Table holds the strings fully decoded before the error;
// check the error (or Table.Complete) before trusting it.
//
// Parameters:
//   - r: Source positioned at the start of the table
//   - checkSignature: Whether the 7-byte signature precedes the count
//
// Returns:
//   - Table: The decoded, possibly partial, table
//   - error: A decode error wrapping one of the errs sentinels
func ReadStringTable(r io.Reader, checkSignature bool) (Table, error) {
	return strtab.ReadStringTable(r, checkSignature)
}

// NewReader creates a configurable string table reader. See strtab.NewReader.
//
// Example:
//
//	reader, err := astdict.NewReader(r,
//	    strtab.WithSignatureCheck(true),
//	    strtab.WithMaxStringLength(4096),
//	)
func NewReader(r io.Reader, opts ...strtab.ReaderOption) (*strtab.Reader, error) {
	return strtab.NewReader(r, opts...)
}

// Decode decodes a string table held in memory. See strtab.Decode.
func Decode(data []byte, opts ...strtab.ReaderOption) (Table, error) {
	return strtab.Decode(data, opts...)
}

// DecodeCompressed decompresses a signed string table section with the given
// compression and decodes it.
//
// This is the recommended entry point for dictionaries stored as a separate,
// compressed section of a container. The signature is always verified.
func DecodeCompressed(data []byte, compression format.CompressionType) (Table, error) {
	return strtab.Decode(data,
		strtab.WithSignatureCheck(true),
		strtab.WithCompression(compression),
	)
}
