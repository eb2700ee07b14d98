// Package strtab decodes astdict string tables.
//
// A string table is the string-interning section of a binary AST document: every
// distinct identifier or literal is stored once, and the rest of the document
// refers to it by index. See package section for the byte layout.
//
// # Basic Usage
//
// Decoding from a stream:
//
//	table, err := strtab.ReadStringTable(f, true)
//	if err != nil {
//	    return fmt.Errorf("read dictionary: %w", err)
//	}
//	name, _ := table.At(3)
//
// Decoding an in-memory, compressed section with limits:
//
//	table, err := strtab.Decode(data,
//	    strtab.WithSignatureCheck(true),
//	    strtab.WithCompression(format.CompressionZstd),
//	    strtab.WithMaxStringLength(1<<20),
//	)
//
// # Partial Results
//
// Decoding stops at the first error. The returned Table keeps every string decoded
// before it, Complete reports false, and Len is lower than DeclaredCount when the
// input was truncated:
//
//	table, err := strtab.ReadStringTable(r, false)
//	if errors.Is(err, errs.ErrTruncatedInput) {
//	    log.Printf("kept %d of %d strings", table.Len(), table.DeclaredCount())
//	}
//
// # Sources
//
// Any io.Reader works. Sources implementing io.ByteReader (bufio.Reader,
// bytes.Reader) are read through ReadByte; other readers are read one byte per
// Read call so the stream is never advanced past the end of the table.
package strtab
