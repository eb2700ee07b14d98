package strtab

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/astdict/compress"
	"github.com/arloliu/astdict/encoding"
	"github.com/arloliu/astdict/errs"
	"github.com/arloliu/astdict/format"
	"github.com/arloliu/astdict/internal/options"
	"github.com/arloliu/astdict/internal/pool"
	"github.com/arloliu/astdict/section"
)

// Reader decodes one string table from a byte source.
//
// The source is consumed strictly forward and is never retained after Read
// returns. Every byte is taken literally; there is no whitespace skipping or any
// other mode to restore afterwards.
//
// Note: The Reader is NOT thread-safe and NOT reusable. After Read, create a new
// Reader for the next table.
type Reader struct {
	in       io.Reader
	cfg      *ReaderConfig
	consumed bool
}

// NewReader creates a Reader for r.
//
// When r implements io.ByteReader it is used directly; otherwise it is read one
// byte at a time, so a stream positioned before a table is left positioned right
// after it.
//
// Parameters:
//   - r: Source positioned at the signature (if checked) or the count
//   - opts: Optional configuration (see ReaderOption)
//
// Returns:
//   - *Reader: Reader ready to decode
//   - error: errs.ErrInvalidOption for a nil source or invalid options
func NewReader(r io.Reader, opts ...ReaderOption) (*Reader, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil source", errs.ErrInvalidOption)
	}

	cfg := NewReaderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Reader{in: r, cfg: cfg}, nil
}

// Read decodes the string table.
//
// Decoding steps:
//  1. Verify the signature, when enabled
//  2. Decode the string count as a varint
//  3. Decode count strings; 0x00 terminates a string, 0x01 escapes the next byte
//
// On failure the returned Table still holds every string fully decoded before
// the failure, and Complete reports false. Signature and count failures leave it
// empty.
//
// Returns:
//   - Table: The decoded, possibly partial, table
//   - error: nil on success; otherwise wraps one of errs.ErrSignatureMismatch,
//     errs.ErrTruncatedSignature, errs.ErrTruncatedVarint, errs.ErrVarintOverflow,
//     errs.ErrTruncatedString, errs.ErrStringTooLong, errs.ErrReaderConsumed,
//     or a source or decompression error
func (r *Reader) Read() (Table, error) {
	if r.consumed {
		return Table{}, errs.ErrReaderConsumed
	}
	r.consumed = true

	table := newTable()

	in := r.in
	r.in = nil

	src, err := r.source(in)
	if err != nil {
		return table, err
	}

	err = r.decode(src, &table)
	table.bytesRead = src.count

	if err == nil {
		table.complete = true
		if r.cfg.lookupIndex {
			table.index.build(table.strings)
		}
	}

	return table, err
}

func (r *Reader) decode(src *countingByteReader, table *Table) error {
	if r.cfg.checkSignature {
		if _, err := section.ReadSignature(src); err != nil {
			return err
		}
	}

	count, _, err := encoding.ReadUvarint(src)
	if err != nil {
		return fmt.Errorf("read string count: %w", err)
	}
	table.declared = count

	capacity := count
	if capacity > uint64(r.cfg.maxPreallocation) {
		capacity = uint64(r.cfg.maxPreallocation)
	}
	table.strings = make([]string, 0, capacity)

	buf := pool.GetStringBuffer()
	defer pool.PutStringBuffer(buf)

	for i := uint64(0); i < count; i++ {
		start := src.count
		if err := r.readString(src, buf); err != nil {
			return fmt.Errorf("string %d at offset %d: %w", i, start, err)
		}
		table.strings = append(table.strings, buf.String())
	}

	return nil
}

// readString decodes one escaped, terminated string into buf.
func (r *Reader) readString(src io.ByteReader, buf *pool.ByteBuffer) error {
	buf.Reset()

	for {
		ch, err := src.ReadByte()
		if err != nil {
			return stringReadError(err)
		}

		switch ch {
		case section.TerminatorByte:
			return nil
		case section.EscapeByte:
			if ch, err = src.ReadByte(); err != nil {
				return stringReadError(err)
			}
		}

		if r.cfg.maxStringLength > 0 && buf.Len() >= r.cfg.maxStringLength {
			return fmt.Errorf("%w: limit %d", errs.ErrStringTooLong, r.cfg.maxStringLength)
		}
		_ = buf.WriteByte(ch)
	}
}

func stringReadError(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", errs.ErrTruncatedString, io.ErrUnexpectedEOF)
	}

	return fmt.Errorf("read string: %w", err)
}

// source prepares the byte source, decompressing the whole input first when the
// section is compressed.
func (r *Reader) source(in io.Reader) (*countingByteReader, error) {
	if r.cfg.compression == format.CompressionNone {
		return &countingByteReader{base: byteSource(in)}, nil
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read compressed string table: %w", err)
	}

	data, err := compress.Decompress(r.cfg.compression, raw)
	if err != nil {
		return nil, err
	}

	return &countingByteReader{base: bytes.NewReader(data)}, nil
}

// ReadStringTable decodes a string table from r, first verifying the "astdict"
// signature when checkSignature is true.
//
// It is shorthand for NewReader(r, WithSignatureCheck(checkSignature)) followed
// by Read; see Reader.Read for the partial-result contract.
func ReadStringTable(r io.Reader, checkSignature bool) (Table, error) {
	reader, err := NewReader(r, WithSignatureCheck(checkSignature))
	if err != nil {
		return Table{}, err
	}

	return reader.Read()
}

// Decode decodes a string table held in memory.
//
// Example:
//
//	table, err := strtab.Decode(section,
//	    strtab.WithSignatureCheck(true),
//	    strtab.WithCompression(format.CompressionZstd),
//	)
func Decode(data []byte, opts ...ReaderOption) (Table, error) {
	reader, err := NewReader(bytes.NewReader(data), opts...)
	if err != nil {
		return Table{}, err
	}

	return reader.Read()
}
