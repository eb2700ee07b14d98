package encoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/astdict/errs"
)

// MaxVarintLen is the maximum number of bytes a 64-bit varint occupies.
const MaxVarintLen = 10

const (
	varintDataMask     = 0x7f
	varintContinuation = 0x80
)

// ReadUvarint decodes one unsigned varint from r.
//
// Each byte contributes its low 7 bits, least-significant group first; bit 7 set
// means another byte follows. The accumulator is 64 bits wide: a varint longer than
// MaxVarintLen bytes, or whose tenth byte carries more than the top value bit,
// fails with errs.ErrVarintOverflow instead of wrapping.
//
// Parameters:
//   - r: Byte source, consumed one byte at a time
//
// Returns:
//   - uint64: The decoded value. When the source ends mid-sequence this holds the
//     bits accumulated so far; it is only meaningful when err is nil.
//   - int: Number of bytes consumed from r
//   - error: errs.ErrTruncatedVarint wrapping io.EOF (no byte available) or
//     io.ErrUnexpectedEOF (source ended after a continuation byte),
//     errs.ErrVarintOverflow, or the source's own read error
func ReadUvarint(r io.ByteReader) (uint64, int, error) {
	var value uint64
	var shift uint

	for n := 0; ; n++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return 0, 0, fmt.Errorf("%w: %w", errs.ErrTruncatedVarint, io.EOF)
				}

				return value, n, fmt.Errorf("%w: ended after %d bytes: %w", errs.ErrTruncatedVarint, n, io.ErrUnexpectedEOF)
			}

			return value, n, fmt.Errorf("read varint: %w", err)
		}

		if n == MaxVarintLen-1 && b > 1 {
			return 0, n + 1, fmt.Errorf("%w: byte %d is 0x%02x", errs.ErrVarintOverflow, n, b)
		}

		value |= uint64(b&varintDataMask) << shift
		shift += 7

		if b&varintContinuation == 0 {
			return value, n + 1, nil
		}
	}
}

// UvarintSize returns the number of bytes v occupies as a varint.
// It is 1 exactly when v < 128.
func UvarintSize(v uint64) int {
	n := 1
	for v >= varintContinuation {
		v >>= 7
		n++
	}

	return n
}
