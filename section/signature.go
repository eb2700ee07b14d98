package section

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/astdict/errs"
)

// ReadSignature consumes exactly SignatureSize bytes from r and verifies them
// against Signature.
//
// The returned count is the number of bytes consumed, which is SignatureSize
// unless the source ended early. A short source yields errs.ErrTruncatedSignature;
// any other SignatureSize bytes yield errs.ErrSignatureMismatch.
func ReadSignature(r io.ByteReader) (int, error) {
	var buf [SignatureSize]byte

	for i := range buf {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return i, fmt.Errorf("%w: got %d of %d bytes: %w", errs.ErrTruncatedSignature, i, SignatureSize, io.ErrUnexpectedEOF)
			}

			return i, fmt.Errorf("read signature: %w", err)
		}
		buf[i] = b
	}

	if err := VerifySignature(buf[:]); err != nil {
		return SignatureSize, err
	}

	return SignatureSize, nil
}

// VerifySignature checks that data starts with Signature.
func VerifySignature(data []byte) error {
	if len(data) < SignatureSize {
		return fmt.Errorf("%w: got %d of %d bytes", errs.ErrTruncatedSignature, len(data), SignatureSize)
	}

	if string(data[:SignatureSize]) != Signature {
		return fmt.Errorf("%w: got %q", errs.ErrSignatureMismatch, data[:SignatureSize])
	}

	return nil
}
