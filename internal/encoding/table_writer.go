package encoding

import (
	"encoding/binary"

	"github.com/arloliu/astdict/section"
)

// AppendUvarint appends the varint encoding of v to dst.
func AppendUvarint(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// AppendEscaped appends s to dst as a string body: 0x00 and 0x01 are prefixed
// with the escape byte, and the terminator is appended last.
func AppendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == section.TerminatorByte || c == section.EscapeByte {
			dst = append(dst, section.EscapeByte)
		}
		dst = append(dst, c)
	}

	return append(dst, section.TerminatorByte)
}

// EncodeStringTable encodes strings as a complete string table section,
// optionally prefixed with the signature.
//
// This is a reference encoder for tests, benchmarks and demos; the public API
// only decodes.
func EncodeStringTable(strings []string, withSignature bool) []byte {
	size := binary.MaxVarintLen64
	if withSignature {
		size += section.SignatureSize
	}
	for _, s := range strings {
		size += len(s) + 1
	}

	buf := make([]byte, 0, size)
	if withSignature {
		buf = append(buf, section.Signature...)
	}

	buf = AppendUvarint(buf, uint64(len(strings)))
	for _, s := range strings {
		buf = AppendEscaped(buf, s)
	}

	return buf
}
