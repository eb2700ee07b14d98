package strtab

import "io"

// countingByteReader counts the bytes taken from base.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}
	r.count++

	return b, nil
}

// singleByteReader adapts an io.Reader without buffering, so nothing past the
// last byte the decoder needs is taken from the underlying stream.
type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, err
	}

	return s.buf[0], nil
}

// byteSource returns r as an io.ByteReader, wrapping it only when needed.
func byteSource(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}

	return &singleByteReader{r: r}
}
