package strtab

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/astdict/compress"
	"github.com/arloliu/astdict/format"
	ienc "github.com/arloliu/astdict/internal/encoding"
)

// encodeTable encodes strs with the reference encoder.
func encodeTable(t testing.TB, strs []string, withSignature bool) []byte {
	t.Helper()

	data := ienc.EncodeStringTable(strs, withSignature)
	require.NotEmpty(t, data)

	return data
}

// compressTable encodes strs and compresses the section with comp.
func compressTable(t testing.TB, strs []string, comp format.CompressionType) []byte {
	t.Helper()

	codec, err := compress.GetCodec(comp)
	require.NoError(t, err)

	data, err := codec.Compress(encodeTable(t, strs, true))
	require.NoError(t, err)

	return data
}

// plainReader hides every interface but io.Reader and records how many Read
// calls were made.
type plainReader struct {
	r     io.Reader
	calls int
}

func (p *plainReader) Read(b []byte) (int, error) {
	p.calls++
	return p.r.Read(b)
}

func newPlainReader(data []byte) *plainReader {
	return &plainReader{r: bytes.NewReader(data)}
}

// errAfterReader yields data and then fails with err.
type errAfterReader struct {
	data []byte
	err  error
}

func (e *errAfterReader) Read(b []byte) (int, error) {
	if len(e.data) == 0 {
		return 0, e.err
	}
	n := copy(b, e.data)
	e.data = e.data[n:]

	return n, nil
}
