package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/astdict/errs"
	"github.com/arloliu/astdict/format"
	ienc "github.com/arloliu/astdict/internal/encoding"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}
}

// sampleTable builds an encoded string table resembling an AST dictionary.
func sampleTable(n int) []byte {
	strs := make([]string, n)
	for i := range strs {
		strs[i] = fmt.Sprintf("Identifier_%d\x00kind=%d", i, i%7)
	}

	return ienc.EncodeStringTable(strs, true)
}

func TestGetCodec(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)
		require.Equal(t, typ, codec.Type())
	}

	_, err := GetCodec(format.CompressionType(0x7f))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestDecompressHelper(t *testing.T) {
	data := sampleTable(32)

	compressed, err := NewS2Compressor().Compress(data)
	require.NoError(t, err)

	out, err := Decompress(format.CompressionS2, compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)

	_, err = Decompress(format.CompressionType(0), compressed)
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = Decompress(format.CompressionZstd, []byte("not a zstd frame"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Zstd decompression")
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress([]byte{})
			require.NoError(t, err)
			require.Nil(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"empty_table", ienc.EncodeStringTable(nil, false)},
		{"single_byte", []byte{0x42}},
		{"escaped_bytes", ienc.EncodeStringTable([]string{"\x00", "\x01", "\x00\x01\x00"}, false)},
		{"small_table", sampleTable(8)},
		{"large_table", sampleTable(4096)},
		{"repeated_names", bytes.Repeat(ienc.AppendEscaped(nil, "BinaryExpression"), 2000)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotEmpty(t, compressed)

					t.Logf("original %d bytes, compressed %d bytes", len(tc.data), len(compressed))

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
		{"corrupted_header", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		if codec.Type() == format.CompressionNone {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	data := []byte("astdict\x00")
	codec := NewNoOpCompressor()

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])

	out, err = codec.Decompress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestLZ4Compressor_GrowsOutputBuffer(t *testing.T) {
	// Zeros compress far better than the initial 4x output estimate.
	data := make([]byte, 1<<20)

	codec := NewLZ4Compressor()
	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data))

	out, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const goroutines = 16
	data := sampleTable(256)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, goroutines)

			for range goroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()

					compressed, err := codec.Compress(data)
					if err != nil {
						errCh <- err
						return
					}
					out, err := codec.Decompress(compressed)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(data, out) {
						errCh <- fmt.Errorf("%s: round trip mismatch", name)
					}
				}()
			}

			wg.Wait()
			close(errCh)
			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}
