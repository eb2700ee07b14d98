package compress

import (
	"fmt"

	"github.com/arloliu/astdict/errs"
	"github.com/arloliu/astdict/format"
)

// Compressor compresses an encoded string table section.
//
// Memory management:
//   - Returned slice is owned by the caller unless documented otherwise
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a section compressed by the matching Compressor.
//
// It returns an error if data is corrupted or was produced by another algorithm.
// Empty input decompresses to nil without error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
	// Type returns the compression type the codec implements.
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
//
// Returns:
//   - Codec: Codec instance, safe to share across goroutines
//   - error: errs.ErrUnsupportedCompression for an unknown type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}

// Decompress decompresses data with the built-in codec for compressionType.
func Decompress(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompression: %w", compressionType, err)
	}

	return out, nil
}
