package compress

import "github.com/arloliu/astdict/format"

// ZstdCompressor implements Zstandard frames.
//
// The pure Go klauspost/compress implementation is used by default. Building
// with the gozstd tag switches to the cgo valyala/gozstd binding; both produce
// and accept standard zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
