// Package compress provides the codecs for compressed string table sections.
//
// A string table is usually embedded uncompressed in its enclosing document. When
// a container stores the dictionary as a separately compressed section, the strtab
// package decompresses it with one of these codecs before decoding:
//
//	table, err := strtab.Decode(section, strtab.WithCompression(format.CompressionZstd))
//
// # Supported Algorithms
//
//	Type                    | Library                                 | Notes
//	------------------------|-----------------------------------------|--------------------------------
//	format.CompressionNone  | -                                       | pass-through, no copy
//	format.CompressionZstd  | klauspost/compress/zstd (valyala/gozstd | best ratio for text dictionaries
//	                        | with -tags gozstd)                      |
//	format.CompressionS2    | klauspost/compress/s2                   | fast, moderate ratio
//	format.CompressionLZ4   | pierrec/lz4/v4 (block format)           | fastest decompression
//
// String tables are text-heavy and repetitive, so Zstd is the usual choice when
// size matters and LZ4 when decode latency does.
//
// # Thread Safety
//
// All codecs are stateless values; pooled encoders and decoders are taken from
// sync.Pool per call, so a Codec may be shared across goroutines.
package compress
