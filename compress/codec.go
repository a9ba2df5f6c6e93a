// Package compress provides the compression codecs available to the blob
// container.
//
// Encoded temporal payloads are small and dense, so the codecs favor low
// per-call overhead: zstd for ratio, S2 and LZ4 for speed, and a no-op codec
// for payloads too small to benefit. The zstd implementation switches between
// the cgo-backed valyala/gozstd and the pure-Go klauspost/compress backend at
// build time.
package compress

import "fmt"

// CompressionType identifies a compression algorithm on the wire. The values
// are part of the blob format and must not change.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0x1
	// CompressionZstd compresses with Zstandard.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 compresses with S2.
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 compresses with LZ4 block format.
	CompressionLZ4 CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(0x%x)", uint8(c))
	}
}

// IsValid reports whether the type names a known algorithm.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// Compressor compresses a complete payload in one call.
//
// The returned slice is owned by the caller and the input is never modified;
// implementations may reuse internal buffers between calls.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm. It validates the
// input format and fails on corrupted or mismatched data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm. All
// built-in codecs are stateless and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
