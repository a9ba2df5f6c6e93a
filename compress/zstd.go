package compress

// ZstdCompressor compresses with Zstandard. It favors compression ratio over
// speed, which suits archived or transmitted blobs read infrequently.
//
// The backend is selected at build time: cgo builds use valyala/gozstd, pure
// Go builds fall back to klauspost/compress/zstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
