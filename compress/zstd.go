package compress

import "github.com/secolib/seco/format"

// ZStdCodec provides Zstandard compression and decompression.
//
// Zstandard trades a little compression speed for substantially better
// ratios than zlib at comparable levels, making it the preferred kind for:
//   - Cold storage and archival of sealed containers
//   - Network transmission where bandwidth is limited
//   - Payloads that are written once and read many times
//
// The backend is selected at build time: cgo builds bind libzstd through
// valyala/gozstd, pure-Go builds use klauspost/compress/zstd, and builds
// tagged nozstd carry a stub that reports the kind as unsupported.
type ZStdCodec struct{}

var _ Codec = (*ZStdCodec)(nil)

// NewZStdCodec creates a new Zstandard codec.
//
// Returns:
//   - ZStdCodec: New Zstandard codec instance
//
// Example:
//
//	codec := NewZStdCodec()
//	compressed := codec.Compress(data, ZStdDefault)
func NewZStdCodec() ZStdCodec {
	return ZStdCodec{}
}

// Kind returns the compression kind identifier for Zstandard.
func (c ZStdCodec) Kind() format.CompressionKind {
	return format.KindZStd
}

// zstdCompressBound returns the worst-case compressed size for n input
// bytes, mirroring the ZSTD_COMPRESSBOUND macro: the input size plus
// input/256, plus a margin for inputs below one 128 KiB block.
func zstdCompressBound(n int) int {
	bound := n + n>>8
	if n < 128<<10 {
		bound += (128<<10 - n) >> 11
	}

	if bound < n {
		panic("allocation failed")
	}

	return bound
}
