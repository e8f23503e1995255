package compress

import "github.com/secolib/seco/format"

// ZlibCodec provides zlib (RFC 1950) compression and decompression.
//
// The zlib format is the lingua franca of binary toolchains: widely
// supported, moderate ratio, moderate speed. Prefer zstd when both peers
// understand it.
//
// Regular builds back the codec with klauspost/compress/zlib, an
// API-compatible, pure-Go replacement for the standard library package.
// Builds tagged nozlib carry a stub that reports the kind as unsupported.
type ZlibCodec struct{}

var _ Codec = (*ZlibCodec)(nil)

// NewZlibCodec creates a new zlib codec.
//
// Returns:
//   - ZlibCodec: New zlib codec instance
//
// Example:
//
//	codec := NewZlibCodec()
//	compressed := codec.Compress(data, ZlibDefault)
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Kind returns the compression kind identifier for zlib.
func (c ZlibCodec) Kind() format.CompressionKind {
	return format.KindZlib
}

// zlibCompressBound returns the worst-case compressed size for n input
// bytes: the deflate bound used by zlib's own compressBound.
func zlibCompressBound(n int) int {
	bound := n + n>>12 + n>>14 + n>>25 + 13
	if bound < n {
		// Overflow: the output buffer cannot be represented.
		panic("allocation failed")
	}

	return bound
}
