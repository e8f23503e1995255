//go:build nozstd

package compress

const zstdUnavailableReason = "built without zstd support"

// Supported reports that Zstandard is not available in this build.
func (c ZStdCodec) Supported() bool {
	return false
}

// Compress panics. Builds tagged nozstd carry no Zstandard backend, and
// callers are expected to consult the registry before compressing.
func (c ZStdCodec) Compress(data []byte, level int) []byte {
	panic("zstd codec is unavailable")
}

// Decompress panics. Builds tagged nozstd carry no Zstandard backend, and
// callers are expected to consult the registry before decompressing.
func (c ZStdCodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	panic("zstd codec is unavailable")
}
