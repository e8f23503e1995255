//go:build nozlib

package compress

const zlibUnavailableReason = "built without zlib support"

// Supported reports that zlib is not available in this build.
func (c ZlibCodec) Supported() bool {
	return false
}

// Compress panics. Builds tagged nozlib carry no zlib backend, and callers
// are expected to consult the registry before compressing.
func (c ZlibCodec) Compress(data []byte, level int) []byte {
	panic("zlib codec is unavailable")
}

// Decompress panics. Builds tagged nozlib carry no zlib backend, and callers
// are expected to consult the registry before decompressing.
func (c ZlibCodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	panic("zlib codec is unavailable")
}
