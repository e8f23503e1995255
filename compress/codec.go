package compress

import (
	"github.com/secolib/seco/format"
)

// Codec is the stateless compression strategy bound to exactly one
// format.CompressionKind.
//
// Implementations hold no mutable state, so a single value is safe to invoke
// concurrently from any number of goroutines. Codecs are reached through
// their Descriptor; callers must check Supported before invoking Compress or
// Decompress, since operations on an unsupported codec panic rather than
// return an error (skipping the capability check is a programming error, not
// a runtime condition).
type Codec interface {
	// Kind returns the compression kind this codec implements.
	Kind() format.CompressionKind

	// Supported reports whether this build carries a working backend for the
	// codec. It mirrors the owning Descriptor's support status and never
	// panics, even for backends compiled out.
	Supported() bool

	// Compress compresses data at the given backend-specific level and
	// returns a newly allocated buffer shrunk to the compressed length.
	//
	// The output buffer is sized up front by the backend's worst-case bound
	// for len(data). There is no error return: running out of address space
	// while sizing the buffer is fatal (panic), and an invalid level is a
	// programming error.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte, level int) []byte

	// Decompress decompresses data into a buffer of exactly expectedSize
	// bytes, the caller's assertion of the original length.
	//
	// When the stream ends before the buffer fills, the result is truncated
	// to the actual length and returned without error. A stream longer than
	// expectedSize fails with errs.ErrBufferTooSmall; structurally invalid
	// input fails with errs.ErrDataCorrupted carrying the backend diagnostic.
	// The call never silently truncates.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte, expectedSize int) ([]byte, error)
}

// LevelBounds documents the backend-specific compression levels of a codec:
// the fastest level, the backend default, and the level producing the
// smallest output. Bounds are fixed per backend, not discovered at runtime.
type LevelBounds struct {
	Fastest  int
	Default  int
	Smallest int
}

// Backend level bounds. Values outside [Fastest, Smallest] are passed to the
// backend unmodified; zlib rejects them, zstd clamps them.
const (
	ZlibBestSpeed = 1 // ZlibBestSpeed is the fastest zlib level.
	ZlibDefault   = 6 // ZlibDefault is the standard zlib level.
	ZlibBestSize  = 9 // ZlibBestSize is the smallest-output zlib level.

	ZStdBestSpeed = 1  // ZStdBestSpeed is the fastest zstd level.
	ZStdDefault   = 5  // ZStdDefault is the standard zstd level.
	ZStdBestSize  = 12 // ZStdBestSize is the smallest-output zstd level.

	// UnknownLevel marks the level bounds of the Unknown descriptor, which
	// has no backend to tune.
	UnknownLevel = -999
)
