// Package errs defines the sentinel errors shared across seco packages.
//
// Callsites wrap these values with fmt.Errorf("%w: detail", ...) so callers
// can classify failures with errors.Is while still seeing the backend
// diagnostic in the message.
package errs

import "errors"

// Codec errors returned by compress.Codec operations.
var (
	// ErrDataCorrupted indicates the backend rejected the input as structurally
	// invalid: corrupt stream, bad checksum or incompatible format. The wrapped
	// message carries the backend diagnostic verbatim.
	ErrDataCorrupted = errors.New("data corrupted")

	// ErrBufferTooSmall indicates the caller's asserted decompressed size is
	// smaller than the true decompressed length. Callers may retry with a
	// larger size.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// Frame and container errors returned by the container package.
var (
	// ErrCodecUnavailable indicates a frame or container names a compression
	// kind that is unrecognized or not compiled into this build.
	ErrCodecUnavailable = errors.New("codec unavailable")

	// ErrInvalidLevel indicates a compression level outside the codec's
	// [fastest, smallest] bounds.
	ErrInvalidLevel = errors.New("invalid compression level")

	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidHeader      = errors.New("invalid header")
	ErrChecksumMismatch   = errors.New("checksum mismatch")

	ErrInvalidSectionName = errors.New("invalid section name")
	ErrSectionExists      = errors.New("section already exists")
	ErrSectionNotFound    = errors.New("section not found")
	ErrNoSections         = errors.New("no sections added")
	ErrWriterFinished     = errors.New("writer already finished")
	ErrTooManySections    = errors.New("too many sections")
	ErrContainerTooLarge  = errors.New("container too large")
)
