// Package seco provides a compression codec registry and a self-describing
// binary format for sealed payloads and multi-section containers.
//
// Seco resolves compression algorithms through a closed registry (None, Zlib,
// Zstandard) where every kind byte resolves to a descriptor, including kinds
// this build cannot decode. Payloads travel as frames that record their own
// codec, sizes and checksum, so readers need no out-of-band configuration.
//
// # Core Features
//
//   - Total codec resolution: any kind byte maps to a descriptor, never an error
//   - Build-tag backend selection (pure Go, cgo zstd, or compiled-out stubs)
//   - Self-describing frames with xxHash64 payload checksums
//   - Named multi-section containers with O(1) hash-indexed lookup
//   - Little- or big-endian storage, detected automatically when reading
//   - Stateless codecs, safe for unbounded concurrency
//
// # Basic Usage
//
// Sealing and opening a single payload:
//
//	import "github.com/secolib/seco"
//
//	frame, err := seco.Seal(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	restored, err := seco.Open(frame)
//
// Bundling named sections into one container:
//
//	w, err := seco.NewWriter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.AddSection(".text", code)
//	w.AddSection(".debug_info", debugInfo)
//	data, err := w.Finish()
//
//	r, err := seco.OpenReader(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	code, err := r.Section(".text")
//
// Inspecting codec support at runtime:
//
//	desc := seco.For(format.KindZStd)
//	if !desc.Supported() {
//	    log.Printf("zstd unavailable: %s", desc.Reason())
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the compress and
// container packages, simplifying the most common use cases. For fine-grained
// control (custom registries, codec-level access, raw section layouts), use
// the compress, container and section packages directly.
package seco

import (
	"github.com/secolib/seco/compress"
	"github.com/secolib/seco/container"
	"github.com/secolib/seco/format"
	"github.com/secolib/seco/internal/hash"
)

var fastWriterOptions = []container.Option{
	container.WithCodec(format.KindZStd),
	container.WithLevel(compress.ZStdBestSpeed),
}

var compactWriterOptions = []container.Option{
	container.WithCodec(format.KindZStd),
	container.WithLevel(compress.ZStdBestSize),
}

// Seal compresses data and wraps it in a single self-describing frame.
//
// By default payloads are compressed with Zstandard at its default level and
// carry an xxHash64 checksum. Use container options to change the codec,
// level, checksum or byte order.
//
// Example:
//
//	frame, err := seco.Seal(payload,
//	    container.WithCodec(format.KindZlib),
//	    container.WithLevel(compress.ZlibBestSize),
//	)
func Seal(data []byte, opts ...container.Option) ([]byte, error) {
	return container.Seal(data, opts...)
}

// Open reverses Seal: it reads the frame's own header, decompresses the
// payload and verifies the checksum when present. The layout comes entirely
// from the frame; no options are needed to match the sealer's configuration.
func Open(frame []byte, opts ...container.Option) ([]byte, error) {
	return container.Open(frame, opts...)
}

// InspectFrame parses just the header of a sealed frame without
// decompressing. It works for compression kinds this build cannot decode;
// check FrameInfo.Supported before calling Open.
func InspectFrame(frame []byte, opts ...container.Option) (container.FrameInfo, error) {
	return container.InspectFrame(frame, opts...)
}

// NewWriter creates a container writer with custom options.
//
// This is the most flexible factory function, allowing full control over the
// codec, compression level, checksumming and byte order.
//
// Available options:
//   - container.WithCodec(format.KindNone|KindZlib|KindZStd)
//   - container.WithLevel(level)
//   - container.WithChecksum(true|false)
//   - container.WithLittleEndian() / container.WithBigEndian()
//   - container.WithRegistry(registry)
//
// Example:
//
//	w, err := seco.NewWriter(container.WithCodec(format.KindZlib))
func NewWriter(opts ...container.Option) (*container.Writer, error) {
	return container.NewWriter(opts...)
}

// NewFastWriter creates a container writer tuned for speed: Zstandard at its
// fastest level. Use this when containers are produced on a hot path and a
// few percent of extra size is acceptable.
func NewFastWriter() (*container.Writer, error) {
	return container.NewWriter(fastWriterOptions...)
}

// NewCompactWriter creates a container writer tuned for size: Zstandard at
// its smallest-output level. Use this for cold storage where encode time does
// not matter.
func NewCompactWriter() (*container.Writer, error) {
	return container.NewWriter(compactWriterOptions...)
}

// OpenReader parses and validates a container, returning a reader with
// random access to its sections. The container describes its own layout; of
// the options only container.WithRegistry has any effect.
func OpenReader(data []byte, opts ...container.Option) (*container.Reader, error) {
	return container.OpenReader(data, opts...)
}

// Resolve maps a compression kind byte to its descriptor in the default
// registry. Resolution is total: unrecognized bytes return the Unknown
// descriptor instead of failing.
func Resolve(id uint8) *compress.Descriptor {
	return compress.Resolve(id)
}

// For returns the default registry's descriptor for a compression kind.
func For(kind format.CompressionKind) *compress.Descriptor {
	return compress.For(kind)
}

// SectionID computes the xxHash64 identifier a container index stores for a
// section name. Useful for correlating index entries in stored containers
// with the names that produced them.
//
// Example:
//
//	id := seco.SectionID(".text") // deterministic across processes
func SectionID(name string) uint64 {
	return hash.ID(name)
}
