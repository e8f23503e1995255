// Package compress provides the compression codec registry for seco payloads.
//
// Every payload carries a one-byte compression kind tag, and this package
// turns that tag back into behavior: a descriptor with the backend's name,
// its level bounds, whether this build can run it, and (when it can) the
// codec itself.
//
// # Overview
//
// Resolution is total. Any byte value maps to a descriptor, with tags outside
// the known set collapsing to the Unknown descriptor instead of failing:
//
//	desc := compress.Resolve(tag)
//	if !desc.Supported() {
//	    return fmt.Errorf("cannot decompress %q payload: %s", desc.Name(), desc.Reason())
//	}
//	out, err := desc.Codec().Decompress(payload, originalSize)
//
// The split between Descriptor and Codec keeps capability checks cheap and
// explicit: metadata (name, levels, support status) is always available, the
// implementation only behind a Supported gate.
//
// # Supported Algorithms
//
// **None** (format.KindNone)
//
//	codec := compress.NewNoneCodec()
//	same := codec.Compress(data, 0) // Returns data unchanged
//
// The identity transform. Use when:
//   - Data is already well-compressed or incompressible
//   - CPU is more critical than storage
//   - The frame layout is wanted without the compression cost
//
// **zlib** (format.KindZlib)
//
//	codec := compress.NewZlibCodec()
//	compressed := codec.Compress(data, compress.ZlibDefault)
//
// The most widely understood format. Use when:
//   - The payload must interoperate with other toolchains
//   - Moderate ratio at moderate speed is acceptable
//
// **Zstandard** (format.KindZStd)
//
//	codec := compress.NewZStdCodec()
//	compressed := codec.Compress(data, compress.ZStdDefault)
//
// Better ratios than zlib at comparable speed. Use when:
//   - Both producer and consumer understand zstd
//   - Storage or bandwidth is the primary concern
//
// **Unknown** (format.KindUnknown)
//
// The sentinel for unrecognized tags. Never supported, never invocable; it
// exists so resolution can stay total while still refusing to touch payloads
// this build cannot interpret.
//
// # Compression Levels
//
// Levels are backend-specific integers bounded by each descriptor's
// LevelBounds:
//
//	Kind    | Fastest | Default | Smallest
//	--------|---------|---------|---------
//	none    | 0       | 0       | 0
//	zlib    | 1       | 6       | 9
//	zstd    | 1       | 5       | 12
//
// Values outside the bounds are handed to the backend unmodified: zstd clamps
// them, zlib treats them as a programming error.
//
// # Error Handling
//
// The failure surface is narrow:
//   - Invoking an unsupported codec panics (programming error; gate on
//     Supported first)
//   - Failing to size an output buffer panics (allocation failure is fatal)
//   - Malformed input fails with errs.ErrDataCorrupted, wrapping the
//     backend's own diagnostic verbatim
//   - A payload larger than the caller's size assertion fails with
//     errs.ErrBufferTooSmall
//
// Compression itself never returns an error.
//
// # Build Configuration
//
// Backend availability is decided at build time and surfaces as descriptor
// metadata rather than compile errors:
//
//	Build tags      | zlib backend              | zstd backend
//	----------------|---------------------------|---------------------------
//	(default, cgo)  | klauspost/compress/zlib   | valyala/gozstd (libzstd)
//	CGO_ENABLED=0   | klauspost/compress/zlib   | klauspost/compress/zstd
//	nozlib          | stub, Supported() = false | unchanged
//	nozstd          | unchanged                 | stub, Supported() = false
//
// A binary built with a stub still resolves the kind, reports its name and
// level bounds, and explains the absence through Descriptor.Reason.
//
// # Thread Safety
//
// Codecs hold no mutable state and registries are immutable once built, so
// everything in this package is safe for concurrent use. Backends that pool
// encoder state do so internally.
//
// # Integration with Container Package
//
// The container package stores each section's kind tag in its frame header
// and resolves it through a Registry on open:
//
//	w, err := container.NewWriter(container.WithCodec(format.KindZStd))
//
// Readers never guess: an unrecognized or unsupported tag surfaces as a
// typed error naming the kind, before any payload bytes are touched.
package compress
