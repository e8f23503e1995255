package compress

import (
	"fmt"

	"github.com/secolib/seco/format"
)

// Descriptor is the immutable per-kind metadata record: display name, level
// bounds, and whether this build carries a working implementation. It is
// created once per registry and never mutated afterwards, so concurrent reads
// need no synchronization.
type Descriptor struct {
	kind      format.CompressionKind
	name      string
	levels    LevelBounds
	supported bool
	reason    string
	impl      Codec
}

// newDescriptor builds the descriptor for a codec. The implementation
// reference is retained only when the codec reports itself supported;
// unsupported descriptors keep the reason string instead.
func newDescriptor(kind format.CompressionKind, levels LevelBounds, impl Codec, reason string) *Descriptor {
	d := &Descriptor{
		kind:      kind,
		name:      kind.String(),
		levels:    levels,
		supported: impl.Supported(),
	}
	if d.supported {
		d.impl = impl
	} else {
		d.reason = reason
	}

	return d
}

// Kind returns the compression kind this descriptor describes.
func (d *Descriptor) Kind() format.CompressionKind {
	return d.kind
}

// Name returns the human-readable backend name: "none", "zlib", "zstd" or
// "unknown".
func (d *Descriptor) Name() string {
	return d.name
}

// Levels returns the backend's fixed level bounds. Bounds are documented
// metadata and remain meaningful even when the backend is not compiled in.
func (d *Descriptor) Levels() LevelBounds {
	return d.levels
}

// Supported reports whether this build carries a working implementation.
// It is always safe to call, including for unrecognized kinds.
func (d *Descriptor) Supported() bool {
	return d.supported
}

// Reason returns why the backend is unsupported ("built without zlib
// support", "unrecognized compression kind"). It is empty when Supported
// reports true.
func (d *Descriptor) Reason() string {
	return d.reason
}

// Codec returns the implementation behind this descriptor.
//
// Calling Codec on an unsupported descriptor panics: a correctly operating
// caller checks Supported first, so reaching an absent implementation is a
// programming error rather than a recoverable condition.
func (d *Descriptor) Codec() Codec {
	if !d.supported {
		panic(fmt.Sprintf("%s codec is unavailable: %s", d.name, d.reason))
	}

	return d.impl
}
