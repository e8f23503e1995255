package compress

import (
	"github.com/secolib/seco/format"
)

// Registry maps compression kind identifiers to their descriptors.
//
// Lookup is total: every byte value resolves to a descriptor, with
// unrecognized identifiers falling back to the Unknown descriptor whose
// support status is false. A registry is immutable once constructed and safe
// for concurrent use; repeated lookups of the same kind return the same
// descriptor pointer.
type Registry struct {
	none    *Descriptor
	zlib    *Descriptor
	zstd    *Descriptor
	unknown *Descriptor
}

// NewRegistry constructs an independent registry with one descriptor per
// kind. Support status is fixed at build time by the backend files compiled
// into this binary; constructing more registries never changes it.
func NewRegistry() *Registry {
	return &Registry{
		none: newDescriptor(format.KindNone,
			LevelBounds{},
			NewNoneCodec(), ""),
		zlib: newDescriptor(format.KindZlib,
			LevelBounds{Fastest: ZlibBestSpeed, Default: ZlibDefault, Smallest: ZlibBestSize},
			NewZlibCodec(), zlibUnavailableReason),
		zstd: newDescriptor(format.KindZStd,
			LevelBounds{Fastest: ZStdBestSpeed, Default: ZStdDefault, Smallest: ZStdBestSize},
			NewZStdCodec(), zstdUnavailableReason),
		unknown: newDescriptor(format.KindUnknown,
			LevelBounds{Fastest: UnknownLevel, Default: UnknownLevel, Smallest: UnknownLevel},
			NewUnknownCodec(), "unrecognized compression kind"),
	}
}

// Resolve maps a persisted kind tag to its descriptor. It never fails:
// identifiers outside the known set yield the Unknown descriptor.
func (r *Registry) Resolve(id uint8) *Descriptor {
	return r.For(format.KindFromByte(id))
}

// For returns the descriptor for an already-constructed kind. Like Resolve
// it is total; kinds outside the closed set yield the Unknown descriptor.
func (r *Registry) For(kind format.CompressionKind) *Descriptor {
	switch kind {
	case format.KindNone:
		return r.none
	case format.KindZlib:
		return r.zlib
	case format.KindZStd:
		return r.zstd
	default:
		return r.unknown
	}
}

// defaultRegistry backs the package-level lookup helpers. Package
// initialization runs single-threaded, so the value is fully constructed
// before any caller can observe it.
var defaultRegistry = NewRegistry()

// Default returns the shared process-wide registry. Components that want an
// explicit dependency can take a *Registry and be handed either this value or
// one of their own.
func Default() *Registry {
	return defaultRegistry
}

// Resolve maps a persisted kind tag to its descriptor in the default
// registry. It never fails.
func Resolve(id uint8) *Descriptor {
	return defaultRegistry.Resolve(id)
}

// For returns the default registry's descriptor for kind.
func For(kind format.CompressionKind) *Descriptor {
	return defaultRegistry.For(kind)
}
