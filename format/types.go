package format

// CompressionKind identifies which compression backend, if any, applies to a
// byte buffer. Values are part of the persisted wire contract: they are stored
// as a single-byte tag next to compressed payloads and must never be
// renumbered.
type CompressionKind uint8

const (
	KindNone    CompressionKind = 0   // KindNone represents uncompressed data.
	KindZlib    CompressionKind = 1   // KindZlib represents zlib (DEFLATE) compression.
	KindZStd    CompressionKind = 2   // KindZStd represents Zstandard compression.
	KindUnknown CompressionKind = 255 // KindUnknown represents an unrecognized kind tag.
)

// KindFromByte converts a persisted kind tag into a CompressionKind.
//
// The conversion is total: tags outside the known set coerce to KindUnknown.
// It never fails, so callers can feed it untrusted bytes and rely on the
// registry's support check instead of validating tags themselves.
func KindFromByte(b uint8) CompressionKind {
	switch CompressionKind(b) {
	case KindNone, KindZlib, KindZStd:
		return CompressionKind(b)
	default:
		return KindUnknown
	}
}

// String returns the canonical backend name: "none", "zlib", "zstd" or
// "unknown". These names double as the display names in codec descriptors.
func (k CompressionKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindZlib:
		return "zlib"
	case KindZStd:
		return "zstd"
	default:
		return "unknown"
	}
}
