package compress

import (
	"github.com/secolib/seco/format"
)

// UnknownCodec stands in for kind tags outside the known set. It reports
// itself unsupported and both operations panic: a caller that resolved an
// unrecognized tag must stop at the Supported check, never invoke the codec.
type UnknownCodec struct{}

var _ Codec = (*UnknownCodec)(nil)

// NewUnknownCodec creates the sentinel codec for unrecognized kinds.
func NewUnknownCodec() UnknownCodec {
	return UnknownCodec{}
}

// Kind returns format.KindUnknown.
func (c UnknownCodec) Kind() format.CompressionKind {
	return format.KindUnknown
}

// Supported always reports false.
func (c UnknownCodec) Supported() bool {
	return false
}

// Compress panics; there is no backend to dispatch to.
func (c UnknownCodec) Compress(_ []byte, _ int) []byte {
	panic("unknown codec is unavailable")
}

// Decompress panics; there is no backend to dispatch to.
func (c UnknownCodec) Decompress(_ []byte, _ int) ([]byte, error) {
	panic("unknown codec is unavailable")
}
