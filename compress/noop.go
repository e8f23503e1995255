package compress

import (
	"fmt"

	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/format"
)

// NoneCodec is the identity transform for format.KindNone: compression and
// decompression return the input unchanged. It is supported on every build
// configuration regardless of which backends are compiled in.
//
// Useful when the data is already compressed, incompressible, or when the
// caller wants the frame layout without the CPU cost.
type NoneCodec struct{}

var _ Codec = (*NoneCodec)(nil)

// NewNoneCodec creates the identity codec.
func NewNoneCodec() NoneCodec {
	return NoneCodec{}
}

// Kind returns format.KindNone.
func (c NoneCodec) Kind() format.CompressionKind {
	return format.KindNone
}

// Supported always reports true; the identity transform needs no backend.
func (c NoneCodec) Supported() bool {
	return true
}

// Compress returns the input slice as-is for any level, without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data afterwards if they plan to use
// the returned slice.
func (c NoneCodec) Compress(data []byte, _ int) []byte {
	return data
}

// Decompress returns the input slice as-is when it fits the caller's
// asserted size. Stored data longer than expectedSize fails with
// errs.ErrBufferTooSmall; the identity transform has no way to shrink it.
func (c NoneCodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	if len(data) > expectedSize {
		return nil, fmt.Errorf("%w: stored data is %d bytes, caller expected at most %d",
			errs.ErrBufferTooSmall, len(data), expectedSize)
	}

	return data, nil
}
