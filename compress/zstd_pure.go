//go:build !cgo && !nozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/secolib/seco/errs"
)

const zstdUnavailableReason = ""

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPools pools zstd encoders for reuse, one pool per encoder speed
// class. The library collapses the native 1..22 level range into four speed
// classes, so pooling per class keeps every requested level warm without
// holding 22 separate encoders.
var zstdEncoderPools = func() [4]*sync.Pool {
	var pools [4]*sync.Pool
	for i := range pools {
		level := zstd.EncoderLevel(i + 1)
		pools[i] = &sync.Pool{
			New: func() any {
				encoder, err := zstd.NewWriter(nil,
					zstd.WithEncoderLevel(level),
					zstd.WithEncoderCRC(false), // Disable CRC, frame checksums cover integrity
				)
				if err != nil {
					// This should never happen with valid options
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}
				return encoder
			},
		}
	}
	return pools
}()

// zstdEncoderPool maps a native zstd level to the pool holding encoders of
// the matching speed class.
func zstdEncoderPool(level int) *sync.Pool {
	mapped := zstd.EncoderLevelFromZstd(level)
	return zstdEncoderPools[int(mapped)-1]
}

// Supported reports that Zstandard is available in this build.
func (c ZStdCodec) Supported() bool {
	return true
}

// Compress compresses the input data using Zstandard at the given level.
// Uses a pooled encoder for better performance (eliminates allocation overhead).
func (c ZStdCodec) Compress(data []byte, level int) []byte {
	// Get encoder from pool (reuses "warmed up" encoder)
	pool := zstdEncoderPool(level)
	encoder := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	return encoder.EncodeAll(data, make([]byte, 0, zstdCompressBound(len(data))))
}

// Decompress decompresses Zstd-compressed data into a buffer sized by the
// caller. Uses a pooled decoder for better performance (eliminates
// allocation overhead).
//
// This method validates the input data format and returns an error if the
// data is corrupted or was not compressed with Zstd. If the stored payload
// turns out larger than expectedSize, the decompressed bytes are discarded
// and errs.ErrBufferTooSmall is returned.
func (c ZStdCodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	// Get decoder from pool (reuses "warmed up" decoder)
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder
	// Even if this call fails, the decoder can be reused for next call
	decompressed, err := decoder.DecodeAll(data, make([]byte, 0, expectedSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDataCorrupted, err)
	}

	if len(decompressed) > expectedSize {
		return nil, fmt.Errorf("%w: Destination buffer is too small", errs.ErrBufferTooSmall)
	}

	return decompressed, nil
}
