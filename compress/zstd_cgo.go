//go:build cgo && !nozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/secolib/seco/errs"
)

const zstdUnavailableReason = ""

// Supported reports that Zstandard is available in this build.
func (c ZStdCodec) Supported() bool {
	return true
}

// Compress compresses the input data using Zstandard at the given level.
// The cgo binding passes the native level straight to libzstd.
func (c ZStdCodec) Compress(data []byte, level int) []byte {
	return gozstd.CompressLevel(make([]byte, 0, zstdCompressBound(len(data))), data, level)
}

// Decompress decompresses Zstd-compressed data into a buffer sized by the
// caller.
//
// This method validates the input data format and returns an error if the
// data is corrupted or was not compressed with Zstd. If the stored payload
// turns out larger than expectedSize, the decompressed bytes are discarded
// and errs.ErrBufferTooSmall is returned.
func (c ZStdCodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(make([]byte, 0, expectedSize), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDataCorrupted, err)
	}

	if len(decompressed) > expectedSize {
		return nil, fmt.Errorf("%w: Destination buffer is too small", errs.ErrBufferTooSmall)
	}

	return decompressed, nil
}
