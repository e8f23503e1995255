//go:build !nozlib

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/internal/pool"
)

const zlibUnavailableReason = ""

// Supported reports that zlib is available in this build.
func (c ZlibCodec) Supported() bool {
	return true
}

// Compress compresses data at the given zlib level (ZlibBestSpeed through
// ZlibBestSize). The output buffer is sized by the deflate worst-case bound
// and shrunk to the actual compressed length.
//
// An invalid level is a programming error and panics with the backend's
// stream-error diagnostic, mirroring what zlib's compress2 reports.
func (c ZlibCodec) Compress(data []byte, level int) []byte {
	// Ownership of the buffer transfers to the caller, so it is sized up
	// front rather than drawn from a pool.
	buf := pool.NewByteBuffer(zlibCompressBound(len(data)))

	w, err := zlib.NewWriterLevel(buf, level)
	if err != nil {
		panic(fmt.Sprintf("zlib error: Z_STREAM_ERROR: %v", err))
	}
	if _, err := w.Write(data); err != nil {
		panic(fmt.Sprintf("zlib error: Z_STREAM_ERROR: %v", err))
	}
	if err := w.Close(); err != nil {
		panic(fmt.Sprintf("zlib error: Z_STREAM_ERROR: %v", err))
	}

	return buf.Bytes()
}

// Decompress inflates data into a buffer of exactly expectedSize bytes.
//
// A stream that ends before the buffer fills is returned truncated to its
// actual length. A stream with more than expectedSize bytes fails with
// errs.ErrBufferTooSmall and the Z_BUF_ERROR diagnostic; malformed input,
// including checksum mismatches, fails with errs.ErrDataCorrupted and the
// Z_DATA_ERROR diagnostic.
func (c ZlibCodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib error: Z_DATA_ERROR: %v", errs.ErrDataCorrupted, err)
	}
	defer r.Close()

	out := make([]byte, expectedSize)
	filled := 0
	for filled < expectedSize {
		n, err := r.Read(out[filled:])
		filled += n
		if err == io.EOF {
			// Stream ended early: success, truncated to the actual length.
			return out[:filled], nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: zlib error: Z_DATA_ERROR: %v", errs.ErrDataCorrupted, err)
		}
	}

	// Buffer is full. Probe one byte to distinguish an exact fit from a
	// stream longer than the caller asserted. The probe also forces the
	// reader to verify the trailing checksum on an exact fit.
	var probe [1]byte
	n, err := r.Read(probe[:])
	if n > 0 {
		return nil, fmt.Errorf("%w: zlib error: Z_BUF_ERROR", errs.ErrBufferTooSmall)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: zlib error: Z_DATA_ERROR: %v", errs.ErrDataCorrupted, err)
	}

	return out, nil
}
