package compress

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/format"
)

// rampPayload creates size bytes cycling through all byte values.
func rampPayload(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 256)
	}

	return data
}

// textPayload creates size bytes of repeated log-like text, a highly
// compressible corpus.
func textPayload(size int) []byte {
	pattern := []byte("section .debug_info offset 0x1234 size 0x5678 compressed with level 6\n")
	data := make([]byte, size)
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	return data
}

func TestCodec_InterfaceConformance(t *testing.T) {
	require.Implements(t, (*Codec)(nil), NewNoneCodec())
	require.Implements(t, (*Codec)(nil), NewZlibCodec())
	require.Implements(t, (*Codec)(nil), NewZStdCodec())
	require.Implements(t, (*Codec)(nil), NewUnknownCodec())
}

func TestCodec_KindBinding(t *testing.T) {
	require.Equal(t, format.KindNone, NewNoneCodec().Kind())
	require.Equal(t, format.KindZlib, NewZlibCodec().Kind())
	require.Equal(t, format.KindZStd, NewZStdCodec().Kind())
	require.Equal(t, format.KindUnknown, NewUnknownCodec().Kind())
}

func TestNoneCodec_Identity(t *testing.T) {
	codec := NewNoneCodec()
	payload := []byte("hello, world!")

	// Compress must hand back the same bytes without copying.
	compressed := codec.Compress(payload, 0)
	require.Equal(t, payload, compressed)
	require.True(t, &payload[0] == &compressed[0], "Compress must not copy the input")

	// The level argument is ignored entirely.
	require.Equal(t, payload, codec.Compress(payload, 9999))

	// Decompress with an exact size assertion returns the same bytes.
	got, err := codec.Decompress(compressed, len(payload))
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.True(t, &compressed[0] == &got[0], "Decompress must not copy the input")

	// An oversized assertion is fine, the data simply fits.
	got, err = codec.Decompress(compressed, len(payload)+100)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestNoneCodec_DecompressBufferTooSmall(t *testing.T) {
	codec := NewNoneCodec()
	payload := []byte("hello, world!")

	// 13 stored bytes cannot fit a 12-byte assertion.
	_, err := codec.Decompress(payload, len(payload)-1)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestNoneCodec_EmptyInput(t *testing.T) {
	codec := NewNoneCodec()

	compressed := codec.Compress([]byte{}, 0)
	require.Empty(t, compressed)

	got, err := codec.Decompress(compressed, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestZlibCodec_RoundTrip(t *testing.T) {
	codec := NewZlibCodec()

	payloads := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "short_text", data: []byte("hello, world!")},
		{name: "ramp_1k", data: rampPayload(1024)},
		{name: "text_16k", data: textPayload(16 * 1024)},
	}

	for _, level := range []int{ZlibBestSpeed, ZlibDefault, ZlibBestSize} {
		for _, tc := range payloads {
			t.Run(fmt.Sprintf("level_%d/%s", level, tc.name), func(t *testing.T) {
				compressed := codec.Compress(tc.data, level)
				require.NotEmpty(t, compressed, "even empty input produces a stream header")

				got, err := codec.Decompress(compressed, len(tc.data))
				require.NoError(t, err)
				require.Equal(t, tc.data, got)
			})
		}
	}
}

func TestZlibCodec_CompressShrinksRepetitiveData(t *testing.T) {
	codec := NewZlibCodec()
	payload := textPayload(16 * 1024)

	compressed := codec.Compress(payload, ZlibDefault)
	require.Less(t, len(compressed), len(payload))
}

func TestZlibCodec_CompressInvalidLevel(t *testing.T) {
	codec := NewZlibCodec()

	// Levels outside the backend's range are programming errors.
	require.Panics(t, func() {
		codec.Compress([]byte("data"), 99)
	})
	require.Panics(t, func() {
		codec.Compress([]byte("data"), -42)
	})
}

func TestZlibCodec_DecompressBufferTooSmall(t *testing.T) {
	codec := NewZlibCodec()
	payload := []byte("hello, world!")

	compressed := codec.Compress(payload, ZlibDefault)

	// Asserting one byte less than the original length must fail without
	// silently truncating.
	_, err := codec.Decompress(compressed, len(payload)-1)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
	require.Contains(t, err.Error(), "zlib error: Z_BUF_ERROR")
}

func TestZlibCodec_DecompressOversizedBuffer(t *testing.T) {
	codec := NewZlibCodec()
	payload := []byte("hello, world!")

	compressed := codec.Compress(payload, ZlibDefault)

	// A generous size assertion succeeds and the result is truncated to the
	// actual decompressed length.
	got, err := codec.Decompress(compressed, 512)
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.Len(t, got, len(payload))
}

func TestZlibCodec_DecompressCorrupted(t *testing.T) {
	codec := NewZlibCodec()

	tests := []struct {
		name string
		data []byte
		size int
	}{
		{name: "empty_input", data: []byte{}, size: 0},
		{name: "garbage_header", data: []byte("this is not a zlib stream"), size: 64},
		{name: "truncated_stream", data: codec.Compress(textPayload(4096), ZlibDefault)[:10], size: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decompress(tt.data, tt.size)
			require.ErrorIs(t, err, errs.ErrDataCorrupted)
			require.Contains(t, err.Error(), "zlib error: Z_DATA_ERROR")
		})
	}
}

func TestZlibCodec_DecompressChecksumMismatch(t *testing.T) {
	codec := NewZlibCodec()
	payload := []byte("hello, world!")

	compressed := codec.Compress(payload, ZlibDefault)

	// The stream ends with the Adler-32 of the uncompressed bytes. Flipping
	// it leaves the deflate body intact but must still fail.
	corrupted := append([]byte{}, compressed...)
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err := codec.Decompress(corrupted, len(payload))
	require.ErrorIs(t, err, errs.ErrDataCorrupted)
}

func TestZStdCodec_RoundTrip(t *testing.T) {
	codec := NewZStdCodec()

	payloads := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "short_text", data: []byte("hello, world!")},
		{name: "ramp_1k", data: rampPayload(1024)},
		{name: "text_16k", data: textPayload(16 * 1024)},
		{name: "ramp_256k", data: rampPayload(256 * 1024)},
	}

	for _, level := range []int{ZStdBestSpeed, ZStdDefault, ZStdBestSize} {
		for _, tc := range payloads {
			t.Run(fmt.Sprintf("level_%d/%s", level, tc.name), func(t *testing.T) {
				compressed := codec.Compress(tc.data, level)

				got, err := codec.Decompress(compressed, len(tc.data))
				require.NoError(t, err)
				if len(tc.data) == 0 {
					require.Empty(t, got)
				} else {
					require.Equal(t, tc.data, got)
				}
			})
		}
	}
}

func TestZStdCodec_CompressShrinksRepetitiveData(t *testing.T) {
	codec := NewZStdCodec()
	payload := textPayload(16 * 1024)

	compressed := codec.Compress(payload, ZStdDefault)
	require.Less(t, len(compressed), len(payload))
}

func TestZStdCodec_DecompressBufferTooSmall(t *testing.T) {
	codec := NewZStdCodec()
	payload := []byte("hello, world!")

	compressed := codec.Compress(payload, ZStdDefault)

	_, err := codec.Decompress(compressed, len(payload)-1)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
	require.Contains(t, err.Error(), "Destination buffer is too small")
}

func TestZStdCodec_DecompressOversizedBuffer(t *testing.T) {
	codec := NewZStdCodec()
	payload := []byte("hello, world!")

	compressed := codec.Compress(payload, ZStdDefault)

	got, err := codec.Decompress(compressed, 512)
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.Len(t, got, len(payload))
}

func TestZStdCodec_DecompressCorrupted(t *testing.T) {
	codec := NewZStdCodec()

	tests := []struct {
		name string
		data []byte
		size int
	}{
		{name: "garbage_frame", data: []byte("this is not a zstd frame"), size: 64},
		{name: "truncated_frame", data: codec.Compress(textPayload(4096), ZStdDefault)[:6], size: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decompress(tt.data, tt.size)
			require.ErrorIs(t, err, errs.ErrDataCorrupted)
		})
	}
}

func TestZStdCodec_LevelOutOfRangeClamps(t *testing.T) {
	codec := NewZStdCodec()
	payload := textPayload(4096)

	// Zstd clamps out-of-range levels instead of failing, so extreme values
	// still produce decodable frames.
	for _, level := range []int{-5, 0, 22, 999} {
		compressed := codec.Compress(payload, level)

		got, err := codec.Decompress(compressed, len(payload))
		require.NoError(t, err, "level %d", level)
		require.Equal(t, payload, got, "level %d", level)
	}
}

func TestUnknownCodec_Panics(t *testing.T) {
	codec := NewUnknownCodec()

	require.False(t, codec.Supported())
	require.PanicsWithValue(t, "unknown codec is unavailable", func() {
		codec.Compress([]byte("data"), 0)
	})
	require.PanicsWithValue(t, "unknown codec is unavailable", func() {
		_, _ = codec.Decompress([]byte("data"), 4)
	})
}

func TestCodec_ConcurrentRoundTrips(t *testing.T) {
	const numGoroutines = 8
	const iterations = 50

	codecs := []Codec{NewNoneCodec(), NewZlibCodec(), NewZStdCodec()}
	levels := []int{0, ZlibDefault, ZStdDefault}

	errCh := make(chan error, numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func(id int) {
			payload := rampPayload(2048 + id)
			for i := 0; i < iterations; i++ {
				codec := codecs[i%len(codecs)]
				compressed := codec.Compress(payload, levels[i%len(levels)])

				got, err := codec.Decompress(compressed, len(payload))
				if err != nil {
					errCh <- fmt.Errorf("goroutine %d iteration %d: %w", id, i, err)
					return
				}
				if len(got) != len(payload) {
					errCh <- fmt.Errorf("goroutine %d iteration %d: got %d bytes, want %d",
						id, i, len(got), len(payload))
					return
				}
			}
			errCh <- nil
		}(g)
	}

	for g := 0; g < numGoroutines; g++ {
		require.NoError(t, <-errCh)
	}
}

func TestCompressBound_CoversWorstCase(t *testing.T) {
	// Incompressible input must still fit the preallocated bound, otherwise
	// Compress would reallocate mid-stream.
	zlibCodec := NewZlibCodec()
	zstdCodec := NewZStdCodec()

	for _, size := range []int{0, 1, 13, 1024, 128 * 1024} {
		payload := rampPayload(size)

		require.LessOrEqual(t, len(zlibCodec.Compress(payload, ZlibBestSpeed)), zlibCompressBound(size),
			"zlib bound too tight for %d bytes", size)
		require.LessOrEqual(t, len(zstdCodec.Compress(payload, ZStdBestSpeed)), zstdCompressBound(size),
			"zstd bound too tight for %d bytes", size)
	}
}
