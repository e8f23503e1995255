package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secolib/seco/format"
)

// stubCodec lets descriptor tests control the support status directly,
// without depending on build tags.
type stubCodec struct {
	kind      format.CompressionKind
	supported bool
}

func (s stubCodec) Kind() format.CompressionKind { return s.kind }
func (s stubCodec) Supported() bool              { return s.supported }

func (s stubCodec) Compress(data []byte, _ int) []byte {
	return data
}

func (s stubCodec) Decompress(data []byte, _ int) ([]byte, error) {
	return data, nil
}

func TestRegistry_ResolveIsTotal(t *testing.T) {
	r := NewRegistry()

	// Every single byte value resolves. No tag may fail the lookup.
	for id := 0; id <= 255; id++ {
		desc := r.Resolve(uint8(id))
		require.NotNil(t, desc, "id %d must resolve to a descriptor", id)

		switch uint8(id) {
		case 0:
			require.Equal(t, format.KindNone, desc.Kind())
		case 1:
			require.Equal(t, format.KindZlib, desc.Kind())
		case 2:
			require.Equal(t, format.KindZStd, desc.Kind())
		default:
			require.Equal(t, format.KindUnknown, desc.Kind(), "id %d must collapse to unknown", id)
			require.False(t, desc.Supported())
		}
	}
}

func TestRegistry_DescriptorMetadata(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name          string
		id            uint8
		wantName      string
		wantLevels    LevelBounds
		wantSupported bool
	}{
		{
			name:          "none",
			id:            0,
			wantName:      "none",
			wantLevels:    LevelBounds{},
			wantSupported: true,
		},
		{
			name:          "zlib",
			id:            1,
			wantName:      "zlib",
			wantLevels:    LevelBounds{Fastest: ZlibBestSpeed, Default: ZlibDefault, Smallest: ZlibBestSize},
			wantSupported: true,
		},
		{
			name:          "zstd",
			id:            2,
			wantName:      "zstd",
			wantLevels:    LevelBounds{Fastest: ZStdBestSpeed, Default: ZStdDefault, Smallest: ZStdBestSize},
			wantSupported: true,
		},
		{
			name:          "unknown",
			id:            255,
			wantName:      "unknown",
			wantLevels:    LevelBounds{Fastest: UnknownLevel, Default: UnknownLevel, Smallest: UnknownLevel},
			wantSupported: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := r.Resolve(tt.id)
			require.Equal(t, tt.wantName, desc.Name())
			require.Equal(t, tt.wantLevels, desc.Levels())
			require.Equal(t, tt.wantSupported, desc.Supported())

			// Supported descriptors expose a codec of the matching kind and
			// carry no reason; unsupported descriptors explain themselves.
			if tt.wantSupported {
				require.Empty(t, desc.Reason())
				require.Equal(t, desc.Kind(), desc.Codec().Kind())
			} else {
				require.NotEmpty(t, desc.Reason())
			}
		})
	}
}

func TestRegistry_DescriptorIdentity(t *testing.T) {
	r := NewRegistry()

	// Repeated lookups return the same descriptor pointer, whether resolved
	// by tag or by kind.
	require.Same(t, r.Resolve(1), r.Resolve(1))
	require.Same(t, r.Resolve(1), r.For(format.KindZlib))
	require.Same(t, r.Resolve(200), r.Resolve(37), "all unrecognized tags share one descriptor")

	// Independent registries hold independent descriptors.
	require.NotSame(t, r.Resolve(1), NewRegistry().Resolve(1))
}

func TestRegistry_ForUnlistedKind(t *testing.T) {
	r := NewRegistry()

	// A kind value outside the closed set behaves like an unrecognized tag.
	desc := r.For(format.CompressionKind(7))
	require.Equal(t, format.KindUnknown, desc.Kind())
	require.False(t, desc.Supported())
	require.Equal(t, "unrecognized compression kind", desc.Reason())
}

func TestDefault_SharedRegistry(t *testing.T) {
	require.Same(t, Default(), Default())
	require.Same(t, Default().Resolve(2), Resolve(2))
	require.Same(t, Default().For(format.KindZStd), For(format.KindZStd))
	require.NotSame(t, Default(), NewRegistry())
}

func TestDescriptor_SupportedCodecAccess(t *testing.T) {
	d := newDescriptor(format.KindZlib,
		LevelBounds{Fastest: ZlibBestSpeed, Default: ZlibDefault, Smallest: ZlibBestSize},
		stubCodec{kind: format.KindZlib, supported: true}, "unused reason")

	require.True(t, d.Supported())
	require.Empty(t, d.Reason(), "supported descriptors carry no reason")
	require.NotPanics(t, func() {
		require.Equal(t, format.KindZlib, d.Codec().Kind())
	})
}

func TestDescriptor_UnsupportedCodecAccess(t *testing.T) {
	d := newDescriptor(format.KindZStd,
		LevelBounds{Fastest: ZStdBestSpeed, Default: ZStdDefault, Smallest: ZStdBestSize},
		stubCodec{kind: format.KindZStd, supported: false}, "built without zstd support")

	// Metadata stays fully usable.
	require.False(t, d.Supported())
	require.Equal(t, "zstd", d.Name())
	require.Equal(t, "built without zstd support", d.Reason())

	// Reaching for the implementation is a programming error.
	require.PanicsWithValue(t, "zstd codec is unavailable: built without zstd support", func() {
		d.Codec()
	})
}

func TestRegistry_ConcurrentResolve(t *testing.T) {
	const numGoroutines = 8

	r := NewRegistry()
	want := r.Resolve(2)

	done := make(chan *Descriptor, numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func() {
			var last *Descriptor
			for id := 0; id <= 255; id++ {
				last = r.Resolve(uint8(id))
			}
			done <- last
		}()
	}

	for g := 0; g < numGoroutines; g++ {
		// id 255 resolves last; every goroutine must observe the shared
		// unknown descriptor, and the zstd descriptor must stay stable.
		require.Same(t, r.Resolve(255), <-done)
	}
	require.Same(t, want, r.Resolve(2))
}
