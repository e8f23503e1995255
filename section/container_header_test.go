package section

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/secolib/seco/errs"
)

func TestNewContainerHeader(t *testing.T) {
	before := time.Now().UnixMicro()
	header := NewContainerHeader()
	after := time.Now().UnixMicro()

	require.NotNil(t, header)
	require.Equal(t, uint32(IndexOffsetOffset), header.IndexOffset)
	require.Equal(t, uint16(0), header.SectionCount)
	require.GreaterOrEqual(t, header.CreatedAt, before)
	require.LessOrEqual(t, header.CreatedAt, after)
	require.True(t, header.Flag.IsValidMagicNumber())
	require.True(t, header.Flag.IsLittleEndian())
	require.True(t, header.Flag.HasChecksum())
}

func TestContainerFlag_Bits(t *testing.T) {
	flag := NewContainerFlag()

	require.Equal(t, uint16(MagicContainerV1Opt), flag.GetMagicNumber())

	flag.WithoutChecksum()
	require.False(t, flag.HasChecksum())
	flag.WithChecksum()
	require.True(t, flag.HasChecksum())

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())

	require.NoError(t, flag.Validate())

	// A frame magic number is not a container magic number.
	require.ErrorIs(t, ContainerFlag{Options: MagicFrameV1Opt}.Validate(), errs.ErrInvalidMagicNumber)
}

func TestContainerHeader_Parse(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		original := NewContainerHeader()
		original.SectionCount = 5
		original.NamesOffset = 112
		original.DataOffset = 160

		data := original.Bytes()

		parsed := &ContainerHeader{}
		err := parsed.Parse(data)

		require.NoError(t, err)
		require.Equal(t, original.SectionCount, parsed.SectionCount)
		require.Equal(t, original.IndexOffset, parsed.IndexOffset)
		require.Equal(t, original.NamesOffset, parsed.NamesOffset)
		require.Equal(t, original.DataOffset, parsed.DataOffset)
		require.Equal(t, original.CreatedAt, parsed.CreatedAt)
	})

	t.Run("Invalid size", func(t *testing.T) {
		header := &ContainerHeader{}
		err := header.Parse(make([]byte, ContainerHeaderSize-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})

	t.Run("Invalid magic number", func(t *testing.T) {
		data := make([]byte, ContainerHeaderSize)

		header := &ContainerHeader{}
		err := header.Parse(data)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})
}

func TestContainerHeader_BigEndianRoundTrip(t *testing.T) {
	original := NewContainerHeader()
	original.Flag.WithBigEndian()
	original.SectionCount = 0x0102
	original.NamesOffset = 0x0A0B0C0D
	original.DataOffset = 0x10203040
	original.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).UnixMicro()

	data := original.Bytes()

	// The flag word stays little-endian; the rest is big-endian.
	require.Equal(t, byte(original.Flag.Options), data[0])
	require.Equal(t, []byte{0x01, 0x02}, data[2:4])

	parsed, err := ParseContainerHeader(data)
	require.NoError(t, err)
	require.True(t, parsed.Flag.IsBigEndian())
	require.Equal(t, original.SectionCount, parsed.SectionCount)
	require.Equal(t, original.NamesOffset, parsed.NamesOffset)
	require.Equal(t, original.DataOffset, parsed.DataOffset)
	require.Equal(t, original.CreatedAt, parsed.CreatedAt)
}

func TestContainerHeader_WireLayout(t *testing.T) {
	header := NewContainerHeader()
	header.SectionCount = 3
	header.NamesOffset = 0x50
	header.DataOffset = 0x64
	header.CreatedAt = 0x0102030405060708

	data := header.Bytes()
	require.Len(t, data, ContainerHeaderSize)

	// Flag: magic 0xED10 with the checksum bit set, stored little-endian.
	require.Equal(t, byte(0x11), data[0])
	require.Equal(t, byte(0xED), data[1])
	require.Equal(t, []byte{0x03, 0x00}, data[2:4])
	require.Equal(t, []byte{0x20, 0x00, 0x00, 0x00}, data[4:8])
	require.Equal(t, []byte{0x50, 0x00, 0x00, 0x00}, data[8:12])
	require.Equal(t, []byte{0x64, 0x00, 0x00, 0x00}, data[12:16])
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, data[16:24])
	// Reserved tail stays zero.
	require.Equal(t, make([]byte, 8), data[24:32])
}

func TestContainerHeader_CreatedAtAsTime(t *testing.T) {
	created := time.Date(2025, 3, 15, 8, 30, 0, 0, time.UTC)

	header := NewContainerHeader()
	header.CreatedAt = created.UnixMicro()

	require.True(t, header.CreatedAtAsTime().Equal(created))
}

func TestContainerHeader_NegativeCreatedAt(t *testing.T) {
	// Pre-epoch timestamps survive the signed/unsigned round trip.
	original := NewContainerHeader()
	original.CreatedAt = time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC).UnixMicro()
	require.Negative(t, original.CreatedAt)

	parsed, err := ParseContainerHeader(original.Bytes())
	require.NoError(t, err)
	require.Equal(t, original.CreatedAt, parsed.CreatedAt)
}
