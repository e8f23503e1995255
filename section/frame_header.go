package section

import (
	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/format"
)

// FrameHeader represents the fixed-size header ahead of one compressed
// payload.
//
// The header makes a payload self-describing: readers learn the compression
// kind, both byte lengths and an optional integrity checksum before touching
// a single payload byte.
type FrameHeader struct {
	// Kind is the compression kind tag of the payload, stored verbatim.
	// Readers resolve it through the codec registry, which maps unrecognized
	// values to the Unknown descriptor instead of failing.
	Kind uint8 // byte offset 2
	// CompressedSize is the byte length of the payload following the header.
	CompressedSize uint32 // byte offset 4-7
	// UncompressedSize is the original payload length. Readers use it to size
	// the decompression buffer.
	UncompressedSize uint64 // byte offset 8-15
	// Checksum is the xxHash64 of the uncompressed payload. Zero when the
	// checksum flag is clear.
	Checksum uint64 // byte offset 16-23

	// Flag is a packed field for options and the magic number.
	Flag FrameFlag // byte offset 0-1, offset 3 reserved
}

// NewFrameHeader creates a new FrameHeader for a payload compressed with the
// given kind. Sizes and checksum are set when the frame is assembled.
func NewFrameHeader(kind format.CompressionKind) *FrameHeader {
	return &FrameHeader{
		Flag: NewFrameFlag(),
		Kind: uint8(kind),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidHeader if data is not 24 bytes, or flag validation errors
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != FrameHeaderSize {
		return errs.ErrInvalidHeader
	}

	// Parse the flag word first to determine endianness (always little-endian
	// for the Options field itself).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Kind = data[2]

	engine := h.Flag.GetEndianEngine()

	h.CompressedSize = engine.Uint32(data[4:8])
	h.UncompressedSize = engine.Uint64(data[8:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Flag.Validate()
}

// Bytes serializes the FrameHeader into a byte slice.
func (h *FrameHeader) Bytes() []byte {
	b := make([]byte, FrameHeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Kind
	// b[3] is reserved and stays zero
	engine.PutUint32(b[4:8], h.CompressedSize)
	engine.PutUint64(b[8:16], h.UncompressedSize)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// CompressionKind returns the kind tag coerced into the closed kind set.
func (h *FrameHeader) CompressionKind() format.CompressionKind {
	return format.KindFromByte(h.Kind)
}

// ParseFrameHeader parses a FrameHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 24 bytes)
//
// Returns:
//   - FrameHeader: Parsed header struct
//   - error: ErrInvalidHeader or flag validation errors
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < FrameHeaderSize {
		return FrameHeader{}, errs.ErrInvalidHeader
	}

	h := FrameHeader{}
	if err := h.Parse(data[:FrameHeaderSize]); err != nil {
		return FrameHeader{}, err
	}

	return h, nil
}
