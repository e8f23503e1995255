package section

import (
	"time"
	"unsafe"

	"github.com/secolib/seco/errs"
)

// ContainerHeader represents the fixed-size header at the start of a section
// container.
type ContainerHeader struct {
	// CreatedAt is the container creation time, the unix timestamp in
	// microseconds.
	CreatedAt int64 // byte offset 16-23
	// SectionCount is the number of sections stored in the container, max to
	// 65535.
	SectionCount uint16 // byte offset 2-3
	// IndexOffset is the byte offset to the start of the section index.
	IndexOffset uint32 // byte offset 4-7
	// NamesOffset is the byte offset to the start of the names payload.
	// It records the offset after the index entries.
	NamesOffset uint32 // byte offset 8-11
	// DataOffset is the byte offset to the start of the first frame.
	// It records the offset after the names payload; index entry offsets are
	// relative to it.
	DataOffset uint32 // byte offset 12-15

	// Flag is a packed field for options and the magic number.
	Flag ContainerFlag // byte offset 0-1, offsets 24-31 reserved
}

// NewContainerHeader creates a new ContainerHeader stamped with the current
// time. The section count and payload offsets are set when the writer
// finishes.
func NewContainerHeader() *ContainerHeader {
	return &ContainerHeader{
		Flag:        NewContainerFlag(),
		CreatedAt:   time.Now().UnixMicro(),
		IndexOffset: IndexOffsetOffset,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeader if data is not 32 bytes, or flag validation errors
func (h *ContainerHeader) Parse(data []byte) error {
	if len(data) != ContainerHeaderSize {
		return errs.ErrInvalidHeader
	}

	// Parse the flag word first to determine endianness (always little-endian
	// for the Options field itself).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)

	engine := h.Flag.GetEndianEngine()

	h.SectionCount = engine.Uint16(data[2:4])
	h.IndexOffset = engine.Uint32(data[4:8])
	h.NamesOffset = engine.Uint32(data[8:12])
	h.DataOffset = engine.Uint32(data[12:16])

	// Use unsafe pointer conversion to interpret bytes as signed int64
	createdAtUint := engine.Uint64(data[16:24])
	h.CreatedAt = *(*int64)(unsafe.Pointer(&createdAtUint))

	// Bytes 24-31 are reserved and ignored on read.

	return h.Flag.Validate()
}

// Bytes serializes the ContainerHeader into a byte slice.
func (h *ContainerHeader) Bytes() []byte {
	b := make([]byte, ContainerHeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	engine.PutUint16(b[2:4], h.SectionCount)
	engine.PutUint32(b[4:8], h.IndexOffset)
	engine.PutUint32(b[8:12], h.NamesOffset)
	engine.PutUint32(b[12:16], h.DataOffset)
	// Use bitwise conversion to avoid overflow warning - timestamps are stored as-is in binary
	engine.PutUint64(b[16:24], *(*uint64)(unsafe.Pointer(&h.CreatedAt)))
	// Bytes 24-31 are reserved and stay zero.

	return b
}

// CreatedAtAsTime returns the creation time as a time.Time object.
//
// Returns:
//   - time.Time: Creation time converted from microseconds since Unix epoch
func (h *ContainerHeader) CreatedAtAsTime() time.Time {
	return time.UnixMicro(h.CreatedAt)
}

// ParseContainerHeader parses a ContainerHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - ContainerHeader: Parsed header struct
//   - error: ErrInvalidHeader or flag validation errors
func ParseContainerHeader(data []byte) (ContainerHeader, error) {
	if len(data) < ContainerHeaderSize {
		return ContainerHeader{}, errs.ErrInvalidHeader
	}

	h := ContainerHeader{}
	if err := h.Parse(data[:ContainerHeaderSize]); err != nil {
		return ContainerHeader{}, err
	}

	return h, nil
}
