package section

import "math"

const (
	// Bit masks
	ChecksumMask    = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask  = 0x0002 // Mask for endianness bit (bit 1)
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicFrameV1Opt     = 0xEC10 // MagicFrameV1Opt is the version 1 magic number for the compressed frame format.
	MagicContainerV1Opt = 0xED10 // MagicContainerV1Opt is the version 1 magic number for the section container format.
)

// offsets and section sizes in the container file
const (
	FrameHeaderSize     = 24                  // fixed frame header size in bytes
	ContainerHeaderSize = 32                  // fixed container header size in bytes
	IndexEntrySize      = 16                  // fixed index entry size in bytes
	IndexOffsetOffset   = ContainerHeaderSize // byte offset where the index section starts

	MaxSectionNameLength = math.MaxUint8  // maximum section name length in bytes
	MaxSectionCount      = math.MaxUint16 // maximum number of sections in one container
	MaxPayloadSize       = math.MaxUint32 // maximum compressed payload size in bytes
)
