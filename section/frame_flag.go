package section

import (
	"github.com/secolib/seco/endian"
	"github.com/secolib/seco/errs"
)

// FrameFlag represents the packed flag field at the start of a frame header.
type FrameFlag struct {
	// Options is a packed field for frame options.
	// Bit 0 is the checksum flag, 0 means no checksum, 1 means the header
	// carries an xxHash64 checksum of the uncompressed payload.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the frame format:
	//   - 0xEC10 (0b1110_1100_0001_0000): compressed frame format v1
	//
	// The Options word itself is always stored little-endian; the endianness
	// flag governs every other multi-byte field in the frame.
	Options uint16
}

// NewFrameFlag creates a new FrameFlag with default settings: little-endian
// byte order with the checksum enabled.
func NewFrameFlag() FrameFlag {
	flag := FrameFlag{Options: MagicFrameV1Opt}
	flag.WithChecksum()
	flag.WithLittleEndian()

	return flag
}

// HasChecksum returns whether the header carries a payload checksum.
func (f FrameFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// WithChecksum enables the payload checksum.
func (f *FrameFlag) WithChecksum() {
	f.Options |= ChecksumMask
}

// WithoutChecksum disables the payload checksum.
func (f *FrameFlag) WithoutChecksum() {
	f.Options &^= ChecksumMask
}

// IsLittleEndian returns whether the frame fields are little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the frame fields are big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *FrameFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f FrameFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFrameV1Opt
}

// Validate checks if the flag contains valid values.
func (f FrameFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f FrameFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
