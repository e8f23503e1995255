package section

import (
	"github.com/secolib/seco/endian"
	"github.com/secolib/seco/errs"
)

// ContainerFlag represents the packed flag field at the start of a container
// header.
type ContainerFlag struct {
	// Options is a packed field for container options.
	// Bit 0 is the checksum flag, 0 means the contained frames carry no
	// checksums, 1 means every frame carries one.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the container format:
	//   - 0xED10 (0b1110_1101_0001_0000): section container format v1
	//
	// The Options word itself is always stored little-endian; the endianness
	// flag governs every other multi-byte field in the container header and
	// its index entries.
	Options uint16
}

// NewContainerFlag creates a new ContainerFlag with default settings:
// little-endian byte order with frame checksums enabled.
func NewContainerFlag() ContainerFlag {
	flag := ContainerFlag{Options: MagicContainerV1Opt}
	flag.WithChecksum()
	flag.WithLittleEndian()

	return flag
}

// HasChecksum returns whether the contained frames carry payload checksums.
func (f ContainerFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// WithChecksum marks the contained frames as carrying payload checksums.
func (f *ContainerFlag) WithChecksum() {
	f.Options |= ChecksumMask
}

// WithoutChecksum marks the contained frames as carrying no payload checksums.
func (f *ContainerFlag) WithoutChecksum() {
	f.Options &^= ChecksumMask
}

// IsLittleEndian returns whether the container fields are little-endian.
func (f ContainerFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the container fields are big-endian.
func (f ContainerFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *ContainerFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *ContainerFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f ContainerFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f ContainerFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicContainerV1Opt
}

// Validate checks if the flag contains valid values.
func (f ContainerFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f ContainerFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
