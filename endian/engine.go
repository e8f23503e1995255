// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into a single EndianEngine interface, so header and index codecs can read,
// write and append multi-byte fields through one value. Frame and container
// flags record which byte order their headers were written with; readers pick
// the matching engine from that bit and never depend on host byte order.
//
// The engines returned by GetLittleEndianEngine and GetBigEndianEngine are the
// standard library's binary.LittleEndian and binary.BigEndian values:
// immutable, stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default byte
// order for seco frames and containers.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine is the big-endian engine. Flag packing
// uses it to record the byte order of an encoded header.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}
