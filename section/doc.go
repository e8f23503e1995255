// Package section defines the low-level binary structures and constants for
// the seco frame and container formats.
//
// This package provides the foundational types that define the physical
// layout of sealed payloads. It handles binary serialization and
// deserialization of headers, flags, and index entries, ensuring consistent
// byte-level representation across platforms.
//
// # Overview
//
// The section package defines three main categories of types:
//
//  1. Headers: Fixed-size metadata (FrameHeader, ContainerHeader)
//  2. Flags: Packed bitfields for options and magic numbers (FrameFlag, ContainerFlag)
//  3. Index Entries: Fixed-size section descriptors (IndexEntry)
//
// These types form the structural foundation of the binary format, providing:
//   - Fixed-size layouts for O(1) random access
//   - Platform-independent byte representation
//   - Bitfield packing for compact storage
//
// # Frame Structure
//
// A frame is one compressed payload made self-describing:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ FrameHeader (24 bytes, fixed)                           │
//	│  - Flag (2 bytes): magic, checksum, endianness          │
//	│  - Kind (1 byte): compression kind tag                  │
//	│  - reserved (1 byte)                                    │
//	│  - CompressedSize (4 bytes)                             │
//	│  - UncompressedSize (8 bytes)                           │
//	│  - Checksum (8 bytes): xxHash64 of uncompressed payload │
//	├─────────────────────────────────────────────────────────┤
//	│ Compressed Payload (CompressedSize bytes)               │
//	└─────────────────────────────────────────────────────────┘
//
// # Container Structure
//
// A container holds any number of named frames behind a hash index:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ ContainerHeader (32 bytes, fixed)                       │
//	│  - Flag (2 bytes): magic, checksum, endianness          │
//	│  - SectionCount (2 bytes)                               │
//	│  - IndexOffset, NamesOffset, DataOffset (12 bytes)      │
//	│  - CreatedAt (8 bytes): unix microseconds               │
//	│  - reserved (8 bytes)                                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Index (N × 16 bytes, fixed per entry)                   │
//	│  - NameID: xxHash64 of the section name                 │
//	│  - Offset: frame position relative to DataOffset        │
//	│  - Size: frame length in bytes                          │
//	├─────────────────────────────────────────────────────────┤
//	│ Names Payload (variable)                                │
//	│  - Section names in index order                         │
//	│  - Each name: uint8 length prefix + raw bytes           │
//	├─────────────────────────────────────────────────────────┤
//	│ Frames (one per section, back to back)                  │
//	└─────────────────────────────────────────────────────────┘
//
// # Flag Format
//
// Both header flags share one 16-bit layout:
//
//	Bit 0:     Checksum presence (0=absent, 1=present)
//	Bit 1:     Endianness (0=little-endian, 1=big-endian)
//	Bits 2-3:  Reserved (must be 0)
//	Bits 4-15: Magic number (0xEC1 frame, 0xED1 container)
//
// The flag word itself is always stored little-endian so a reader can
// interpret it before knowing the byte order; the endianness bit then governs
// every other multi-byte field.
//
// # Endianness
//
// All multi-byte fields honor the endianness bit through the endian package's
// engines, so containers written on either byte order are readable everywhere.
// Little-endian is the default and matches the dominant deployment platforms.
//
// # Usage
//
// This package is primarily used internally by the container package. Direct
// usage looks like:
//
//	header := section.NewFrameHeader(format.KindZStd)
//	header.CompressedSize = uint32(len(compressed))
//	header.UncompressedSize = uint64(len(original))
//	wire := header.Bytes()
//
//	parsed, err := section.ParseFrameHeader(wire)
//	if err != nil { ... }
package section
