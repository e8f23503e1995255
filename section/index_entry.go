package section

import (
	"bytes"

	"github.com/secolib/seco/endian"
	"github.com/secolib/seco/errs"
)

// IndexEntry records the location of a single section in the container index.
// It is a fixed size of 16 bytes.
//
// Name lookup goes through the 64-bit hash of the section name. The container
// also stores the original names in its names payload, so readers can resolve
// the rare hash collision by comparing strings.
type IndexEntry struct {
	// NameID is the xxHash64 hash of the section name string.
	//
	// Offset: 0, Size: 8 bytes
	NameID uint64

	// Offset is the byte offset of the section's frame, relative to the
	// container's DataOffset.
	//
	// Offset: 8, Size: 4 bytes
	Offset uint32

	// Size is the byte length of the section's frame, header included.
	//
	// Offset: 12, Size: 4 bytes
	Size uint32
}

// NewIndexEntry creates a new IndexEntry with the specified name ID.
//
// Offset and size are initialized to zero and are set by the writer when the
// frame positions are known.
func NewIndexEntry(nameID uint64) IndexEntry {
	return IndexEntry{
		NameID: nameID,
		Offset: 0,
		Size:   0,
	}
}

// Bytes returns the index entry as a byte slice using the specified endian
// engine.
//
// Parameters:
//   - engine: Endian engine for byte order
//
// Returns:
//   - []byte: 16-byte index entry with all fields encoded
func (e *IndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [IndexEntrySize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint64(b[0:8], e.NameID)
	engine.PutUint32(b[8:12], e.Offset)
	engine.PutUint32(b[12:16], e.Size)

	return b[:]
}

// WriteTo writes the index entry to a buffer using the specified endian
// engine.
//
// Parameters:
//   - buf: Buffer to write to (will grow if needed)
//   - engine: Endian engine for byte order
func (e *IndexEntry) WriteTo(buf *bytes.Buffer, engine endian.EndianEngine) {
	buf.Grow(IndexEntrySize)

	start := buf.Len()
	var b [IndexEntrySize]byte
	buf.Write(b[:])

	// Write directly to the allocated space
	data := buf.Bytes()[start : start+IndexEntrySize]
	engine.PutUint64(data[0:8], e.NameID)
	engine.PutUint32(data[8:12], e.Offset)
	engine.PutUint32(data[12:16], e.Size)
}

// WriteToSlice writes to a pre-allocated slice and returns the next position.
//
// This is the most efficient method when writing multiple entries
// sequentially.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 16 bytes at offset)
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + 16)
func (e *IndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.NameID)
	engine.PutUint32(data[offset+8:offset+12], e.Offset)
	engine.PutUint32(data[offset+12:offset+16], e.Size)

	return offset + IndexEntrySize
}

// ParseIndexEntry parses an IndexEntry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the index entry (must be at least 16 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - IndexEntry: Parsed index entry
//   - error: ErrInvalidHeader if data is too short
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidHeader
	}

	return IndexEntry{
		NameID: engine.Uint64(data[0:8]),
		Offset: engine.Uint32(data[8:12]),
		Size:   engine.Uint32(data[12:16]),
	}, nil
}
