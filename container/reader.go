package container

import (
	"fmt"
	"time"

	"github.com/secolib/seco/compress"
	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/internal/hash"
	"github.com/secolib/seco/internal/options"
	"github.com/secolib/seco/section"
)

// Reader provides random access to the sections of a container produced by
// Writer. OpenReader validates the whole structure eagerly (header, index,
// names table, section bounds), so accessors on a constructed Reader only
// fail for missing names or corrupted payloads.
//
// A Reader holds references into the container buffer instead of copying it;
// the caller must not modify the buffer while the Reader is in use. Readers
// are safe for concurrent use.
type Reader struct {
	header   section.ContainerHeader
	entries  []section.IndexEntry
	names    []string
	byName   map[string]int
	registry *compress.Registry
	data     []byte
}

// OpenReader parses and validates a container. Of the options only
// WithRegistry has any effect; everything else is read from the headers.
func OpenReader(data []byte, opts ...Option) (*Reader, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseContainerHeader(data)
	if err != nil {
		return nil, err
	}
	engine := header.Flag.GetEndianEngine()

	count := int(header.SectionCount)
	if count == 0 {
		return nil, fmt.Errorf("%w: container has no sections", errs.ErrInvalidHeader)
	}

	indexOffset := int(header.IndexOffset)
	namesOffset := int(header.NamesOffset)
	dataOffset := int(header.DataOffset)

	if indexOffset != section.ContainerHeaderSize {
		return nil, fmt.Errorf("%w: index offset %d, want %d",
			errs.ErrInvalidHeader, indexOffset, section.ContainerHeaderSize)
	}
	if wantNames := indexOffset + count*section.IndexEntrySize; namesOffset != wantNames {
		return nil, fmt.Errorf("%w: names offset %d, want %d",
			errs.ErrInvalidHeader, namesOffset, wantNames)
	}
	if dataOffset < namesOffset || dataOffset > len(data) {
		return nil, fmt.Errorf("%w: data offset %d out of range", errs.ErrInvalidHeader, dataOffset)
	}

	entries := make([]section.IndexEntry, 0, count)
	for i := 0; i < count; i++ {
		entry, err := section.ParseIndexEntry(data[indexOffset+i*section.IndexEntrySize:], engine)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	names, err := parseNames(data[namesOffset:dataOffset], count)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, count)
	dataSize := uint64(len(data) - dataOffset)
	for i := range entries {
		// The stored name is authoritative; the hash in the index entry is a
		// consistency check against mismatched tables.
		if hash.ID(names[i]) != entries[i].NameID {
			return nil, fmt.Errorf("%w: index entry %d does not match name %q",
				errs.ErrInvalidHeader, i, names[i])
		}
		if entries[i].Size < section.FrameHeaderSize {
			return nil, fmt.Errorf("%w: section %q frame is %d bytes, want at least %d",
				errs.ErrInvalidHeader, names[i], entries[i].Size, section.FrameHeaderSize)
		}
		if end := uint64(entries[i].Offset) + uint64(entries[i].Size); end > dataSize {
			return nil, fmt.Errorf("%w: section %q extends past container end",
				errs.ErrInvalidHeader, names[i])
		}
		if _, dup := byName[names[i]]; dup {
			return nil, fmt.Errorf("%w: duplicate section %q", errs.ErrInvalidHeader, names[i])
		}
		byName[names[i]] = i
	}

	return &Reader{
		header:   header,
		entries:  entries,
		names:    names,
		byName:   byName,
		registry: cfg.registry,
		data:     data,
	}, nil
}

// Count returns the number of sections in the container.
func (r *Reader) Count() int {
	return len(r.entries)
}

// CreatedAt returns the container creation timestamp with microsecond
// precision.
func (r *Reader) CreatedAt() time.Time {
	return r.header.CreatedAtAsTime()
}

// Sections returns the section names in index order. The slice is a copy;
// mutating it does not affect the Reader.
func (r *Reader) Sections() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)

	return names
}

// Has reports whether the container holds a section with the given name.
func (r *Reader) Has(name string) bool {
	_, ok := r.byName[name]

	return ok
}

// Section decompresses and returns the payload of the named section,
// verifying its checksum when the frame carries one. Unknown names fail with
// errs.ErrSectionNotFound.
//
// The returned payload may share memory with the container buffer when the
// section was stored uncompressed.
func (r *Reader) Section(name string) ([]byte, error) {
	i, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrSectionNotFound, name)
	}

	return openFrame(r.registry, r.frame(i))
}

// SectionInfo returns the frame metadata of the named section without
// decompressing it. Unknown names fail with errs.ErrSectionNotFound.
func (r *Reader) SectionInfo(name string) (FrameInfo, error) {
	i, ok := r.byName[name]
	if !ok {
		return FrameInfo{}, fmt.Errorf("%w: %q", errs.ErrSectionNotFound, name)
	}

	return inspectFrame(r.registry, r.frame(i))
}

// frame returns the raw frame bytes of the section at index i. Bounds were
// validated in OpenReader.
func (r *Reader) frame(i int) []byte {
	entry := r.entries[i]
	start := int(r.header.DataOffset) + int(entry.Offset)

	return r.data[start : start+int(entry.Size)]
}
