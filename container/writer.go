package container

import (
	"fmt"
	"math"

	"github.com/secolib/seco/compress"
	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/internal/hash"
	"github.com/secolib/seco/internal/options"
	"github.com/secolib/seco/internal/pool"
	"github.com/secolib/seco/section"
)

// Writer assembles a multi-section container. Sections are sealed into
// frames as they are added and accumulated in a pooled buffer; Finish lays
// out header, index, names table and frame data in one exact-size copy.
//
// A Writer is single-use: after Finish both AddSection and Finish fail with
// errs.ErrWriterFinished. Writers are not safe for concurrent use.
type Writer struct {
	cfg      *config
	desc     *compress.Descriptor
	level    int
	entries  []section.IndexEntry
	names    []string
	nameSet  map[string]struct{}
	frames   *pool.ByteBuffer
	finished bool
}

// NewWriter creates a container writer. The codec configuration is resolved
// up front, so an unsupported kind or an out-of-range level fails here
// rather than on the first AddSection.
func NewWriter(opts ...Option) (*Writer, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	desc, level, err := cfg.resolveCodec()
	if err != nil {
		return nil, err
	}

	return &Writer{
		cfg:     cfg,
		desc:    desc,
		level:   level,
		nameSet: make(map[string]struct{}),
		frames:  pool.GetFrameBuffer(),
	}, nil
}

// AddSection seals data into a frame and appends it under the given name.
// Names must be unique within a container, non-empty, at most 255 bytes and
// free of NUL bytes. Section order is preserved through Finish.
//
// data is compressed immediately; the caller may reuse the slice after
// AddSection returns.
func (w *Writer) AddSection(name string, data []byte) error {
	if w.finished {
		return errs.ErrWriterFinished
	}
	if err := validateSectionName(name); err != nil {
		return err
	}
	if _, exists := w.nameSet[name]; exists {
		return fmt.Errorf("%w: %q", errs.ErrSectionExists, name)
	}
	if len(w.entries) >= section.MaxSectionCount {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManySections, section.MaxSectionCount)
	}

	frame, err := sealFrame(w.cfg, w.desc, w.level, data)
	if err != nil {
		return err
	}

	offset := uint64(w.frames.Len())
	if offset+uint64(len(frame)) > section.MaxPayloadSize {
		return fmt.Errorf("%w: section data exceeds %d bytes",
			errs.ErrContainerTooLarge, uint64(section.MaxPayloadSize))
	}

	entry := section.NewIndexEntry(hash.ID(name))
	entry.Offset = uint32(offset)
	entry.Size = uint32(len(frame))

	w.frames.Grow(len(frame))
	w.frames.MustWrite(frame)
	w.entries = append(w.entries, entry)
	w.names = append(w.names, name)
	w.nameSet[name] = struct{}{}

	return nil
}

// Count returns the number of sections added so far.
func (w *Writer) Count() int {
	return len(w.entries)
}

// Finish lays out the container and returns its bytes. Finishing with no
// sections fails with errs.ErrNoSections and leaves the writer usable;
// success consumes the writer.
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}
	if len(w.entries) == 0 {
		return nil, errs.ErrNoSections
	}

	header := section.NewContainerHeader()
	if !w.cfg.checksum {
		header.Flag.WithoutChecksum()
	}
	if w.cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	engine := header.Flag.GetEndianEngine()

	namesPayload := encodeNames(w.names)
	indexSize := len(w.entries) * section.IndexEntrySize
	namesOffset := section.ContainerHeaderSize + indexSize
	dataOffset := namesOffset + len(namesPayload)

	total := uint64(dataOffset) + uint64(w.frames.Len())
	if total > math.MaxUint32 {
		return nil, fmt.Errorf("%w: container is %d bytes, limit %d",
			errs.ErrContainerTooLarge, total, uint64(math.MaxUint32))
	}

	header.SectionCount = uint16(len(w.entries))
	header.NamesOffset = uint32(namesOffset)
	header.DataOffset = uint32(dataOffset)

	out := make([]byte, int(total))
	offset := copy(out, header.Bytes())
	for i := range w.entries {
		offset = w.entries[i].WriteToSlice(out, offset, engine)
	}
	offset += copy(out[offset:], namesPayload)
	copy(out[offset:], w.frames.Bytes())

	pool.PutFrameBuffer(w.frames)
	w.frames = nil
	w.finished = true

	return out, nil
}
