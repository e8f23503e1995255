package container

import (
	"fmt"
	"math"

	"github.com/secolib/seco/compress"
	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/format"
	"github.com/secolib/seco/internal/hash"
	"github.com/secolib/seco/internal/options"
	"github.com/secolib/seco/section"
)

// Seal compresses data and wraps it in a single self-describing frame. The
// frame records the compression kind, both sizes and an optional xxHash64
// checksum of the uncompressed bytes, so Open needs no out-of-band
// configuration to reverse it.
func Seal(data []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	desc, level, err := cfg.resolveCodec()
	if err != nil {
		return nil, err
	}

	return sealFrame(cfg, desc, level, data)
}

// sealFrame compresses data with the resolved codec and assembles header plus
// payload into one exact-size buffer.
func sealFrame(cfg *config, desc *compress.Descriptor, level int, data []byte) ([]byte, error) {
	compressed := desc.Codec().Compress(data, level)
	if uint64(len(compressed)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: compressed payload is %d bytes, limit %d",
			errs.ErrContainerTooLarge, len(compressed), uint64(section.MaxPayloadSize))
	}

	header := section.NewFrameHeader(desc.Kind())
	header.CompressedSize = uint32(len(compressed))
	header.UncompressedSize = uint64(len(data))
	if cfg.checksum {
		header.Checksum = hash.Checksum(data)
	} else {
		header.Flag.WithoutChecksum()
	}
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}

	frame := make([]byte, 0, section.FrameHeaderSize+len(compressed))
	frame = append(frame, header.Bytes()...)
	frame = append(frame, compressed...)

	return frame, nil
}

// Open reverses Seal: it parses the frame header, decompresses the payload
// and verifies the checksum when the frame carries one. The layout is read
// entirely from the header; of the options only WithRegistry has any effect.
//
// The returned payload may share memory with frame when the section was
// stored uncompressed.
func Open(frame []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return openFrame(cfg.registry, frame)
}

func openFrame(registry *compress.Registry, frame []byte) ([]byte, error) {
	header, err := section.ParseFrameHeader(frame)
	if err != nil {
		return nil, err
	}

	payload := frame[section.FrameHeaderSize:]
	if uint64(len(payload)) != uint64(header.CompressedSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d",
			errs.ErrInvalidHeader, len(payload), header.CompressedSize)
	}

	desc := registry.Resolve(header.Kind)
	if !desc.Supported() {
		return nil, fmt.Errorf("%w: %s: %s", errs.ErrCodecUnavailable, desc.Name(), desc.Reason())
	}

	if header.UncompressedSize > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: uncompressed size %d exceeds addressable memory",
			errs.ErrInvalidHeader, header.UncompressedSize)
	}

	data, err := desc.Codec().Decompress(payload, int(header.UncompressedSize))
	if err != nil {
		return nil, err
	}

	// Decompress truncates silently when the stream ends early; the header's
	// size is authoritative for a sealed frame.
	if uint64(len(data)) != header.UncompressedSize {
		return nil, fmt.Errorf("%w: decompressed to %d bytes, header says %d",
			errs.ErrDataCorrupted, len(data), header.UncompressedSize)
	}

	if header.Flag.HasChecksum() {
		if sum := hash.Checksum(data); sum != header.Checksum {
			return nil, fmt.Errorf("%w: computed %#016x, header says %#016x",
				errs.ErrChecksumMismatch, sum, header.Checksum)
		}
	}

	return data, nil
}

// FrameInfo summarizes a frame header without touching the payload.
type FrameInfo struct {
	Kind             format.CompressionKind
	KindName         string
	Supported        bool
	CompressedSize   uint32
	UncompressedSize uint64
	HasChecksum      bool
	BigEndian        bool
}

// InspectFrame parses just the header of a sealed frame. It never
// decompresses, so it works for compression kinds this build cannot decode;
// Supported reports whether Open would succeed.
func InspectFrame(frame []byte, opts ...Option) (FrameInfo, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return FrameInfo{}, err
	}

	return inspectFrame(cfg.registry, frame)
}

func inspectFrame(registry *compress.Registry, frame []byte) (FrameInfo, error) {
	header, err := section.ParseFrameHeader(frame)
	if err != nil {
		return FrameInfo{}, err
	}

	desc := registry.Resolve(header.Kind)

	return FrameInfo{
		Kind:             desc.Kind(),
		KindName:         desc.Name(),
		Supported:        desc.Supported(),
		CompressedSize:   header.CompressedSize,
		UncompressedSize: header.UncompressedSize,
		HasChecksum:      header.Flag.HasChecksum(),
		BigEndian:        header.Flag.IsBigEndian(),
	}, nil
}
