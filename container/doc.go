// Package container seals payloads into self-describing compressed frames
// and bundles named frames into a single indexed container.
//
// # Overview
//
// The package has two levels. The frame level pairs one payload with one
// header so a single blob can travel with everything needed to reverse it:
//
//	frame, err := container.Seal(payload)
//	if err != nil {
//		return err
//	}
//	restored, err := container.Open(frame)
//
// The container level bundles many named frames behind an index so readers
// can pull out individual sections without touching the rest:
//
//	w, err := container.NewWriter(
//		container.WithCodec(format.KindZlib),
//		container.WithLevel(compress.ZlibBestSize),
//	)
//	if err != nil {
//		return err
//	}
//	if err := w.AddSection(".text", code); err != nil {
//		return err
//	}
//	if err := w.AddSection(".debug_info", debugInfo); err != nil {
//		return err
//	}
//	data, err := w.Finish()
//
//	r, err := container.OpenReader(data)
//	if err != nil {
//		return err
//	}
//	code, err := r.Section(".text")
//
// # Configuration
//
// Producers take functional options:
//
//   - WithCodec: compression kind for payloads (default Zstandard)
//   - WithLevel: backend-specific level (default the codec's own default)
//   - WithChecksum: xxHash64 payload checksums (default on)
//   - WithLittleEndian / WithBigEndian: byte order of stored fields
//   - WithRegistry: codec resolution through an explicit registry
//
// Consumers (Open, InspectFrame, OpenReader) read the layout from the
// headers and honor only WithRegistry. There is no way to "configure" a
// parse; the bytes describe themselves.
//
// # Sections
//
// Section names are UTF-8 strings of 1 to 255 bytes without NUL bytes,
// unique within a container. The index stores the xxHash64 of each name for
// cheap comparison and the names table keeps the originals, so lookups match
// exact strings even if two names ever hash alike. Section order is
// preserved: Reader.Sections returns names in the order they were added.
//
// # Error handling
//
// Failures map to sentinel errors in the errs package, matched with
// errors.Is:
//
//   - errs.ErrCodecUnavailable: configured kind has no backend in this build
//   - errs.ErrInvalidLevel: level outside the codec's bounds
//   - errs.ErrInvalidMagicNumber: bytes are not a frame or container
//   - errs.ErrInvalidHeader: structurally broken header, index or sizes
//   - errs.ErrDataCorrupted: backend rejected the compressed payload
//   - errs.ErrChecksumMismatch: payload decompressed but fails its checksum
//   - errs.ErrInvalidSectionName, errs.ErrSectionExists,
//     errs.ErrSectionNotFound, errs.ErrNoSections, errs.ErrTooManySections,
//     errs.ErrContainerTooLarge, errs.ErrWriterFinished: writer and reader
//     bookkeeping
//
// # Concurrency
//
// Seal, Open and InspectFrame are stateless and safe to call from any
// goroutine. A Reader is immutable after OpenReader and safe for concurrent
// use. A Writer is not; confine it to one goroutine.
//
// The binary layout of frames and containers is specified in the section
// package.
package container
