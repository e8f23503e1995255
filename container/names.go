package container

import (
	"fmt"

	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/section"
)

// validateSectionName checks the constraints a section name must satisfy
// before it enters the index: non-empty, at most 255 bytes, no NUL bytes.
func validateSectionName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("%w: name is empty", errs.ErrInvalidSectionName)
	}
	if len(name) > section.MaxSectionNameLength {
		return fmt.Errorf("%w: name length %d exceeds %d bytes",
			errs.ErrInvalidSectionName, len(name), section.MaxSectionNameLength)
	}
	for i := 0; i < len(name); i++ {
		if name[i] == 0 {
			return fmt.Errorf("%w: name contains NUL byte", errs.ErrInvalidSectionName)
		}
	}

	return nil
}

// encodeNames builds the names table: one length-prefixed name per entry, in
// index order. The prefix is a single byte, so names are capped at 255 bytes.
func encodeNames(names []string) []byte {
	size := 0
	for _, name := range names {
		size += 1 + len(name)
	}

	payload := make([]byte, 0, size)
	for _, name := range names {
		payload = append(payload, uint8(len(name)))
		payload = append(payload, name...)
	}

	return payload
}

// parseNames decodes exactly count length-prefixed names from data. The
// payload must contain no trailing bytes.
func parseNames(data []byte, count int) ([]string, error) {
	names := make([]string, 0, count)
	pos := 0
	for i := 0; i < count; i++ {
		if pos >= len(data) {
			return nil, fmt.Errorf("%w: names table truncated at entry %d", errs.ErrInvalidHeader, i)
		}
		nameLen := int(data[pos])
		pos++
		if pos+nameLen > len(data) {
			return nil, fmt.Errorf("%w: names table truncated at entry %d", errs.ErrInvalidHeader, i)
		}
		names = append(names, string(data[pos:pos+nameLen]))
		pos += nameLen
	}
	if pos != len(data) {
		return nil, fmt.Errorf("%w: names table has %d trailing bytes", errs.ErrInvalidHeader, len(data)-pos)
	}

	return names, nil
}
