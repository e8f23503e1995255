package container

import (
	"errors"
	"fmt"

	"github.com/secolib/seco/compress"
	"github.com/secolib/seco/errs"
	"github.com/secolib/seco/format"
	"github.com/secolib/seco/internal/options"
)

// Option configures Seal, Open, Writer and Reader. Layout options (codec,
// level, checksum, endianness) apply to the producing side only; Open and
// OpenReader read the layout from the headers and honor just WithRegistry.
type Option = options.Option[*config]

// config carries the resolved configuration shared by frame sealing and
// container writing.
type config struct {
	registry  *compress.Registry
	kind      format.CompressionKind
	level     int
	levelSet  bool
	checksum  bool
	bigEndian bool
}

func newConfig() *config {
	return &config{
		registry: compress.Default(),
		kind:     format.KindZStd,
		checksum: true,
	}
}

// resolveCodec maps the configured kind to its descriptor and picks the
// effective level. Unsupported kinds are a configuration error at this
// boundary, not a panic: the caller chose the kind, the build decides the
// support.
func (c *config) resolveCodec() (*compress.Descriptor, int, error) {
	desc := c.registry.For(c.kind)
	if !desc.Supported() {
		return nil, 0, fmt.Errorf("%w: %s: %s", errs.ErrCodecUnavailable, desc.Name(), desc.Reason())
	}

	bounds := desc.Levels()
	level := c.level
	if !c.levelSet {
		level = bounds.Default
	}
	if level < bounds.Fastest || level > bounds.Smallest {
		return nil, 0, fmt.Errorf("%w: level %d not in [%d, %d] for %s",
			errs.ErrInvalidLevel, level, bounds.Fastest, bounds.Smallest, desc.Name())
	}

	return desc, level, nil
}

// WithCodec selects the compression kind used for payloads. The default is
// Zstandard. Support is checked when the first payload is sealed.
func WithCodec(kind format.CompressionKind) Option {
	return options.NoError(func(c *config) {
		c.kind = kind
	})
}

// WithLevel sets the backend-specific compression level. The default is the
// codec's own default level; values outside the codec's [fastest, smallest]
// bounds fail with errs.ErrInvalidLevel when sealing.
func WithLevel(level int) Option {
	return options.NoError(func(c *config) {
		c.level = level
		c.levelSet = true
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum carried in
// each frame header. Checksums are enabled by default.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.checksum = enabled
	})
}

// WithLittleEndian stores multi-byte fields little-endian. This is the
// default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = false
	})
}

// WithBigEndian stores multi-byte fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = true
	})
}

// WithRegistry resolves compression kinds through an explicit registry
// instead of the process-wide default.
func WithRegistry(registry *compress.Registry) Option {
	return options.New(func(c *config) error {
		if registry == nil {
			return errors.New("registry must not be nil")
		}
		c.registry = registry

		return nil
	})
}
