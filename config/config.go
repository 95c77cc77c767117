// Package config loads meshkit settings from YAML.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/meshkit/archive"
	"github.com/hupe1980/meshkit/codec"
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/spatial"
)

// Config contains all meshkit settings.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Colocation contains point deduplication settings.
	Colocation ColocationConfig `yaml:"colocation"`

	// Archive contains persistence settings.
	Archive ArchiveConfig `yaml:"archive"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log"`
}

// ColocationConfig contains point deduplication settings.
type ColocationConfig struct {
	Epsilon     float64 `yaml:"epsilon"`
	Dimension   int     `yaml:"dimension"`
	Parallelism int     `yaml:"parallelism"`
}

// ArchiveConfig contains persistence settings.
type ArchiveConfig struct {
	Compression string `yaml:"compression"`
	Codec       string `yaml:"codec"`
	Strict      bool   `yaml:"strict"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Colocation: ColocationConfig{
			Epsilon:     spatial.GlobalEpsilon,
			Dimension:   spatial.DefaultDimension,
			Parallelism: 0, // GOMAXPROCS
		},
		Archive: ArchiveConfig{
			Compression: archive.CompressionNone.String(),
			Codec:       codec.Default().Name(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Mark(errors.Wrap(err, "parse config"), core.ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if !(c.Colocation.Epsilon >= spatial.GlobalEpsilon) {
		return core.InvalidArgumentf("colocation.epsilon must be >= %g, got %g", spatial.GlobalEpsilon, c.Colocation.Epsilon)
	}
	if c.Colocation.Dimension < 2 || c.Colocation.Dimension > 3 {
		return core.InvalidArgumentf("colocation.dimension must be 2 or 3, got %d", c.Colocation.Dimension)
	}
	if _, err := archive.ParseCompression(c.Archive.Compression); err != nil {
		return errors.Wrap(err, "archive.compression")
	}
	if _, ok := codec.ByName(c.Archive.Codec); !ok {
		return core.InvalidArgumentf("archive.codec: unknown codec %q", c.Archive.Codec)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return core.InvalidArgumentf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// CompressionType returns the parsed archive compression.
func (c ArchiveConfig) CompressionType() archive.Compression {
	comp, _ := archive.ParseCompression(c.Compression)
	return comp
}

// CodecValue returns the configured codec, or the default one if unknown.
func (c ArchiveConfig) CodecValue() codec.Codec {
	if cd, ok := codec.ByName(c.Codec); ok {
		return cd
	}
	return codec.Default()
}

// SlogLevel returns the configured log level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, errors.Mark(errors.Wrap(err, "log.level"), core.ErrInvalidArgument)
	}
	return level, nil
}
