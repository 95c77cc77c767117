package meshkit

import (
	"os"

	"github.com/hupe1980/meshkit/archive"
	"github.com/hupe1980/meshkit/codec"
	"github.com/hupe1980/meshkit/config"
	"github.com/hupe1980/meshkit/metric"
	"github.com/hupe1980/meshkit/spatial"
)

type options struct {
	dimension   int
	parallelism int
	logger      *Logger
	metrics     metric.Collector
	compression archive.Compression
	strict      bool
	codec       codec.Codec
	registry    *archive.Registry
	err         error
}

// Option configures the meshkit operations.
type Option func(*options)

// WithConfig applies the dimension, parallelism, archive and log settings of
// cfg. Options given after it override those settings. An invalid
// configuration makes the operation fail with ErrInvalidArgument.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		if err := cfg.Validate(); err != nil {
			o.err = err
			return
		}
		logger, err := NewLoggerFromConfig(os.Stderr, cfg.Log)
		if err != nil {
			o.err = err
			return
		}
		o.dimension = cfg.Colocation.Dimension
		o.parallelism = cfg.Colocation.Parallelism
		o.compression = cfg.Archive.CompressionType()
		o.strict = cfg.Archive.Strict
		o.codec = cfg.Archive.CodecValue()
		o.logger = logger
	}
}

// WithDimension sets the number of point coordinates compared (2 or 3).
func WithDimension(d int) Option {
	return func(o *options) {
		o.dimension = d
	}
}

// WithParallelism caps the goroutines used by colocation.
// Zero uses GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(c metric.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// WithCompression sets the compression of saved archives.
func WithCompression(c archive.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithStrict fails on attributes whose value type is not registered instead
// of skipping them when saving or loading.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithCodec sets the default codec of registries built by NewRegistry.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default()
		}
		o.codec = c
	}
}

// WithRegistry sets the value type registry used by archives.
func WithRegistry(r *archive.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

func newOptions(optFns []Option) (options, error) {
	o := options{
		dimension: spatial.DefaultDimension,
		codec:     codec.Default(),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	o.metrics = metric.OrNoop(o.metrics)
	if o.registry == nil {
		o.registry = archive.NewRegistry(archive.WithDefaultCodec(o.codec))
	}
	return o, o.err
}

func (o options) spatialOptions() []spatial.Option {
	return []spatial.Option{
		spatial.WithDimension(o.dimension),
		spatial.WithParallelism(o.parallelism),
		spatial.WithLogger(o.logger.std()),
		spatial.WithMetrics(o.metrics),
	}
}

func (o options) archiveOptions() []archive.Option {
	return []archive.Option{
		archive.WithCompression(o.compression),
		archive.WithStrict(o.strict),
		archive.WithLogger(o.logger.std()),
		archive.WithMetrics(o.metrics),
	}
}
