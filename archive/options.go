package archive

import (
	"log/slog"

	"github.com/hupe1980/meshkit/metric"
)

type options struct {
	compression Compression
	schema      SchemaVersion
	strict      bool
	logger      *slog.Logger
	metrics     metric.Collector
}

// Option configures reading or writing an archive.
type Option func(*options)

// WithCompression sets the body compression used when writing.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithSchemaVersion writes records with an older schema version, for
// consumers that cannot read the current one.
func WithSchemaVersion(v SchemaVersion) Option {
	return func(o *options) {
		o.schema = v
	}
}

// WithStrict fails on attributes whose value type is not registered instead
// of skipping them.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
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

func newOptions(optFns []Option) (options, error) {
	o := options{schema: CurrentSchema}
	for _, fn := range optFns {
		fn(&o)
	}
	o.metrics = metric.OrNoop(o.metrics)
	if !o.schema.Valid() {
		return o, errInvalidSchema(o.schema)
	}
	if o.compression > CompressionZSTD {
		return o, errInvalidCompression(o.compression)
	}
	return o, nil
}

func (o options) skip(h recordHeader, reason error) {
	if o.logger != nil {
		o.logger.Warn("archive record skipped",
			slog.String("name", h.name),
			slog.String("type", h.tag),
			slog.String("reason", reason.Error()),
		)
	}
}
