package merge

import (
	"log/slog"

	"github.com/hupe1980/meshkit/metric"
	"github.com/hupe1980/meshkit/spatial"
)

type options struct {
	dimension   int
	parallelism int
	logger      *slog.Logger
	metrics     metric.Collector
}

// Option configures a VertexMerger.
type Option func(*options)

// WithDimension sets the number of point coordinates compared (2 or 3).
func WithDimension(d int) Option {
	return func(o *options) {
		o.dimension = d
	}
}

// WithParallelism caps the goroutines used by colocation.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
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

func (o options) spatialOptions() []spatial.Option {
	return []spatial.Option{
		spatial.WithDimension(o.dimension),
		spatial.WithParallelism(o.parallelism),
		spatial.WithLogger(o.logger),
		spatial.WithMetrics(o.metrics),
	}
}
