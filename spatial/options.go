package spatial

import (
	"log/slog"

	"github.com/hupe1980/meshkit/metric"
)

const (
	// DefaultDimension is the number of coordinates indexed by default.
	DefaultDimension = 3

	// DefaultLeafSize is the maximum number of points in a kd-tree leaf.
	DefaultLeafSize = 16
)

type options struct {
	dimension   int
	leafSize    int
	parallelism int
	logger      *slog.Logger
	metrics     metric.Collector
}

// Option configures an NNSearch.
type Option func(*options)

// WithDimension sets the number of leading point coordinates taken into
// account (2 or 3).
func WithDimension(d int) Option {
	return func(o *options) {
		o.dimension = d
	}
}

// WithLeafSize sets the maximum number of points stored in a leaf.
func WithLeafSize(n int) Option {
	return func(o *options) {
		o.leafSize = n
	}
}

// WithParallelism caps the goroutines used by colocation.
// Values <= 0 use GOMAXPROCS, 1 disables parallelism.
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

// WithMetrics sets the metrics collector notified after each colocation.
func WithMetrics(c metric.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}
