package collection

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/hupe1980/meshkit/metric"
)

// Impl names the concrete representation of a collection.
type Impl string

// DefaultImpl is the in-memory representation provided by this package.
const DefaultImpl Impl = "default"

type options struct {
	id      uuid.UUID
	impl    Impl
	logger  *slog.Logger
	metrics metric.Collector
}

// Option configures a collection.
type Option func(*options)

// WithID sets the collection identifier. A random one is generated otherwise.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithImpl records the representation name of the collection.
func WithImpl(impl Impl) Option {
	return func(o *options) {
		o.impl = impl
	}
}

// WithLogger sets the logger used by the collection and its store.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the collector notified on vertex deletion.
func WithMetrics(c metric.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

func newOptions(optFns []Option) options {
	o := options{impl: DefaultImpl}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}
	if o.impl == "" {
		o.impl = DefaultImpl
	}
	o.metrics = metric.OrNoop(o.metrics)
	return o
}
