// Package parallel runs data-parallel maps over index ranges.
//
// Each index is handled by exactly one goroutine, so callers may write to
// disjoint per-index slots of shared slices without further synchronization.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the number of consecutive indices handled by one task.
const DefaultGrain = 256

type options struct {
	limit int
	grain int
}

// Option configures For.
type Option func(*options)

// WithLimit caps the number of concurrent goroutines. Values <= 0 use GOMAXPROCS.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithGrain sets the number of consecutive indices per task.
func WithGrain(n int) Option {
	return func(o *options) {
		o.grain = n
	}
}

// For calls fn(i) for every i in [0, n) and returns the first error.
// Small ranges and a limit of 1 run inline on the calling goroutine.
func For(n int, fn func(i int) error, opts ...Option) error {
	o := options{grain: DefaultGrain}
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit <= 0 {
		o.limit = runtime.GOMAXPROCS(0)
	}
	if o.grain <= 0 {
		o.grain = DefaultGrain
	}

	if o.limit == 1 || n <= o.grain {
		for i := range n {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(o.limit)

	for lo := 0; lo < n; lo += o.grain {
		hi := min(lo+o.grain, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
