// Package metric collects operational metrics of colocation, merging,
// compaction and archiving.
//
// Implement Collector to integrate with a monitoring system, or use the
// provided Basic (in-memory atomics) and Prometheus collectors.
package metric

import (
	"sync/atomic"
	"time"
)

// ArchiveOp names an archive operation.
type ArchiveOp string

const (
	ArchiveSave ArchiveOp = "save"
	ArchiveLoad ArchiveOp = "load"
)

// Collector defines an interface for collecting operational metrics.
type Collector interface {
	// RecordColocation is called after each colocation pass over points
	// input points producing unique representatives.
	RecordColocation(points, unique int, duration time.Duration)

	// RecordMerge is called after collections are merged.
	RecordMerge(sources, points, unique int, duration time.Duration)

	// RecordCompaction is called after deleting elements from a collection.
	RecordCompaction(elements, deleted int, duration time.Duration)

	// RecordArchive is called after an archive is written or read.
	// bytes is the encoded size, err is nil if successful.
	RecordArchive(op ArchiveOp, bytes int, duration time.Duration, err error)
}

// Noop is a no-op implementation of Collector.
type Noop struct{}

func (Noop) RecordColocation(int, int, time.Duration)           {}
func (Noop) RecordMerge(int, int, int, time.Duration)           {}
func (Noop) RecordCompaction(int, int, time.Duration)           {}
func (Noop) RecordArchive(ArchiveOp, int, time.Duration, error) {}

// OrNoop returns c, or Noop if c is nil.
func OrNoop(c Collector) Collector {
	if c == nil {
		return Noop{}
	}
	return c
}

// Basic provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type Basic struct {
	ColocationCount      atomic.Int64
	ColocationPoints     atomic.Int64
	ColocationDuplicates atomic.Int64
	ColocationNanos      atomic.Int64
	MergeCount           atomic.Int64
	MergeSources         atomic.Int64
	MergePoints          atomic.Int64
	MergeNanos           atomic.Int64
	CompactionCount      atomic.Int64
	CompactionDeleted    atomic.Int64
	ArchiveSaves         atomic.Int64
	ArchiveLoads         atomic.Int64
	ArchiveBytes         atomic.Int64
	ArchiveErrors        atomic.Int64
}

// RecordColocation implements Collector.
func (b *Basic) RecordColocation(points, unique int, duration time.Duration) {
	b.ColocationCount.Add(1)
	b.ColocationPoints.Add(int64(points))
	b.ColocationDuplicates.Add(int64(points - unique))
	b.ColocationNanos.Add(duration.Nanoseconds())
}

// RecordMerge implements Collector.
func (b *Basic) RecordMerge(sources, points, unique int, duration time.Duration) {
	b.MergeCount.Add(1)
	b.MergeSources.Add(int64(sources))
	b.MergePoints.Add(int64(points))
	b.MergeNanos.Add(duration.Nanoseconds())
}

// RecordCompaction implements Collector.
func (b *Basic) RecordCompaction(_, deleted int, _ time.Duration) {
	b.CompactionCount.Add(1)
	b.CompactionDeleted.Add(int64(deleted))
}

// RecordArchive implements Collector.
func (b *Basic) RecordArchive(op ArchiveOp, bytes int, _ time.Duration, err error) {
	if err != nil {
		b.ArchiveErrors.Add(1)
		return
	}
	switch op {
	case ArchiveSave:
		b.ArchiveSaves.Add(1)
	case ArchiveLoad:
		b.ArchiveLoads.Add(1)
	}
	b.ArchiveBytes.Add(int64(bytes))
}

// Stats is a point-in-time snapshot of a Basic collector.
type Stats struct {
	Colocations          int64
	ColocationPoints     int64
	ColocationDuplicates int64
	ColocationAvgNanos   int64
	Merges               int64
	CompactionDeleted    int64
	ArchiveSaves         int64
	ArchiveLoads         int64
	ArchiveErrors        int64
}

// GetStats returns a snapshot of current metrics.
func (b *Basic) GetStats() Stats {
	s := Stats{
		Colocations:          b.ColocationCount.Load(),
		ColocationPoints:     b.ColocationPoints.Load(),
		ColocationDuplicates: b.ColocationDuplicates.Load(),
		Merges:               b.MergeCount.Load(),
		CompactionDeleted:    b.CompactionDeleted.Load(),
		ArchiveSaves:         b.ArchiveSaves.Load(),
		ArchiveLoads:         b.ArchiveLoads.Load(),
		ArchiveErrors:        b.ArchiveErrors.Load(),
	}
	if s.Colocations > 0 {
		s.ColocationAvgNanos = b.ColocationNanos.Load() / s.Colocations
	}
	return s
}
