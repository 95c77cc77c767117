package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus exports metrics through a caller-supplied registerer.
type Prometheus struct {
	operations  *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	points      *prometheus.CounterVec
	duplicates  prometheus.Counter
	deleted     prometheus.Counter
	archiveSize *prometheus.HistogramVec
	errors      *prometheus.CounterVec
}

// NewPrometheus creates the collectors under namespace and registers them on reg.
// It panics if a collector with the same name is already registered on reg.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total operations by kind",
		}, []string{"operation"}),
		durations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Operation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}, []string{"operation"}),
		points: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Input points processed by operation",
		}, []string{"operation"}),
		duplicates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "colocated_points_total",
			Help:      "Points collapsed onto another representative",
		}),
		deleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deleted_elements_total",
			Help:      "Elements removed by compaction",
		}),
		archiveSize: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "archive_bytes",
			Help:      "Encoded archive size in bytes",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 10),
		}, []string{"operation"}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failed operations by kind",
		}, []string{"operation"}),
	}
}

// RecordColocation implements Collector.
func (p *Prometheus) RecordColocation(points, unique int, duration time.Duration) {
	p.operations.WithLabelValues("colocation").Inc()
	p.durations.WithLabelValues("colocation").Observe(duration.Seconds())
	p.points.WithLabelValues("colocation").Add(float64(points))
	p.duplicates.Add(float64(points - unique))
}

// RecordMerge implements Collector.
func (p *Prometheus) RecordMerge(_, points, _ int, duration time.Duration) {
	p.operations.WithLabelValues("merge").Inc()
	p.durations.WithLabelValues("merge").Observe(duration.Seconds())
	p.points.WithLabelValues("merge").Add(float64(points))
}

// RecordCompaction implements Collector.
func (p *Prometheus) RecordCompaction(_, deleted int, duration time.Duration) {
	p.operations.WithLabelValues("compaction").Inc()
	p.durations.WithLabelValues("compaction").Observe(duration.Seconds())
	p.deleted.Add(float64(deleted))
}

// RecordArchive implements Collector.
func (p *Prometheus) RecordArchive(op ArchiveOp, bytes int, duration time.Duration, err error) {
	label := "archive_" + string(op)
	if err != nil {
		p.errors.WithLabelValues(label).Inc()
		return
	}
	p.operations.WithLabelValues(label).Inc()
	p.durations.WithLabelValues(label).Observe(duration.Seconds())
	p.archiveSize.WithLabelValues(string(op)).Observe(float64(bytes))
}
