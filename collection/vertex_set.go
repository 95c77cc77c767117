package collection

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/meshkit/attribute"
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/internal/conv"
	"github.com/hupe1980/meshkit/mapping"
	"github.com/hupe1980/meshkit/metric"
)

// VertexSet is a collection of vertices with attributes. It is embedded in
// PointSet and not created on its own.
type VertexSet struct {
	id       uuid.UUID
	impl     Impl
	vertices *attribute.Store
	logger   *slog.Logger
	metrics  metric.Collector
}

func newVertexSet(o options, store *attribute.Store) *VertexSet {
	return &VertexSet{
		id:       o.id,
		impl:     o.impl,
		vertices: store,
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// ID returns the collection identifier.
func (vs *VertexSet) ID() uuid.UUID { return vs.id }

// Impl returns the representation name.
func (vs *VertexSet) Impl() Impl { return vs.impl }

// NbVertices returns the number of vertices.
func (vs *VertexSet) NbVertices() int { return vs.vertices.NbElements() }

// VertexAttributes returns the store of vertex attributes.
func (vs *VertexSet) VertexAttributes() *attribute.Store { return vs.vertices }

func (vs *VertexSet) createVertices(n int) (core.Index, error) {
	first, err := conv.IntToIndex(vs.NbVertices())
	if err != nil {
		return core.NoIndex, err
	}
	if _, err := conv.IntToIndex(vs.NbVertices() + n); err != nil {
		return core.NoIndex, err
	}
	vs.vertices.Resize(vs.NbVertices() + n)
	return first, nil
}

func (vs *VertexSet) deleteVertices(mask []bool) ([]core.Index, error) {
	start := time.Now()
	if err := vs.vertices.DeleteElements(mask); err != nil {
		return nil, err
	}
	deleted := mapping.NbDeleted(mask)
	vs.metrics.RecordCompaction(len(mask), deleted, time.Since(start))
	if vs.logger != nil && deleted > 0 {
		vs.logger.Debug("vertices deleted",
			slog.String("collection", vs.id.String()),
			slog.Int("deleted", deleted),
			slog.Int("remaining", vs.NbVertices()),
		)
	}
	return mapping.OldToNew(mask), nil
}

func (vs *VertexSet) permuteVertices(perm []core.Index) error {
	return vs.vertices.PermuteElements(perm)
}
