package collection

import (
	"github.com/google/uuid"

	"github.com/hupe1980/meshkit/attribute"
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
)

// PointsAttribute is the name of the vertex attribute holding point coordinates.
const PointsAttribute = "points"

// PointSet is a vertex set whose vertices have coordinates.
// Coordinates live in the PointsAttribute vertex attribute, which must not be
// deleted or renamed through the store.
type PointSet struct {
	*VertexSet
	points *attribute.Variable[geom.Point]
}

// NewPointSet creates an empty point set.
func NewPointSet(optFns ...Option) *PointSet {
	ps, err := newPointSet(newOptions(optFns), nil)
	if err != nil {
		// An empty store cannot hold a conflicting points attribute.
		panic(err)
	}
	return ps
}

// RestorePointSet rebuilds a point set around an existing store, e.g. one read
// from an archive. A missing points attribute is created; one of another kind
// or type fails with core.ErrTypeMismatch.
func RestorePointSet(id uuid.UUID, impl Impl, store *attribute.Store, optFns ...Option) (*PointSet, error) {
	return newPointSet(newOptions(append(optFns, WithID(id), WithImpl(impl))), store)
}

func newPointSet(o options, store *attribute.Store) (*PointSet, error) {
	if store == nil {
		store = attribute.NewStore(attribute.WithLogger(o.logger))
	}
	ps := &PointSet{VertexSet: newVertexSet(o, store)}
	if err := ps.bind(); err != nil {
		return nil, err
	}
	return ps, nil
}

func (ps *PointSet) bind() error {
	points, err := attribute.FindOrCreateVariable(ps.vertices, PointsAttribute, geom.Point{}, attribute.InterpolableProperties())
	if err != nil {
		return err
	}
	ps.points = points
	return nil
}

// Point returns the coordinates of vertex v. v must be in range.
func (ps *PointSet) Point(v core.Index) geom.Point {
	return ps.points.Value(v)
}

// Points returns a copy of all vertex coordinates.
func (ps *PointSet) Points() []geom.Point {
	out := make([]geom.Point, 0, ps.NbVertices())
	for _, p := range ps.points.Values() {
		out = append(out, p)
	}
	return out
}

// Clone returns an independent copy with the same identifier.
func (ps *PointSet) Clone() *PointSet {
	out := &PointSet{VertexSet: newVertexSet(options{
		id:      ps.id,
		impl:    ps.impl,
		logger:  ps.logger,
		metrics: ps.metrics,
	}, ps.vertices.Clone())}
	if err := out.bind(); err != nil {
		panic(err)
	}
	return out
}
