package collection

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
	"github.com/hupe1980/meshkit/internal/parallel"
	"github.com/hupe1980/meshkit/mapping"
)

// Builder edits the structure of a point set.
// A Builder is not safe for concurrent use, and no other goroutine may read
// the point set while it is edited.
type Builder struct {
	ps          *PointSet
	parallelism int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithParallelism caps the goroutines used by TransformPoints.
// Values <= 0 use GOMAXPROCS.
func WithParallelism(n int) BuilderOption {
	return func(b *Builder) {
		b.parallelism = n
	}
}

// NewBuilder returns a builder editing ps.
func NewBuilder(ps *PointSet, opts ...BuilderOption) *Builder {
	b := &Builder{ps: ps}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// PointSet returns the edited point set.
func (b *Builder) PointSet() *PointSet {
	return b.ps
}

// CreateVertex appends a vertex at the origin and returns its index.
func (b *Builder) CreateVertex() (core.Index, error) {
	return b.ps.createVertices(1)
}

// CreateVertices appends n vertices at the origin and returns the index of
// the first one.
func (b *Builder) CreateVertices(n int) (core.Index, error) {
	if n < 0 {
		return core.NoIndex, core.InvalidArgumentf("cannot create %d vertices", n)
	}
	return b.ps.createVertices(n)
}

// CreatePoint appends a vertex at p and returns its index.
func (b *Builder) CreatePoint(p geom.Point) (core.Index, error) {
	v, err := b.ps.createVertices(1)
	if err != nil {
		return core.NoIndex, err
	}
	b.ps.points.SetValue(v, p)
	return v, nil
}

// CreatePoints appends one vertex per point and returns the index of the
// first one.
func (b *Builder) CreatePoints(points []geom.Point) (core.Index, error) {
	first, err := b.ps.createVertices(len(points))
	if err != nil {
		return core.NoIndex, err
	}
	for i, p := range points {
		b.ps.points.SetValue(first+core.Index(i), p)
	}
	return first, nil
}

// SetPoint moves vertex v to p.
func (b *Builder) SetPoint(v core.Index, p geom.Point) error {
	if v.Int() >= b.ps.NbVertices() {
		return core.IndexOutOfRange("vertex", v, b.ps.NbVertices())
	}
	b.ps.points.SetValue(v, p)
	return nil
}

// DeleteVertices removes the vertices flagged in mask and returns the
// old-to-new index mapping, with core.NoIndex for removed vertices.
func (b *Builder) DeleteVertices(mask []bool) ([]core.Index, error) {
	return b.ps.deleteVertices(mask)
}

// DeleteVerticesBitmap removes the vertices whose indices are set in deleted.
func (b *Builder) DeleteVerticesBitmap(deleted *roaring.Bitmap) ([]core.Index, error) {
	mask, err := mapping.MaskFromBitmap(deleted, b.ps.NbVertices())
	if err != nil {
		return nil, err
	}
	return b.ps.deleteVertices(mask)
}

// PermuteVertices moves vertex i to position perm[i].
func (b *Builder) PermuteVertices(perm []core.Index) error {
	return b.ps.permuteVertices(perm)
}

// TransformPoints replaces every point p by fn(p). fn is called concurrently
// and must not touch the point set.
func (b *Builder) TransformPoints(fn func(geom.Point) geom.Point) error {
	points := b.ps.points
	return parallel.For(b.ps.NbVertices(), func(i int) error {
		v := core.Index(i)
		points.SetValue(v, fn(points.Value(v)))
		return nil
	}, parallel.WithLimit(b.parallelism))
}

// Copy replaces the content of the edited point set with the one of from.
// The identifier is kept.
func (b *Builder) Copy(from *PointSet) error {
	b.ps.vertices.Copy(from.vertices)
	return b.ps.bind()
}
