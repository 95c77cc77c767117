package collection

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meshkit/attribute"
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
	"github.com/hupe1980/meshkit/metric"
	"github.com/hupe1980/meshkit/testutil"
)

func newLine(t *testing.T, n int, opts ...Option) (*PointSet, *Builder) {
	t.Helper()
	ps := NewPointSet(opts...)
	b := NewBuilder(ps)
	for i := range n {
		_, err := b.CreatePoint(geom.Point2(float64(i), 0))
		require.NoError(t, err)
	}
	return ps, b
}

func TestNewPointSet(t *testing.T) {
	ps := NewPointSet()
	assert.NotEqual(t, uuid.Nil, ps.ID())
	assert.Equal(t, DefaultImpl, ps.Impl())
	assert.Equal(t, 0, ps.NbVertices())
	assert.True(t, ps.VertexAttributes().Exists(PointsAttribute))

	id := uuid.New()
	ps = NewPointSet(WithID(id), WithImpl("custom"))
	assert.Equal(t, id, ps.ID())
	assert.Equal(t, Impl("custom"), ps.Impl())
}

func TestBuilderCreate(t *testing.T) {
	ps := NewPointSet()
	b := NewBuilder(ps)

	v, err := b.CreateVertex()
	require.NoError(t, err)
	assert.Equal(t, core.Index(0), v)

	first, err := b.CreatePoints([]geom.Point{geom.Point3(1, 0, 0), geom.Point3(2, 0, 0)})
	require.NoError(t, err)
	assert.Equal(t, core.Index(1), first)

	first, err = b.CreateVertices(3)
	require.NoError(t, err)
	assert.Equal(t, core.Index(3), first)
	assert.Equal(t, 6, ps.NbVertices())

	_, err = b.CreateVertices(-1)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	require.NoError(t, b.SetPoint(4, geom.Point3(7, 8, 9)))
	assert.Equal(t, geom.Point3(7, 8, 9), ps.Point(4))
	assert.Equal(t, geom.Point{}, ps.Point(0))

	err = b.SetPoint(6, geom.Point{})
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestAttributesFollowVertices(t *testing.T) {
	ps, b := newLine(t, 3)

	weights, err := attribute.FindOrCreateVariable(ps.VertexAttributes(), "weight", 1.0, attribute.DefaultProperties())
	require.NoError(t, err)
	assert.Equal(t, 3, weights.Size())

	_, err = b.CreateVertices(2)
	require.NoError(t, err)
	assert.Equal(t, 5, weights.Size())
	assert.Equal(t, 1.0, weights.Value(4))
}

func TestDeleteVertices(t *testing.T) {
	basic := &metric.Basic{}
	ps, b := newLine(t, 5, WithMetrics(basic))

	ids, err := attribute.FindOrCreateVariable(ps.VertexAttributes(), "id", 0, attribute.DefaultProperties())
	require.NoError(t, err)
	for i := range 5 {
		ids.SetValue(core.Index(i), i*10)
	}

	old2new, err := b.DeleteVertices([]bool{true, false, true, false, false})
	require.NoError(t, err)
	assert.Equal(t, []core.Index{core.NoIndex, 0, core.NoIndex, 1, 2}, old2new)
	assert.Equal(t, []geom.Point{geom.Point2(1, 0), geom.Point2(3, 0), geom.Point2(4, 0)}, ps.Points())
	assert.Equal(t, 30, ids.Value(1))
	assert.Equal(t, int64(2), basic.GetStats().CompactionDeleted)

	_, err = b.DeleteVertices([]bool{true})
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestDeleteVerticesBitmap(t *testing.T) {
	ps, b := newLine(t, 4)

	old2new, err := b.DeleteVerticesBitmap(roaring.BitmapOf(0, 3))
	require.NoError(t, err)
	assert.Equal(t, []core.Index{core.NoIndex, 0, 1, core.NoIndex}, old2new)
	assert.Equal(t, []geom.Point{geom.Point2(1, 0), geom.Point2(2, 0)}, ps.Points())

	_, err = b.DeleteVerticesBitmap(roaring.BitmapOf(9))
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestPermuteVertices(t *testing.T) {
	ps, b := newLine(t, 3)

	require.NoError(t, b.PermuteVertices([]core.Index{2, 0, 1}))
	assert.Equal(t, []geom.Point{geom.Point2(1, 0), geom.Point2(2, 0), geom.Point2(0, 0)}, ps.Points())

	err := b.PermuteVertices([]core.Index{0, 0, 1})
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestTransformPoints(t *testing.T) {
	rng := testutil.NewRNG(1)
	points := rng.UniformPoints(2000, 3, -1, 1)

	ps := NewPointSet()
	b := NewBuilder(ps, WithParallelism(4))
	_, err := b.CreatePoints(points)
	require.NoError(t, err)

	shift := geom.Vector{1, 2, 3}
	require.NoError(t, b.TransformPoints(func(p geom.Point) geom.Point { return p.Add(shift) }))

	for i, p := range points {
		assert.Equal(t, p.Add(shift), ps.Point(core.Index(i)))
	}
}

func TestCopyAndClone(t *testing.T) {
	src, _ := newLine(t, 3)
	_, err := attribute.FindOrCreateConstant(src.VertexAttributes(), "color", "red", attribute.DefaultProperties())
	require.NoError(t, err)

	dst, b := newLine(t, 1)
	require.NoError(t, b.Copy(src))
	assert.Equal(t, src.Points(), dst.Points())
	assert.True(t, dst.VertexAttributes().Exists("color"))
	assert.NotEqual(t, src.ID(), dst.ID())

	clone := src.Clone()
	assert.Equal(t, src.ID(), clone.ID())
	require.NoError(t, NewBuilder(clone).SetPoint(0, geom.Point2(9, 9)))
	assert.Equal(t, geom.Point2(0, 0), src.Point(0))
}

func TestRestorePointSet(t *testing.T) {
	store := attribute.NewStore()
	store.Resize(2)
	_, err := attribute.FindOrCreateVariable(store, PointsAttribute, geom.Point{}, attribute.InterpolableProperties())
	require.NoError(t, err)

	id := uuid.New()
	ps, err := RestorePointSet(id, "custom", store)
	require.NoError(t, err)
	assert.Equal(t, id, ps.ID())
	assert.Equal(t, 2, ps.NbVertices())

	bad := attribute.NewStore()
	_, err = attribute.FindOrCreateVariable(bad, PointsAttribute, 0, attribute.DefaultProperties())
	require.NoError(t, err)
	_, err = RestorePointSet(id, DefaultImpl, bad)
	assert.True(t, errors.Is(err, core.ErrTypeMismatch))
}

func TestDeleteVerticesLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, b := newLine(t, 3, WithLogger(logger))
	_, err := b.DeleteVertices([]bool{false, true, false})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "vertices deleted")
	assert.Contains(t, buf.String(), "deleted=1")
}
