package geom

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meshkit/core"
)

func TestPointArithmetic(t *testing.T) {
	p := Point3(1, 2, 3)
	q := Point2(4, 6)

	assert.Equal(t, Vector{-3, -4, 3}, p.Sub(q))
	assert.Equal(t, Point3(2, 4, 6), p.Scale(2))
	assert.Equal(t, Point3(5, 8, 3), p.Add(Vector{4, 6, 0}))
	assert.InDelta(t, 5.0, Vector{3, 4, 0}.Length(), 1e-12)
	assert.True(t, p.Inexact(Point3(1.05, 2, 3), 0.1))
	assert.False(t, p.Inexact(Point3(1.2, 2, 3), 0.1))
}

func TestPointInterpolate(t *testing.T) {
	got := Point{}.Interpolate(
		[]Point{Point2(0, 0), Point2(2, 4)},
		[]float64{0.5, 0.5},
	)
	assert.Equal(t, Point2(1, 2), got)

	assert.Equal(t, 3, Point{}.NbItems())
	assert.Equal(t, float32(2), Point3(1, 2, 3).GenericItem(1))
}

func TestNewFrame(t *testing.T) {
	f, err := NewFrame(Vector{1, 1, 0}, Vector{-2, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, f.Dimension())
	assert.InDelta(t, 2.8284271, f.MaxElongation(), 1e-6)
	assert.InDelta(t, 1.4142135, f.MinElongation(), 1e-6)

	_, err = NewFrame(Vector{1, 0, 0}, Vector{1, 1, 0})
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	_, err = NewFrame(Vector{})
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	_, err = NewFrame()
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestAxisFrameScaled(t *testing.T) {
	f, err := AxisFrame(1, 2, 4)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, f.Scaled(Vector{1, 0, 0}, 1), 1e-12)
	assert.InDelta(t, 0.25, f.Scaled(Vector{0, 1, 0}, 1), 1e-12)
	assert.InDelta(t, 0.25, f.Scaled(Vector{0, 0, 4}, 2), 1e-12)
}
