package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.UniformPoints(64, 2, -1, 1)

	assert.Len(t, pts, 64)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p[0], -1.0)
		assert.Less(t, p[1], 1.0)
		assert.Equal(t, 0.0, p[2])
	}
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(1)
	a := rng.UniformPoints(4, 3, 0, 1)
	rng.Reset()
	b := rng.UniformPoints(4, 3, 0, 1)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(1), rng.Seed())
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts, labels := rng.ClusteredPoints(5, 4, 3, 10, 0.1)

	assert.Len(t, pts, 20)
	assert.Len(t, labels, 20)
	for i := range pts {
		for j := range pts {
			if labels[i] == labels[j] {
				assert.True(t, pts[i].Inexact(pts[j], 0.21))
			}
		}
	}
}

func TestExactSearch(t *testing.T) {
	pts := []geom.Point{geom.Point2(1, 0), geom.Point2(-1, 0), geom.Point2(2, 0), geom.Point2(3, 0)}

	assert.Equal(t, []core.Index{0, 1}, ExactRadius(pts, geom.Point{}, 1.1))
	assert.Empty(t, ExactRadius(pts, geom.Point{}, 1.0))
	assert.Equal(t, []core.Index{0, 1, 2}, ExactKNN(pts, geom.Point{}, 3))
	assert.Len(t, ExactKNN(pts, geom.Point{}, 10), 4)
}
