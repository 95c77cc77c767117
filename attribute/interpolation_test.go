package attribute

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
)

type label string

func TestInterpolate(t *testing.T) {
	half := Interpolation{Indices: []core.Index{0, 1}, Lambdas: []float64{0.5, 0.5}}

	t.Run("float", func(t *testing.T) {
		v := NewVariableFromValues("f", 0.0, []float64{1, 2}, DefaultProperties())
		assert.InDelta(t, 1.5, Interpolate[float64](half, v), 1e-12)
	})

	t.Run("int truncates", func(t *testing.T) {
		v := NewVariableFromValues("i", 0, []int{1, 2}, DefaultProperties())
		assert.Equal(t, 1, Interpolate[int](half, v))
	})

	t.Run("array", func(t *testing.T) {
		v := NewVariableFromValues("a", [2]float32{}, [][2]float32{{0, 2}, {2, 4}}, DefaultProperties())
		assert.Equal(t, [2]float32{1, 3}, Interpolate[[2]float32](half, v))
	})

	t.Run("point", func(t *testing.T) {
		v := NewVariableFromValues("p", geom.Point{}, []geom.Point{geom.Point2(0, 0), geom.Point2(2, 2)}, DefaultProperties())
		assert.Equal(t, geom.Point2(1, 1), Interpolate[geom.Point](half, v))
	})

	t.Run("equal values returned unchanged", func(t *testing.T) {
		v := NewVariableFromValues("s", label("none"), []label{"x", "x"}, DefaultProperties())
		assert.Equal(t, label("x"), Interpolate[label](half, v))
	})

	t.Run("non numeric yields default", func(t *testing.T) {
		v := NewVariableFromValues("s", label("none"), []label{"x", "y"}, DefaultProperties())
		assert.Equal(t, label("none"), Interpolate[label](half, v))
	})

	t.Run("bool yields default", func(t *testing.T) {
		v := NewVariableFromValues("b", false, []bool{true, false}, DefaultProperties())
		assert.False(t, Interpolate[bool](half, v))
	})
}

func TestNewInterpolation(t *testing.T) {
	_, err := NewInterpolation(nil, nil)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	_, err = NewInterpolation([]core.Index{0}, []float64{0.5, 0.5})
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	interp, err := NewInterpolation([]core.Index{0}, []float64{1})
	require.NoError(t, err)
	assert.Len(t, interp.Indices, 1)
}

func TestGenericValues(t *testing.T) {
	tests := []struct {
		name        string
		attr        Attribute
		genericable bool
		items       int
		item0       float32
	}{
		{"double", NewVariableFromValues("d", 0.0, []float64{2.5}, DefaultProperties()), true, 1, 2.5},
		{"uint8", NewVariableFromValues("u", uint8(0), []uint8{7}, DefaultProperties()), true, 1, 7},
		{"bool", NewVariableFromValues("b", false, []bool{true}, DefaultProperties()), true, 1, 1},
		{"array", NewVariableFromValues("a", [3]int{}, [][3]int{{4, 5, 6}}, DefaultProperties()), true, 3, 4},
		{"point", NewVariableFromValues("p", geom.Point{}, []geom.Point{geom.Point3(1, 2, 3)}, DefaultProperties()), true, 3, 1},
		{"string", NewVariableFromValues("s", "", []string{"x"}, DefaultProperties()), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.genericable, tt.attr.IsGenericable())
			assert.Equal(t, tt.items, tt.attr.NbItems())
			assert.Equal(t, tt.item0, tt.attr.GenericValue(0))
		})
	}

	p := NewVariableFromValues("p", geom.Point{}, []geom.Point{geom.Point3(1, 2, 3)}, DefaultProperties())
	assert.Equal(t, float32(3), p.GenericItemValue(0, 2))
}

func TestTypeTag(t *testing.T) {
	assert.Equal(t, "float64", TypeTag[float64]())
	assert.Equal(t, "[3]float64", TypeTag[[3]float64]())
	assert.Equal(t, "github.com/hupe1980/meshkit/geom.Point", TypeTag[geom.Point]())
	assert.Equal(t, "github.com/hupe1980/meshkit/attribute.label", TypeTag[label]())
}
