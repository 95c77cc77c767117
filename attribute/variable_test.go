package attribute

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/mapping"
)

func newFilledVariable(t *testing.T, s *Store, name string, n int) *Variable[int] {
	t.Helper()
	s.Resize(n)
	v, err := FindOrCreateVariable(s, name, -1, DefaultProperties())
	require.NoError(t, err)
	for i := range n {
		v.SetValue(core.Index(i), i*10)
	}
	return v
}

func TestVariableResize(t *testing.T) {
	s := NewStore()
	v := newFilledVariable(t, s, "int", 3)

	s.Resize(5)
	assert.Equal(t, 5, v.Size())
	assert.Equal(t, -1, v.Value(4))

	s.Resize(2)
	assert.Equal(t, 2, v.Size())
	assert.Equal(t, 10, v.Value(1))

	s.Reserve(100)
	assert.Equal(t, 2, v.Size())
}

func TestVariableDeleteElements(t *testing.T) {
	s := NewStore()
	v := newFilledVariable(t, s, "int", 5)

	require.NoError(t, s.DeleteElements([]bool{true, false, true, false, false}))
	assert.Equal(t, 3, s.NbElements())

	var got []int
	for _, val := range v.Values() {
		got = append(got, val)
	}
	assert.Equal(t, []int{10, 30, 40}, got)
}

func TestVariablePermuteElements(t *testing.T) {
	s := NewStore()
	v := newFilledVariable(t, s, "int", 4)

	require.NoError(t, s.PermuteElements([]core.Index{3, 2, 1, 0}))
	assert.Equal(t, 30, v.Value(0))
	assert.Equal(t, 0, v.Value(3))

	err := s.PermuteElements([]core.Index{0, 0, 1, 2})
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestVariableCloneIsIndependent(t *testing.T) {
	s := NewStore()
	v := newFilledVariable(t, s, "int", 3)

	clone := v.Clone()
	clone.SetValue(0, 99)
	assert.Equal(t, 0, v.Value(0))
	assert.Equal(t, v.Properties(), clone.Properties())
}

func TestVariableExtract(t *testing.T) {
	s := NewStore()
	v := newFilledVariable(t, s, "int", 4)

	out, err := v.Extract([]core.Index{core.NoIndex, 1, 0, core.NoIndex}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Size())
	assert.Equal(t, 20, out.Value(0))
	assert.Equal(t, 10, out.Value(1))
	assert.Equal(t, -1, out.Value(2))

	_, err = v.Extract([]core.Index{5, 0, 1, 2}, 3)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	_, err = v.Extract([]core.Index{0}, 3)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestVariableExtractMapping(t *testing.T) {
	s := NewStore()
	v := newFilledVariable(t, s, "int", 3)

	m := mapping.NewGeneric[core.Index, core.Index]()
	m.Map(2, 0)
	m.Map(2, 1)

	out, err := v.ExtractMapping(m, 2)
	require.NoError(t, err)
	assert.Equal(t, 20, out.Value(0))
	assert.Equal(t, 20, out.Value(1))
}

func TestVariableImport(t *testing.T) {
	dst := NewVariable("int", 0, 4, DefaultProperties())
	src := NewVariableFromValues("int", 0, []int{5, 6}, DefaultProperties())

	require.NoError(t, dst.Import([]core.Index{3, 1}, src))
	assert.Equal(t, 6, dst.Value(1))
	assert.Equal(t, 5, dst.Value(3))

	err := dst.Import([]core.Index{9, core.NoIndex}, src)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	m := mapping.NewGeneric[core.Index, core.Index]()
	m.Map(1, 0)
	require.NoError(t, dst.ImportMapping(m, src))
	assert.Equal(t, 6, dst.Value(0))
}

func TestVariableModifyAndCompute(t *testing.T) {
	v := NewVariableFromValues("double", 0.0, []float64{1, 3, 0}, InterpolableProperties())

	v.Modify(0, func(x *float64) { *x += 1 })
	assert.Equal(t, 2.0, v.Value(0))

	interp, err := NewInterpolation([]core.Index{0, 1}, []float64{0.5, 0.5})
	require.NoError(t, err)
	v.ComputeValue(interp, 2)
	assert.InDelta(t, 2.5, v.Value(2), 1e-12)
}
