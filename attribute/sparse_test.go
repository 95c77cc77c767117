package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/mapping"
)

func TestSparseAttribute(t *testing.T) {
	s := NewStore()
	s.Resize(6)

	sp, err := FindOrCreateSparse(s, "double", 12.0, DefaultProperties())
	require.NoError(t, err)

	sp.SetValue(3, 3)
	sp.SetValue(5, 5)
	sp.SetValue(1, 12)
	assert.Equal(t, 2, sp.NbValues())
	assert.Equal(t, 12.0, sp.Value(0))
	assert.Equal(t, 3.0, sp.Value(3))

	require.NoError(t, s.DeleteElements([]bool{false, false, true, false, false, false}))
	assert.Equal(t, 3.0, sp.Value(2))
	assert.Equal(t, 5.0, sp.Value(4))
	assert.Equal(t, 12.0, sp.Value(3))

	require.NoError(t, s.PermuteElements([]core.Index{4, 3, 2, 1, 0}))
	assert.Equal(t, 3.0, sp.Value(2))
	assert.Equal(t, 5.0, sp.Value(0))

	var keys []core.Index
	for i := range sp.Entries() {
		keys = append(keys, i)
	}
	assert.Equal(t, []core.Index{0, 2}, keys)

	s.Resize(1)
	assert.Equal(t, 1, sp.NbValues())
}

func TestSparseModifyExtractImport(t *testing.T) {
	sp := NewSparse("int", 0, DefaultProperties())
	sp.Modify(4, func(v *int) { *v += 2 })
	assert.Equal(t, 2, sp.Value(4))

	sp.Modify(4, func(v *int) { *v = 0 })
	assert.Equal(t, 0, sp.NbValues())

	sp.SetValue(1, 7)
	out, err := sp.Extract([]core.Index{core.NoIndex, 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Value(0))

	m := mapping.NewGeneric[core.Index, core.Index]()
	m.Map(1, 3)
	m.Map(1, 4)
	fromMapping, err := sp.ExtractMapping(m, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, fromMapping.NbValues())

	dst := NewSparse("int", 0, DefaultProperties())
	src := NewVariableFromValues("int", 0, []int{0, 9}, DefaultProperties())
	dst.Import([]core.Index{5, 6}, src)
	assert.Equal(t, 1, dst.NbValues())
	assert.Equal(t, 9, dst.Value(6))
}
