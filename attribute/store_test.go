package attribute

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
	"github.com/hupe1980/meshkit/mapping"
)

func TestFindOrCreateIdempotent(t *testing.T) {
	s := NewStore()
	s.Resize(3)

	a, err := FindOrCreateVariable(s, "int", 7, DefaultProperties())
	require.NoError(t, err)
	a.SetValue(1, 42)

	b, err := FindOrCreateVariable(s, "int", 0, DefaultProperties())
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 42, b.Value(1))
	assert.Equal(t, 1, s.NbAttributes())
}

func TestFindOrCreateTypeMismatch(t *testing.T) {
	s := NewStore()
	_, err := FindOrCreateVariable(s, "attr", 1.0, DefaultProperties())
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"other type", func() error {
			_, err := FindOrCreateVariable(s, "attr", 1, DefaultProperties())
			return err
		}},
		{"other kind", func() error {
			_, err := FindOrCreateConstant(s, "attr", 1.0, DefaultProperties())
			return err
		}},
		{"sparse", func() error {
			_, err := FindOrCreateSparse(s, "attr", 1.0, DefaultProperties())
			return err
		}},
		{"find variable", func() error {
			_, err := FindVariable[int](s, "attr")
			return err
		}},
		{"find typed", func() error {
			_, err := Find[string](s, "attr")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.fn(), core.ErrTypeMismatch))
		})
	}
}

func TestFindNotFound(t *testing.T) {
	s := NewStore()

	_, err := Find[int](s, "missing")
	assert.True(t, errors.Is(err, core.ErrNotFound))

	_, err = FindConstant[int](s, "missing")
	assert.True(t, errors.Is(err, core.ErrNotFound))

	assert.True(t, errors.Is(s.DeleteAttribute("missing"), core.ErrNotFound))
	assert.Equal(t, UndefinedType, s.Type("missing"))

	_, err = FindOrCreateVariable(s, "", 0, DefaultProperties())
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestFindAnyKind(t *testing.T) {
	s := NewStore()
	s.Resize(2)
	_, err := FindOrCreateConstant(s, "c", 3, DefaultProperties())
	require.NoError(t, err)
	_, err = FindOrCreateSparse(s, "s", 4, DefaultProperties())
	require.NoError(t, err)

	for _, name := range []string{"c", "s"} {
		ro, err := Find[int](s, name)
		require.NoError(t, err)
		assert.NotZero(t, ro.Value(1))
	}
	assert.Equal(t, "int", s.Type("c"))
}

func TestStoreLockstep(t *testing.T) {
	s := NewStore()
	ints, err := FindOrCreateVariable(s, "int", 0, DefaultProperties())
	require.NoError(t, err)
	points, err := FindOrCreateVariable(s, "point", geom.Point{}, DefaultProperties())
	require.NoError(t, err)
	_, err = FindOrCreateConstant(s, "const", "x", DefaultProperties())
	require.NoError(t, err)

	for _, n := range []int{10, 3, 0, 7} {
		s.Resize(n)
		assert.Equal(t, n, ints.Size())
		assert.Equal(t, n, points.Size())
	}

	late, err := FindOrCreateVariable(s, "late", true, DefaultProperties())
	require.NoError(t, err)
	assert.Equal(t, 7, late.Size())

	require.NoError(t, s.DeleteElements([]bool{true, true, false, false, false, false, false}))
	assert.Equal(t, 5, ints.Size())
	assert.Equal(t, 5, points.Size())
	assert.Equal(t, 5, late.Size())

	err = s.DeleteElements([]bool{true})
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestStoreAssignAndInterpolate(t *testing.T) {
	s := NewStore()
	s.Resize(3)

	interpolable, err := FindOrCreateVariable(s, "interpolable", 0.0, InterpolableProperties())
	require.NoError(t, err)
	plain, err := FindOrCreateVariable(s, "plain", 0.0, DefaultProperties())
	require.NoError(t, err)

	interpolable.SetValue(0, 1)
	interpolable.SetValue(1, 3)
	plain.SetValue(0, 1)
	plain.SetValue(1, 3)

	require.NoError(t, s.InterpolateValue(Interpolation{Indices: []core.Index{0, 1}, Lambdas: []float64{0.25, 0.75}}, 2))
	assert.InDelta(t, 2.5, interpolable.Value(2), 1e-12)
	assert.Equal(t, 0.0, plain.Value(2))

	require.NoError(t, s.AssignValue(0, 2))
	assert.Equal(t, 1.0, interpolable.Value(2))
	assert.Equal(t, 0.0, plain.Value(2))

	err = s.AssignValue(0, 3)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	err = s.InterpolateValue(Interpolation{Indices: []core.Index{5}, Lambdas: []float64{1}}, 0)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestStoreCopy(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	src := NewStore()
	src.Resize(2)
	v, err := FindOrCreateVariable(src, "shared", 0, DefaultProperties())
	require.NoError(t, err)
	v.SetValue(1, 5)
	_, err = FindOrCreateConstant(src, "only-src", "a", DefaultProperties())
	require.NoError(t, err)
	_, err = FindOrCreateVariable(src, "clash", 1.5, DefaultProperties())
	require.NoError(t, err)

	dst := NewStore(WithLogger(logger))
	dst.Resize(4)
	existing, err := FindOrCreateVariable(dst, "shared", 0, DefaultProperties())
	require.NoError(t, err)
	clash, err := FindOrCreateVariable(dst, "clash", "x", DefaultProperties())
	require.NoError(t, err)

	dst.Copy(src)

	assert.Equal(t, 2, dst.NbElements())
	assert.Equal(t, 5, existing.Value(1))
	assert.Equal(t, 2, clash.Size())
	assert.Equal(t, []string{"clash", "only-src", "shared"}, dst.Names())
	assert.Contains(t, logs.String(), "attribute copy skipped")

	v.SetValue(1, 6)
	assert.Equal(t, 5, existing.Value(1), "copy must not alias the source")
}

func TestStoreExtractImport(t *testing.T) {
	src := NewStore()
	src.Resize(3)
	v, err := FindOrCreateVariable(src, "id", 0, DefaultProperties())
	require.NoError(t, err)
	for i := range 3 {
		v.SetValue(core.Index(i), 100+i)
	}
	local, err := FindOrCreateVariable(src, "local", 0, Properties{Persistent: true})
	require.NoError(t, err)
	local.SetValue(0, 1)

	extracted, err := src.Extract([]core.Index{1, core.NoIndex, 0}, 2)
	require.NoError(t, err)
	id, err := FindVariable[int](extracted, "id")
	require.NoError(t, err)
	assert.Equal(t, 102, id.Value(0))
	assert.Equal(t, 100, id.Value(1))

	dst := NewStore()
	dst.Resize(5)
	require.NoError(t, dst.Import([]core.Index{4, 3, core.NoIndex}, src))
	imported, err := FindVariable[int](dst, "id")
	require.NoError(t, err)
	assert.Equal(t, 5, imported.Size())
	assert.Equal(t, 100, imported.Value(4))
	assert.Equal(t, 101, imported.Value(3))
	assert.Equal(t, 0, imported.Value(0))
	assert.False(t, dst.Exists("local"), "non-transferable attributes stay behind")

	require.NoError(t, dst.Import([]core.Index{0, 1, 2}, src))
	assert.Equal(t, 102, imported.Value(2))
}

func TestStoreImportSparseDefault(t *testing.T) {
	src := NewStore()
	src.Resize(2)
	from, err := FindOrCreateSparse(src, "s", 0, DefaultProperties())
	require.NoError(t, err)
	from.SetValue(1, 3)

	dst := NewStore()
	dst.Resize(3)
	to, err := FindOrCreateSparse(dst, "s", 0, DefaultProperties())
	require.NoError(t, err)
	to.SetValue(0, 7)
	to.SetValue(1, 8)
	to.SetValue(2, 9)

	require.NoError(t, dst.Import([]core.Index{0, 1}, src))
	assert.Equal(t, 0, to.Value(0), "default source values clear the target")
	assert.Equal(t, 3, to.Value(1))
	assert.Equal(t, 9, to.Value(2))
	assert.Equal(t, 2, to.NbValues())

	m := mapping.NewGeneric[core.Index, core.Index]()
	m.Map(0, 2)
	require.NoError(t, dst.ImportMapping(m, src))
	assert.Equal(t, 0, to.Value(2))
	assert.Equal(t, 1, to.NbValues())

	// Variable attributes behave the same way.
	vsrc := NewStore()
	vsrc.Resize(1)
	_, err = FindOrCreateVariable(vsrc, "v", 0, DefaultProperties())
	require.NoError(t, err)
	vdst := NewStore()
	vdst.Resize(1)
	v, err := FindOrCreateVariable(vdst, "v", 0, DefaultProperties())
	require.NoError(t, err)
	v.SetValue(0, 7)
	require.NoError(t, vdst.Import([]core.Index{0}, vsrc))
	assert.Equal(t, 0, v.Value(0))
}

func TestStoreRenameDeleteClear(t *testing.T) {
	s := NewStore()
	s.Resize(4)
	_, err := FindOrCreateVariable(s, "a", 0, DefaultProperties())
	require.NoError(t, err)
	_, err = FindOrCreateVariable(s, "b", 0, DefaultProperties())
	require.NoError(t, err)

	assert.True(t, errors.Is(s.RenameAttribute("a", "b"), core.ErrTypeMismatch))
	require.NoError(t, s.RenameAttribute("a", "c"))
	c, err := s.Attribute("c")
	require.NoError(t, err)
	assert.Equal(t, "c", c.Name())

	require.NoError(t, s.DeleteAttribute("b"))
	assert.Equal(t, []string{"c"}, s.Names())

	s.ClearAttributes()
	assert.Equal(t, 0, s.NbElements())
	assert.Equal(t, 1, s.NbAttributes())

	s.Clear()
	assert.Equal(t, 0, s.NbAttributes())
}

func TestStoreClone(t *testing.T) {
	s := NewStore()
	s.Resize(2)
	v, err := FindOrCreateVariable(s, "v", 1, DefaultProperties())
	require.NoError(t, err)

	clone := s.Clone()
	v.SetValue(0, 9)

	cv, err := FindVariable[int](clone, "v")
	require.NoError(t, err)
	assert.Equal(t, 1, cv.Value(0))
	assert.Equal(t, 2, clone.NbElements())
}

func TestComputedAttribute(t *testing.T) {
	s := NewStore()
	s.Resize(4)

	sq, err := FindOrCreateComputed(s, "square", 0, func(i core.Index) int { return int(i) * int(i) }, DefaultProperties())
	require.NoError(t, err)
	assert.False(t, sq.Properties().Persistent)
	assert.Equal(t, 9, sq.Value(3))

	require.NoError(t, s.DeleteElements([]bool{true, false, false, false}))
	assert.Equal(t, 4, sq.Value(2))

	sq.ComputeValue(Interpolation{Indices: []core.Index{0}, Lambdas: []float64{1}}, 1)
	assert.Equal(t, 1, sq.Value(1))

	ro, err := Find[int](s, "square")
	require.NoError(t, err)
	assert.Equal(t, KindComputed, ro.Kind())
	assert.InDelta(t, float32(4), ro.GenericValue(2), 1e-6)
}
