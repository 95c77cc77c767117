package attribute

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/mapping"
)

// Sparse stores only the elements whose value was set; every other element
// reads the default value. Setting an element back to the default drops it.
type Sparse[T comparable] struct {
	attributeBase
	values map[core.Index]T
	def    T
}

// NewSparse creates a detached sparse attribute.
func NewSparse[T comparable](name string, def T, props Properties) *Sparse[T] {
	return &Sparse[T]{
		attributeBase: attributeBase{name: name, props: props},
		values:        make(map[core.Index]T),
		def:           def,
	}
}

func (s *Sparse[T]) Kind() Kind { return KindSparse }

func (s *Sparse[T]) Type() string { return TypeTag[T]() }

// Value returns the value of element i, or the default value.
func (s *Sparse[T]) Value(i core.Index) T {
	if v, ok := s.values[i]; ok {
		return v
	}
	return s.def
}

// DefaultValue returns the value of unset elements.
func (s *Sparse[T]) DefaultValue() T { return s.def }

// SetValue sets the value of element i.
func (s *Sparse[T]) SetValue(i core.Index, v T) {
	if v == s.def {
		delete(s.values, i)
		return
	}
	s.values[i] = v
}

// Modify applies fn to the value of element i, starting from the default if unset.
func (s *Sparse[T]) Modify(i core.Index, fn func(*T)) {
	v := s.Value(i)
	fn(&v)
	s.SetValue(i, v)
}

// NbValues returns the number of explicitly stored values.
func (s *Sparse[T]) NbValues() int { return len(s.values) }

// Entries iterates over the stored values in ascending element order.
func (s *Sparse[T]) Entries() iter.Seq2[core.Index, T] {
	return func(yield func(core.Index, T) bool) {
		for _, i := range slices.SortedFunc(maps.Keys(s.values), cmp.Compare[core.Index]) {
			if !yield(i, s.values[i]) {
				return
			}
		}
	}
}

// ComputeValue sets element to the value interpolated by interp.
func (s *Sparse[T]) ComputeValue(interp Interpolation, to core.Index) {
	s.SetValue(to, Interpolate[T](interp, s))
}

// Clone returns an independent copy.
func (s *Sparse[T]) Clone() *Sparse[T] {
	out := NewSparse(s.name, s.def, s.props)
	maps.Copy(out.values, s.values)
	return out
}

// Extract returns a sparse attribute where element old2new[i] holds value i.
func (s *Sparse[T]) Extract(old2new []core.Index, n int) (*Sparse[T], error) {
	out := NewSparse(s.name, s.def, s.props)
	for i, v := range s.values {
		if int(i) >= len(old2new) || old2new[i] == core.NoIndex {
			continue
		}
		if err := checkExtractTarget(s.name, old2new[i], n); err != nil {
			return nil, err
		}
		out.values[old2new[i]] = v
	}
	return out, nil
}

// ExtractMapping is Extract driven by a many-to-many mapping.
func (s *Sparse[T]) ExtractMapping(m *mapping.Generic[core.Index, core.Index], n int) (*Sparse[T], error) {
	out := NewSparse(s.name, s.def, s.props)
	for in, outs := range m.All() {
		v, ok := s.values[in]
		if !ok {
			continue
		}
		for _, nw := range outs {
			if err := checkExtractTarget(s.name, nw, n); err != nil {
				return nil, err
			}
			out.values[nw] = v
		}
	}
	return out, nil
}

// Import copies the value of element i of from to element old2new[i].
// Default values clear the target element.
func (s *Sparse[T]) Import(old2new []core.Index, from ReadOnly[T]) {
	for i, nw := range old2new {
		if nw == core.NoIndex {
			continue
		}
		s.SetValue(nw, from.Value(core.Index(i)))
	}
}

// ImportMapping is Import driven by a many-to-many mapping.
func (s *Sparse[T]) ImportMapping(m *mapping.Generic[core.Index, core.Index], from ReadOnly[T]) {
	for in, outs := range m.All() {
		v := from.Value(in)
		for _, nw := range outs {
			s.SetValue(nw, v)
		}
	}
}

func (s *Sparse[T]) IsGenericable() bool { return isGenericable[T]() }

func (s *Sparse[T]) NbItems() int { return nbItems[T]() }

func (s *Sparse[T]) GenericValue(i core.Index) float32 { return genericItem(s.Value(i), 0) }

func (s *Sparse[T]) GenericItemValue(i core.Index, item int) float32 {
	return genericItem(s.Value(i), item)
}

func (s *Sparse[T]) resize(n int) {
	for i := range s.values {
		if int(i) >= n {
			delete(s.values, i)
		}
	}
}

func (s *Sparse[T]) reserve(int) {}

func (s *Sparse[T]) deleteElements(mask []bool) {
	old2new := mapping.OldToNew(mask)
	values := make(map[core.Index]T, len(s.values))
	for i, v := range s.values {
		if int(i) >= len(old2new) || old2new[i] == core.NoIndex {
			continue
		}
		values[old2new[i]] = v
	}
	s.values = values
}

func (s *Sparse[T]) permuteElements(perm []core.Index) {
	values := make(map[core.Index]T, len(s.values))
	for i, v := range s.values {
		values[perm[i]] = v
	}
	s.values = values
}

func (s *Sparse[T]) assign(from, to core.Index) {
	s.SetValue(to, s.Value(from))
}

func (s *Sparse[T]) interpolate(interp Interpolation, to core.Index) {
	s.ComputeValue(interp, to)
}

func (s *Sparse[T]) cloneAttribute() Attribute { return s.Clone() }

func (s *Sparse[T]) copyFrom(from Attribute, n int) error {
	typed, ok := from.(*Sparse[T])
	if !ok {
		return mismatch(s.name, from, KindSparse, s.Type())
	}
	s.def = typed.def
	s.values = make(map[core.Index]T, len(typed.values))
	for i, v := range typed.values {
		if int(i) < n {
			s.values[i] = v
		}
	}
	return nil
}

func (s *Sparse[T]) extractAttribute(old2new []core.Index, n int) (Attribute, error) {
	out, err := s.Extract(old2new, n)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Sparse[T]) extractMapping(m *mapping.Generic[core.Index, core.Index], n int) (Attribute, error) {
	out, err := s.ExtractMapping(m, n)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Sparse[T]) importAttribute(old2new []core.Index, from Attribute) error {
	typed, err := As[T](from)
	if err != nil {
		return err
	}
	s.Import(old2new, typed)
	return nil
}

func (s *Sparse[T]) importMapping(m *mapping.Generic[core.Index, core.Index], from Attribute) error {
	typed, err := As[T](from)
	if err != nil {
		return err
	}
	s.ImportMapping(m, typed)
	return nil
}
