package attribute

import (
	"iter"
	"slices"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/mapping"
)

// Variable holds one value per element. New slots are filled with the default value.
type Variable[T comparable] struct {
	attributeBase
	values []T
	def    T
}

// NewVariable creates a detached variable attribute of size n.
func NewVariable[T comparable](name string, def T, n int, props Properties) *Variable[T] {
	values := make([]T, n)
	for i := range values {
		values[i] = def
	}
	return &Variable[T]{
		attributeBase: attributeBase{name: name, props: props},
		values:        values,
		def:           def,
	}
}

// NewVariableFromValues creates a detached variable attribute owning values.
func NewVariableFromValues[T comparable](name string, def T, values []T, props Properties) *Variable[T] {
	return &Variable[T]{
		attributeBase: attributeBase{name: name, props: props},
		values:        values,
		def:           def,
	}
}

func (v *Variable[T]) Kind() Kind { return KindVariable }

func (v *Variable[T]) Type() string { return TypeTag[T]() }

// Value returns the value of element i.
func (v *Variable[T]) Value(i core.Index) T { return v.values[i] }

// DefaultValue returns the value new elements start with.
func (v *Variable[T]) DefaultValue() T { return v.def }

// SetValue sets the value of element i.
func (v *Variable[T]) SetValue(i core.Index, val T) { v.values[i] = val }

// Modify applies fn to the value of element i in place.
func (v *Variable[T]) Modify(i core.Index, fn func(*T)) { fn(&v.values[i]) }

// Size returns the number of values.
func (v *Variable[T]) Size() int { return len(v.values) }

// Values iterates over every element with its value.
func (v *Variable[T]) Values() iter.Seq2[core.Index, T] {
	return func(yield func(core.Index, T) bool) {
		for i, val := range v.values {
			if !yield(core.Index(i), val) {
				return
			}
		}
	}
}

// ComputeValue sets element to the value interpolated by interp.
func (v *Variable[T]) ComputeValue(interp Interpolation, to core.Index) {
	v.values[to] = Interpolate[T](interp, v)
}

// Clone returns an independent copy.
func (v *Variable[T]) Clone() *Variable[T] {
	return NewVariableFromValues(v.name, v.def, slices.Clone(v.values), v.props)
}

// Extract returns a new attribute of n elements where element old2new[i]
// holds value i. Targets not reached keep the default value.
func (v *Variable[T]) Extract(old2new []core.Index, n int) (*Variable[T], error) {
	if len(old2new) != len(v.values) {
		return nil, core.InvalidArgumentf("attribute %q: mapping has %d entries for %d values", v.name, len(old2new), len(v.values))
	}
	out := NewVariable(v.name, v.def, n, v.props)
	for i, nw := range old2new {
		if nw == core.NoIndex {
			continue
		}
		if err := checkExtractTarget(v.name, nw, n); err != nil {
			return nil, err
		}
		out.values[nw] = v.values[i]
	}
	return out, nil
}

// ExtractMapping is Extract driven by a many-to-many mapping from old to new indices.
func (v *Variable[T]) ExtractMapping(m *mapping.Generic[core.Index, core.Index], n int) (*Variable[T], error) {
	out := NewVariable(v.name, v.def, n, v.props)
	for in, outs := range m.All() {
		if int(in) >= len(v.values) {
			return nil, core.IndexOutOfRange("mapping input", in, len(v.values))
		}
		for _, nw := range outs {
			if err := checkExtractTarget(v.name, nw, n); err != nil {
				return nil, err
			}
			out.values[nw] = v.values[in]
		}
	}
	return out, nil
}

// Import copies value i of from to element old2new[i] for every mapped i.
func (v *Variable[T]) Import(old2new []core.Index, from ReadOnly[T]) error {
	for i, nw := range old2new {
		if nw == core.NoIndex {
			continue
		}
		if int(nw) >= len(v.values) {
			return core.IndexOutOfRange("import target", nw, len(v.values))
		}
		v.values[nw] = from.Value(core.Index(i))
	}
	return nil
}

// ImportMapping is Import driven by a many-to-many mapping.
func (v *Variable[T]) ImportMapping(m *mapping.Generic[core.Index, core.Index], from ReadOnly[T]) error {
	for in, outs := range m.All() {
		for _, nw := range outs {
			if int(nw) >= len(v.values) {
				return core.IndexOutOfRange("import target", nw, len(v.values))
			}
			v.values[nw] = from.Value(in)
		}
	}
	return nil
}

func (v *Variable[T]) IsGenericable() bool { return isGenericable[T]() }

func (v *Variable[T]) NbItems() int { return nbItems[T]() }

func (v *Variable[T]) GenericValue(i core.Index) float32 { return genericItem(v.values[i], 0) }

func (v *Variable[T]) GenericItemValue(i core.Index, item int) float32 {
	return genericItem(v.values[i], item)
}

func (v *Variable[T]) resize(n int) {
	if n <= len(v.values) {
		clear(v.values[n:])
		v.values = v.values[:n]
		return
	}
	v.values = slices.Grow(v.values, n-len(v.values))
	for len(v.values) < n {
		v.values = append(v.values, v.def)
	}
}

func (v *Variable[T]) reserve(n int) {
	if n > cap(v.values) {
		v.values = slices.Grow(v.values, n-len(v.values))
	}
}

func (v *Variable[T]) deleteElements(mask []bool) {
	v.values = mapping.DeleteElements(mask, v.values)
}

func (v *Variable[T]) permuteElements(perm []core.Index) {
	mapping.Permute(v.values, perm)
}

func (v *Variable[T]) assign(from, to core.Index) {
	v.values[to] = v.values[from]
}

func (v *Variable[T]) interpolate(interp Interpolation, to core.Index) {
	v.ComputeValue(interp, to)
}

func (v *Variable[T]) cloneAttribute() Attribute { return v.Clone() }

func (v *Variable[T]) copyFrom(from Attribute, n int) error {
	typed, ok := from.(*Variable[T])
	if !ok {
		return mismatch(v.name, from, KindVariable, v.Type())
	}
	v.def = typed.def
	v.values = slices.Clone(typed.values[:min(n, len(typed.values))])
	v.resize(n)
	return nil
}

func (v *Variable[T]) extractAttribute(old2new []core.Index, n int) (Attribute, error) {
	out, err := v.Extract(old2new, n)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (v *Variable[T]) extractMapping(m *mapping.Generic[core.Index, core.Index], n int) (Attribute, error) {
	out, err := v.ExtractMapping(m, n)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (v *Variable[T]) importAttribute(old2new []core.Index, from Attribute) error {
	typed, err := As[T](from)
	if err != nil {
		return err
	}
	return v.Import(old2new, typed)
}

func (v *Variable[T]) importMapping(m *mapping.Generic[core.Index, core.Index], from Attribute) error {
	typed, err := As[T](from)
	if err != nil {
		return err
	}
	return v.ImportMapping(m, typed)
}
