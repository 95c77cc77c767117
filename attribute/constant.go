package attribute

import (
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/mapping"
)

// Constant holds one value shared by every element.
// Structural edits and interpolation leave it unchanged.
type Constant[T comparable] struct {
	attributeBase
	value T
}

// NewConstant creates a detached constant attribute. Attach it to a store with
// Store.Attach, or use FindOrCreateConstant.
func NewConstant[T comparable](name string, value T, props Properties) *Constant[T] {
	return &Constant[T]{
		attributeBase: attributeBase{name: name, props: props},
		value:         value,
	}
}

func (c *Constant[T]) Kind() Kind { return KindConstant }

func (c *Constant[T]) Type() string { return TypeTag[T]() }

// Value returns the constant for any element.
func (c *Constant[T]) Value(core.Index) T { return c.value }

// Get returns the constant.
func (c *Constant[T]) Get() T { return c.value }

// DefaultValue returns the constant.
func (c *Constant[T]) DefaultValue() T { return c.value }

// SetValue replaces the constant.
func (c *Constant[T]) SetValue(v T) { c.value = v }

// Modify applies fn to the constant in place.
func (c *Constant[T]) Modify(fn func(*T)) { fn(&c.value) }

// ComputeValue is a no-op: a constant is invariant under interpolation.
func (c *Constant[T]) ComputeValue(Interpolation, core.Index) {}

// Clone returns an independent copy.
func (c *Constant[T]) Clone() *Constant[T] {
	return NewConstant(c.name, c.value, c.props)
}

// Extract returns a copy; the renumbering does not affect a constant.
func (c *Constant[T]) Extract([]core.Index, int) *Constant[T] {
	return c.Clone()
}

// Import takes the value of element 0 of from. Empty variable sources are ignored.
func (c *Constant[T]) Import(from ReadOnly[T]) {
	if v, ok := from.(*Variable[T]); ok && v.Size() == 0 {
		return
	}
	c.value = from.Value(0)
}

func (c *Constant[T]) IsGenericable() bool { return isGenericable[T]() }

func (c *Constant[T]) NbItems() int { return nbItems[T]() }

func (c *Constant[T]) GenericValue(core.Index) float32 { return genericItem(c.value, 0) }

func (c *Constant[T]) GenericItemValue(_ core.Index, item int) float32 {
	return genericItem(c.value, item)
}

func (c *Constant[T]) resize(int)                           {}
func (c *Constant[T]) reserve(int)                          {}
func (c *Constant[T]) deleteElements([]bool)                {}
func (c *Constant[T]) permuteElements([]core.Index)         {}
func (c *Constant[T]) assign(core.Index, core.Index)        {}
func (c *Constant[T]) interpolate(Interpolation, core.Index) {}

func (c *Constant[T]) cloneAttribute() Attribute { return c.Clone() }

func (c *Constant[T]) copyFrom(from Attribute, _ int) error {
	typed, ok := from.(*Constant[T])
	if !ok {
		return mismatch(c.name, from, KindConstant, c.Type())
	}
	c.value = typed.value
	return nil
}

func (c *Constant[T]) extractAttribute([]core.Index, int) (Attribute, error) {
	return c.Clone(), nil
}

func (c *Constant[T]) extractMapping(*mapping.Generic[core.Index, core.Index], int) (Attribute, error) {
	return c.Clone(), nil
}

func (c *Constant[T]) importAttribute(_ []core.Index, from Attribute) error {
	typed, err := As[T](from)
	if err != nil {
		return err
	}
	c.Import(typed)
	return nil
}

func (c *Constant[T]) importMapping(_ *mapping.Generic[core.Index, core.Index], from Attribute) error {
	return c.importAttribute(nil, from)
}
