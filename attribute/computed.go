package attribute

import (
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/mapping"
)

// Rule derives the value of an element.
type Rule[T any] func(i core.Index) T

// Computed is a read-only attribute whose values are derived by a rule.
// It cannot be set per element; structural edits and interpolation do not
// apply because the rule is re-evaluated on every read. Computed attributes
// are never persisted.
type Computed[T comparable] struct {
	attributeBase
	rule Rule[T]
	def  T
}

// NewComputed creates a detached computed attribute.
func NewComputed[T comparable](name string, def T, rule Rule[T], props Properties) *Computed[T] {
	props.Persistent = false
	return &Computed[T]{
		attributeBase: attributeBase{name: name, props: props},
		rule:          rule,
		def:           def,
	}
}

func (c *Computed[T]) Kind() Kind { return KindComputed }

func (c *Computed[T]) Type() string { return TypeTag[T]() }

// Value evaluates the rule for element i.
func (c *Computed[T]) Value(i core.Index) T { return c.rule(i) }

// DefaultValue returns the value reported for non-derivable elements.
func (c *Computed[T]) DefaultValue() T { return c.def }

// ComputeValue is a no-op: computed values are re-derived, not interpolated.
func (c *Computed[T]) ComputeValue(Interpolation, core.Index) {}

// SetProperties updates the properties. Computed attributes stay non-persistent.
func (c *Computed[T]) SetProperties(p Properties) {
	p.Persistent = false
	c.props = p
}

// Clone returns a computed attribute sharing the rule.
func (c *Computed[T]) Clone() *Computed[T] {
	return NewComputed(c.name, c.def, c.rule, c.props)
}

func (c *Computed[T]) IsGenericable() bool { return isGenericable[T]() }

func (c *Computed[T]) NbItems() int { return nbItems[T]() }

func (c *Computed[T]) GenericValue(i core.Index) float32 { return genericItem(c.rule(i), 0) }

func (c *Computed[T]) GenericItemValue(i core.Index, item int) float32 {
	return genericItem(c.rule(i), item)
}

func (c *Computed[T]) resize(int)                           {}
func (c *Computed[T]) reserve(int)                          {}
func (c *Computed[T]) deleteElements([]bool)                {}
func (c *Computed[T]) permuteElements([]core.Index)         {}
func (c *Computed[T]) assign(core.Index, core.Index)        {}
func (c *Computed[T]) interpolate(Interpolation, core.Index) {}

func (c *Computed[T]) cloneAttribute() Attribute { return c.Clone() }

func (c *Computed[T]) copyFrom(from Attribute, _ int) error {
	typed, ok := from.(*Computed[T])
	if !ok {
		return mismatch(c.name, from, KindComputed, c.Type())
	}
	c.rule = typed.rule
	c.def = typed.def
	return nil
}

func (c *Computed[T]) extractAttribute([]core.Index, int) (Attribute, error) {
	return c.Clone(), nil
}

func (c *Computed[T]) extractMapping(*mapping.Generic[core.Index, core.Index], int) (Attribute, error) {
	return c.Clone(), nil
}

func (c *Computed[T]) importAttribute([]core.Index, Attribute) error { return nil }

func (c *Computed[T]) importMapping(*mapping.Generic[core.Index, core.Index], Attribute) error {
	return nil
}
