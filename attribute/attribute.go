package attribute

import (
	"iter"
	"reflect"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/mapping"
)

// Attribute is the type-erased view of an attribute held by a Store.
//
// The set of implementations is closed: Constant, Variable, Sparse and Computed.
// Use Find or As to recover the typed ReadOnly view.
type Attribute interface {
	// Name returns the name the attribute is registered under.
	Name() string
	Kind() Kind
	// Type returns the value type tag, see TypeTag.
	Type() string
	Properties() Properties
	SetProperties(p Properties)

	// IsGenericable reports whether values convert to float32 items.
	IsGenericable() bool
	// NbItems returns the number of float32 items per value.
	NbItems() int
	// GenericValue returns the first item of value i as float32.
	GenericValue(i core.Index) float32
	// GenericItemValue returns item of value i as float32.
	GenericItemValue(i core.Index, item int) float32

	base() *attributeBase
	resize(n int)
	reserve(n int)
	deleteElements(mask []bool)
	permuteElements(perm []core.Index)
	assign(from, to core.Index)
	interpolate(interp Interpolation, to core.Index)
	cloneAttribute() Attribute
	copyFrom(from Attribute, n int) error
	extractAttribute(old2new []core.Index, n int) (Attribute, error)
	extractMapping(m *mapping.Generic[core.Index, core.Index], n int) (Attribute, error)
	importAttribute(old2new []core.Index, from Attribute) error
	importMapping(m *mapping.Generic[core.Index, core.Index], from Attribute) error
}

// ReadOnly is the typed read view shared by every attribute kind.
type ReadOnly[T comparable] interface {
	Attribute
	// Value returns the value of element i. i must be in range.
	Value(i core.Index) T
	DefaultValue() T
}

// As recovers the typed view of a.
func As[T comparable](a Attribute) (ReadOnly[T], error) {
	typed, ok := a.(ReadOnly[T])
	if !ok {
		return nil, mismatch(a.Name(), a, a.Kind(), TypeTag[T]())
	}
	return typed, nil
}

// TypeTag returns the stable tag identifying values of type T. Named types
// are tagged with their package path and name; other types with their Go syntax.
func TypeTag[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

type attributeBase struct {
	name  string
	props Properties
}

func (b *attributeBase) Name() string { return b.name }

func (b *attributeBase) Properties() Properties { return b.props }

func (b *attributeBase) SetProperties(p Properties) { b.props = p }

func (b *attributeBase) base() *attributeBase { return b }

// Values iterates over the first n values of a.
func Values[T comparable](a ReadOnly[T], n int) iter.Seq2[core.Index, T] {
	return func(yield func(core.Index, T) bool) {
		for i := range n {
			if !yield(core.Index(i), a.Value(core.Index(i))) {
				return
			}
		}
	}
}

func mismatch(name string, existing Attribute, kind Kind, tag string) error {
	return core.TypeMismatchf("attribute %q is %s %s, requested %s %s",
		name, existing.Kind(), existing.Type(), kind, tag)
}

func sameStorage(a, b Attribute) bool {
	return a.Kind() == b.Kind() && a.Type() == b.Type()
}

func checkExtractTarget(name string, nw core.Index, n int) error {
	if int(nw) >= n {
		return core.InvalidArgumentf("attribute %q: mapping target %d beyond %d elements", name, uint32(nw), n)
	}
	return nil
}
