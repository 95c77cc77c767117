package attribute

import (
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/mapping"
)

// UndefinedType is reported by Store.Type for unknown attribute names.
const UndefinedType = "undefined"

// Store owns the named attributes of one element collection.
type Store struct {
	attributes map[string]Attribute
	nbElements int
	logger     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates an empty store with no elements.
func NewStore(opts ...Option) *Store {
	s := &Store{attributes: make(map[string]Attribute)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NbElements returns the number of elements of the collection.
func (s *Store) NbElements() int {
	return s.nbElements
}

// NbAttributes returns the number of attributes.
func (s *Store) NbAttributes() int {
	return len(s.attributes)
}

// Exists reports whether an attribute named name exists.
func (s *Store) Exists(name string) bool {
	_, ok := s.attributes[name]
	return ok
}

// Attribute returns the attribute named name.
func (s *Store) Attribute(name string) (Attribute, error) {
	a, ok := s.attributes[name]
	if !ok {
		return nil, core.NotFoundf("attribute %q not found", name)
	}
	return a, nil
}

// Type returns the type tag of attribute name, or UndefinedType.
func (s *Store) Type(name string) string {
	a, ok := s.attributes[name]
	if !ok {
		return UndefinedType
	}
	return a.Type()
}

// Names returns the attribute names in sorted order.
func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.attributes))
}

// All iterates over the attributes in name order.
func (s *Store) All() iter.Seq2[string, Attribute] {
	return func(yield func(string, Attribute) bool) {
		for _, name := range s.Names() {
			if !yield(name, s.attributes[name]) {
				return
			}
		}
	}
}

// Attach registers a detached attribute under name and resizes it to the
// store. It fails with ErrTypeMismatch if the name is taken.
func (s *Store) Attach(name string, a Attribute) error {
	if name == "" {
		return core.InvalidArgumentf("attribute name must not be empty")
	}
	if existing, ok := s.attributes[name]; ok {
		return mismatch(name, existing, a.Kind(), a.Type())
	}
	a.base().name = name
	a.resize(s.nbElements)
	s.attributes[name] = a
	if s.logger != nil {
		s.logger.Debug("attribute attached", "name", name, "kind", a.Kind(), "type", a.Type())
	}
	return nil
}

// DeleteAttribute removes the attribute named name.
func (s *Store) DeleteAttribute(name string) error {
	if _, ok := s.attributes[name]; !ok {
		return core.NotFoundf("attribute %q not found", name)
	}
	delete(s.attributes, name)
	if s.logger != nil {
		s.logger.Debug("attribute deleted", "name", name)
	}
	return nil
}

// RenameAttribute moves attribute oldName to newName.
func (s *Store) RenameAttribute(oldName, newName string) error {
	a, ok := s.attributes[oldName]
	if !ok {
		return core.NotFoundf("attribute %q not found", oldName)
	}
	if oldName == newName {
		return nil
	}
	if existing, ok := s.attributes[newName]; ok {
		return mismatch(newName, existing, a.Kind(), a.Type())
	}
	delete(s.attributes, oldName)
	a.base().name = newName
	s.attributes[newName] = a
	return nil
}

// Resize sets the number of elements to n and resizes every attribute.
// n must not be negative.
func (s *Store) Resize(n int) {
	s.nbElements = n
	for _, a := range s.attributes {
		a.resize(n)
	}
}

// Reserve preallocates storage for n elements.
func (s *Store) Reserve(n int) {
	for _, a := range s.attributes {
		a.reserve(n)
	}
}

// DeleteElements removes every element i with mask[i] set from every attribute.
func (s *Store) DeleteElements(mask []bool) error {
	if len(mask) != s.nbElements {
		return core.InvalidArgumentf("deletion mask has %d entries for %d elements", len(mask), s.nbElements)
	}
	deleted := mapping.NbDeleted(mask)
	if deleted == 0 {
		return nil
	}
	for _, a := range s.attributes {
		a.deleteElements(mask)
	}
	s.nbElements -= deleted
	return nil
}

// PermuteElements moves element i to perm[i] in every attribute.
func (s *Store) PermuteElements(perm []core.Index) error {
	if err := mapping.ValidatePermutation(perm, s.nbElements); err != nil {
		return err
	}
	for _, a := range s.attributes {
		a.permuteElements(perm)
	}
	return nil
}

// AssignValue copies element from onto element to in every assignable attribute.
func (s *Store) AssignValue(from, to core.Index) error {
	if err := s.checkIndex(from); err != nil {
		return err
	}
	if err := s.checkIndex(to); err != nil {
		return err
	}
	for _, a := range s.attributes {
		if a.Properties().Assignable {
			a.assign(from, to)
		}
	}
	return nil
}

// InterpolateValue sets element to in every interpolable attribute to the
// interpolation of the referenced elements.
func (s *Store) InterpolateValue(interp Interpolation, to core.Index) error {
	if len(interp.Indices) != len(interp.Lambdas) {
		return core.InvalidArgumentf("interpolation has %d indices and %d lambdas", len(interp.Indices), len(interp.Lambdas))
	}
	for _, i := range interp.Indices {
		if err := s.checkIndex(i); err != nil {
			return err
		}
	}
	if err := s.checkIndex(to); err != nil {
		return err
	}
	for _, a := range s.attributes {
		if a.Properties().Interpolable {
			a.interpolate(interp, to)
		}
	}
	return nil
}

// Copy makes s hold the elements and attributes of other. Attributes existing
// in both stores with the same kind and type are copied in place; attributes
// only in other are cloned. A same-name attribute with another kind or type is
// left untouched and logged.
func (s *Store) Copy(other *Store) {
	s.nbElements = other.nbElements
	for name, from := range other.All() {
		existing, ok := s.attributes[name]
		if !ok {
			s.attributes[name] = from.cloneAttribute()
			continue
		}
		if err := existing.copyFrom(from, other.nbElements); err != nil {
			if s.logger != nil {
				s.logger.Error("attribute copy skipped", "name", name, "error", err)
			}
		}
	}
	for _, a := range s.attributes {
		a.resize(s.nbElements)
	}
}

// Clone returns an independent copy of s.
func (s *Store) Clone() *Store {
	out := NewStore(WithLogger(s.logger))
	out.Copy(s)
	return out
}

// Extract returns a new store of n elements where element old2new[i] holds
// the values of element i. len(old2new) must equal NbElements.
func (s *Store) Extract(old2new []core.Index, n int) (*Store, error) {
	if len(old2new) != s.nbElements {
		return nil, core.InvalidArgumentf("mapping has %d entries for %d elements", len(old2new), s.nbElements)
	}
	out := NewStore(WithLogger(s.logger))
	out.nbElements = n
	for name, a := range s.All() {
		extracted, err := a.extractAttribute(old2new, n)
		if err != nil {
			return nil, err
		}
		out.attributes[name] = extracted
	}
	return out, nil
}

// Import copies every transferable attribute of from into s: value i of from
// lands on element old2new[i]. Missing attributes are created, keeping the
// default value on elements nothing maps to.
func (s *Store) Import(old2new []core.Index, from *Store) error {
	if len(old2new) != from.nbElements {
		return core.InvalidArgumentf("mapping has %d entries for %d source elements", len(old2new), from.nbElements)
	}
	for name, a := range from.All() {
		if !a.Properties().Transferable {
			continue
		}
		if existing, ok := s.attributes[name]; ok {
			if !sameStorage(existing, a) {
				return mismatch(name, existing, a.Kind(), a.Type())
			}
			if err := existing.importAttribute(old2new, a); err != nil {
				return err
			}
			continue
		}
		extracted, err := a.extractAttribute(old2new, s.nbElements)
		if err != nil {
			return err
		}
		s.attributes[name] = extracted
	}
	return nil
}

// ImportMapping is Import driven by a many-to-many mapping from source to
// target elements.
func (s *Store) ImportMapping(m *mapping.Generic[core.Index, core.Index], from *Store) error {
	return s.ImportMappingIf(m, from, nil)
}

// ImportMappingIf is ImportMapping restricted to the attributes of from for
// which keep returns true. A nil keep imports every transferable attribute.
func (s *Store) ImportMappingIf(m *mapping.Generic[core.Index, core.Index], from *Store, keep func(name string, a Attribute) bool) error {
	for name, a := range from.All() {
		if !a.Properties().Transferable {
			continue
		}
		if keep != nil && !keep(name, a) {
			continue
		}
		if existing, ok := s.attributes[name]; ok {
			if !sameStorage(existing, a) {
				return mismatch(name, existing, a.Kind(), a.Type())
			}
			if err := existing.importMapping(m, a); err != nil {
				return err
			}
			continue
		}
		extracted, err := a.extractMapping(m, s.nbElements)
		if err != nil {
			return err
		}
		s.attributes[name] = extracted
	}
	return nil
}

// Clear removes every attribute and element.
func (s *Store) Clear() {
	clear(s.attributes)
	s.nbElements = 0
}

// ClearAttributes removes every element but keeps the attributes.
func (s *Store) ClearAttributes() {
	s.Resize(0)
}

func (s *Store) checkIndex(i core.Index) error {
	if int(i) >= s.nbElements {
		return core.IndexOutOfRange("element", i, s.nbElements)
	}
	return nil
}
