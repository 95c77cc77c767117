package attribute

import "github.com/hupe1980/meshkit/core"

// FindOrCreateVariable returns the variable attribute name of s, creating it
// with default value def if absent. It fails with core.ErrTypeMismatch if name
// holds another kind or value type.
func FindOrCreateVariable[T comparable](s *Store, name string, def T, props Properties) (*Variable[T], error) {
	return findOrCreate(s, name, KindVariable, func() *Variable[T] {
		return NewVariable(name, def, s.nbElements, props)
	})
}

// FindOrCreateConstant returns the constant attribute name of s, creating it
// with value v if absent.
func FindOrCreateConstant[T comparable](s *Store, name string, v T, props Properties) (*Constant[T], error) {
	return findOrCreate(s, name, KindConstant, func() *Constant[T] {
		return NewConstant(name, v, props)
	})
}

// FindOrCreateSparse returns the sparse attribute name of s, creating it with
// default value def if absent.
func FindOrCreateSparse[T comparable](s *Store, name string, def T, props Properties) (*Sparse[T], error) {
	return findOrCreate(s, name, KindSparse, func() *Sparse[T] {
		return NewSparse(name, def, props)
	})
}

// FindOrCreateComputed returns the computed attribute name of s, registering
// rule if absent. An existing attribute keeps its rule.
func FindOrCreateComputed[T comparable](s *Store, name string, def T, rule Rule[T], props Properties) (*Computed[T], error) {
	return findOrCreate(s, name, KindComputed, func() *Computed[T] {
		return NewComputed(name, def, rule, props)
	})
}

func findOrCreate[A Attribute](s *Store, name string, kind Kind, create func() A) (A, error) {
	var zero A
	if existing, ok := s.attributes[name]; ok {
		typed, ok := existing.(A)
		if !ok {
			return zero, mismatch(name, existing, kind, tagOf[A]())
		}
		return typed, nil
	}
	if name == "" {
		return zero, core.InvalidArgumentf("attribute name must not be empty")
	}
	a := create()
	if err := s.Attach(name, a); err != nil {
		return zero, err
	}
	return a, nil
}

// tagOf returns the value type tag of attribute type A.
func tagOf[A Attribute]() string {
	var zero A
	return zero.Type()
}

// Find returns the typed read view of attribute name, whatever its kind.
func Find[T comparable](s *Store, name string) (ReadOnly[T], error) {
	a, err := s.Attribute(name)
	if err != nil {
		return nil, err
	}
	return As[T](a)
}

// FindVariable returns the variable attribute name.
func FindVariable[T comparable](s *Store, name string) (*Variable[T], error) {
	return find[*Variable[T]](s, name, KindVariable)
}

// FindConstant returns the constant attribute name.
func FindConstant[T comparable](s *Store, name string) (*Constant[T], error) {
	return find[*Constant[T]](s, name, KindConstant)
}

// FindSparse returns the sparse attribute name.
func FindSparse[T comparable](s *Store, name string) (*Sparse[T], error) {
	return find[*Sparse[T]](s, name, KindSparse)
}

func find[A Attribute](s *Store, name string, kind Kind) (A, error) {
	var zero A
	a, err := s.Attribute(name)
	if err != nil {
		return zero, err
	}
	typed, ok := a.(A)
	if !ok {
		return zero, mismatch(name, a, kind, tagOf[A]())
	}
	return typed, nil
}
