package mapping

import (
	"iter"

	"github.com/hupe1980/meshkit/core"
)

// Bijective is a one-to-one association between inputs and outputs.
//
// Map evicts earlier partners, so In2Out and Out2In are always mutually inverse.
// Bijective is not safe for concurrent mutation.
type Bijective[In, Out comparable] struct {
	in2out map[In]Out
	out2in map[Out]In
}

// NewBijective creates an empty bijective mapping.
func NewBijective[In, Out comparable]() *Bijective[In, Out] {
	return &Bijective[In, Out]{
		in2out: make(map[In]Out),
		out2in: make(map[Out]In),
	}
}

// Map records in <-> out. Any existing pairing of in or of out is erased first.
func (m *Bijective[In, Out]) Map(in In, out Out) {
	m.EraseIn(in)
	m.EraseOut(out)
	m.in2out[in] = out
	m.out2in[out] = in
}

// EraseIn removes the pair holding in. It is a no-op if in is not mapped.
func (m *Bijective[In, Out]) EraseIn(in In) {
	out, ok := m.in2out[in]
	if !ok {
		return
	}
	delete(m.in2out, in)
	delete(m.out2in, out)
}

// EraseOut removes the pair holding out. It is a no-op if out is not mapped.
func (m *Bijective[In, Out]) EraseOut(out Out) {
	in, ok := m.out2in[out]
	if !ok {
		return
	}
	delete(m.out2in, out)
	delete(m.in2out, in)
}

// HasMappingInput reports whether in is mapped.
func (m *Bijective[In, Out]) HasMappingInput(in In) bool {
	_, ok := m.in2out[in]
	return ok
}

// HasMappingOutput reports whether out is mapped.
func (m *Bijective[In, Out]) HasMappingOutput(out Out) bool {
	_, ok := m.out2in[out]
	return ok
}

// In2Out returns the output paired with in, or ErrNotFound.
func (m *Bijective[In, Out]) In2Out(in In) (Out, error) {
	out, ok := m.in2out[in]
	if !ok {
		return out, core.NotFoundf("mapping input %v not found", in)
	}
	return out, nil
}

// Out2In returns the input paired with out, or ErrNotFound.
func (m *Bijective[In, Out]) Out2In(out Out) (In, error) {
	in, ok := m.out2in[out]
	if !ok {
		return in, core.NotFoundf("mapping output %v not found", out)
	}
	return in, nil
}

// Size returns the number of pairs.
func (m *Bijective[In, Out]) Size() int {
	return len(m.in2out)
}

// All iterates over every pair. Iteration order is unspecified.
func (m *Bijective[In, Out]) All() iter.Seq2[In, Out] {
	return func(yield func(In, Out) bool) {
		for in, out := range m.in2out {
			if !yield(in, out) {
				return
			}
		}
	}
}

// Clear removes every pair.
func (m *Bijective[In, Out]) Clear() {
	clear(m.in2out)
	clear(m.out2in)
}

// Reserve grows the underlying maps for n pairs. Existing pairs are kept.
func (m *Bijective[In, Out]) Reserve(n int) {
	if n <= len(m.in2out) {
		return
	}
	in2out := make(map[In]Out, n)
	out2in := make(map[Out]In, n)
	for in, out := range m.in2out {
		in2out[in] = out
		out2in[out] = in
	}
	m.in2out = in2out
	m.out2in = out2in
}
