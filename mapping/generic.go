package mapping

import (
	"iter"
	"slices"
)

// Generic is a many-to-many association between inputs and outputs.
//
// Map appends to both directions without de-duplication: mapping the same pair
// twice records it twice, and Out2In reports the input twice. Callers that need
// set semantics must check HasMappingInput/In2Out before calling Map.
//
// Generic is not safe for concurrent mutation.
type Generic[In, Out comparable] struct {
	in2out map[In][]Out
	out2in map[Out][]In

	// order holds inputs in first-insertion order; entries whose generation no
	// longer matches gen are stale and skipped.
	order   []orderEntry[In]
	gen     map[In]uint64
	nextGen uint64
}

type orderEntry[In comparable] struct {
	in  In
	gen uint64
}

// NewGeneric creates an empty generic mapping.
func NewGeneric[In, Out comparable]() *Generic[In, Out] {
	return &Generic[In, Out]{
		in2out: make(map[In][]Out),
		out2in: make(map[Out][]In),
		gen:    make(map[In]uint64),
	}
}

// Map records in -> out and out -> in.
func (m *Generic[In, Out]) Map(in In, out Out) {
	if _, ok := m.in2out[in]; !ok {
		m.nextGen++
		m.gen[in] = m.nextGen
		m.order = append(m.order, orderEntry[In]{in: in, gen: m.nextGen})
	}
	m.in2out[in] = append(m.in2out[in], out)
	m.out2in[out] = append(m.out2in[out], in)
}

// EraseIn removes in and every pair it takes part in. Outputs left without
// any input are removed as well.
func (m *Generic[In, Out]) EraseIn(in In) {
	outs, ok := m.in2out[in]
	if !ok {
		return
	}
	for _, out := range outs {
		ins := slices.DeleteFunc(m.out2in[out], func(x In) bool { return x == in })
		if len(ins) == 0 {
			delete(m.out2in, out)
		} else {
			m.out2in[out] = ins
		}
	}
	delete(m.in2out, in)
	delete(m.gen, in)
	m.maybeCompact()
}

// EraseOut removes out and every pair it takes part in. Inputs left without
// any output are removed as well.
func (m *Generic[In, Out]) EraseOut(out Out) {
	ins, ok := m.out2in[out]
	if !ok {
		return
	}
	for _, in := range ins {
		outs := slices.DeleteFunc(m.in2out[in], func(x Out) bool { return x == out })
		if len(outs) == 0 {
			if _, mapped := m.in2out[in]; mapped {
				delete(m.in2out, in)
				delete(m.gen, in)
			}
		} else {
			m.in2out[in] = outs
		}
	}
	delete(m.out2in, out)
	m.maybeCompact()
}

// HasMappingInput reports whether in has at least one output.
func (m *Generic[In, Out]) HasMappingInput(in In) bool {
	_, ok := m.in2out[in]
	return ok
}

// HasMappingOutput reports whether out has at least one input.
func (m *Generic[In, Out]) HasMappingOutput(out Out) bool {
	_, ok := m.out2in[out]
	return ok
}

// In2Out returns the outputs of in in insertion order, or nil.
// The returned slice must not be modified.
func (m *Generic[In, Out]) In2Out(in In) []Out {
	return m.in2out[in]
}

// Out2In returns the inputs of out in insertion order, or nil.
// The returned slice must not be modified.
func (m *Generic[In, Out]) Out2In(out Out) []In {
	return m.out2in[out]
}

// SizeIn returns the number of distinct mapped inputs.
func (m *Generic[In, Out]) SizeIn() int {
	return len(m.in2out)
}

// SizeOut returns the number of distinct mapped outputs.
func (m *Generic[In, Out]) SizeOut() int {
	return len(m.out2in)
}

// All iterates over inputs in first-insertion order with their outputs.
func (m *Generic[In, Out]) All() iter.Seq2[In, []Out] {
	return func(yield func(In, []Out) bool) {
		for _, e := range m.order {
			if g, ok := m.gen[e.in]; !ok || g != e.gen {
				continue
			}
			if !yield(e.in, m.in2out[e.in]) {
				return
			}
		}
	}
}

// Clear removes every pair.
func (m *Generic[In, Out]) Clear() {
	clear(m.in2out)
	clear(m.out2in)
	clear(m.gen)
	m.order = m.order[:0]
}

func (m *Generic[In, Out]) maybeCompact() {
	if len(m.order) < 64 || len(m.order) < 2*len(m.in2out) {
		return
	}
	m.order = slices.DeleteFunc(m.order, func(e orderEntry[In]) bool {
		g, ok := m.gen[e.in]
		return !ok || g != e.gen
	})
}
