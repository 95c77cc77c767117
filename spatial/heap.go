package spatial

import "github.com/hupe1980/meshkit/core"

// heapArity is the branching factor of candidateHeap.
const heapArity = 4

// candidate is a point index with its squared distance to the query.
type candidate struct {
	dist2 float64
	index core.Index
}

// worse reports whether a ranks after b. Ties on distance rank the larger
// index last, so the heap evicts larger indices first.
func worse(a, b candidate) bool {
	if a.dist2 != b.dist2 {
		return a.dist2 > b.dist2
	}
	return a.index > b.index
}

// candidateHeap is a bounded 4-ary max-heap keeping the k best candidates.
// The top element is the current worst one, i.e. the eviction candidate.
type candidateHeap struct {
	items []candidate
	k     int
}

func newCandidateHeap(k int) *candidateHeap {
	return &candidateHeap{items: make([]candidate, 0, k), k: k}
}

func (h *candidateHeap) Len() int { return len(h.items) }

func (h *candidateHeap) full() bool { return len(h.items) >= h.k }

// worst returns the top element. Panics if the heap is empty.
func (h *candidateHeap) worst() candidate { return h.items[0] }

// offer inserts c if the heap is not full or c ranks before the current worst.
func (h *candidateHeap) offer(c candidate) {
	if !h.full() {
		h.items = append(h.items, c)
		h.up(len(h.items) - 1)
		return
	}
	if worse(h.items[0], c) {
		h.items[0] = c
		h.down(0, len(h.items))
	}
}

func (h *candidateHeap) pop() candidate {
	n := len(h.items) - 1
	h.items[0], h.items[n] = h.items[n], h.items[0]
	h.down(0, n)
	x := h.items[n]
	h.items = h.items[:n]
	return x
}

// sorted drains the heap and returns its indices best first.
func (h *candidateHeap) sorted() []core.Index {
	out := make([]core.Index, len(h.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = h.pop().index
	}
	return out
}

func (h *candidateHeap) up(j int) {
	item := h.items[j]
	for j > 0 {
		i := (j - 1) / heapArity
		if !worse(item, h.items[i]) {
			break
		}
		h.items[j] = h.items[i]
		j = i
	}
	h.items[j] = item
}

func (h *candidateHeap) down(i, n int) {
	item := h.items[i]
	for {
		first := heapArity*i + 1
		if first >= n {
			break
		}
		best := first
		for c := first + 1; c < min(first+heapArity, n); c++ {
			if worse(h.items[c], h.items[best]) {
				best = c
			}
		}
		if !worse(h.items[best], item) {
			break
		}
		h.items[i] = h.items[best]
		i = best
	}
	h.items[i] = item
}
