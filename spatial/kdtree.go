package spatial

import (
	"cmp"
	"slices"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
)

// node is a kd-tree node over the index range [lo, hi) of kdTree.order.
// Leaves have left == -1.
type node struct {
	lo, hi      int32
	left, right int32
	axis        uint8
	split       float64
}

func (n *node) leaf() bool { return n.left < 0 }

// kdTree is a static, median-split kd-tree.
// Points in a left subtree have coordinate <= split on the node axis, points
// in a right subtree have coordinate >= split.
type kdTree struct {
	points []geom.Point
	order  []core.Index
	nodes  []node
	dim    int
}

func buildKDTree(points []geom.Point, dim, leafSize int) *kdTree {
	t := &kdTree{
		points: points,
		order:  core.Range(len(points)),
		dim:    dim,
	}
	if len(points) > 0 {
		t.nodes = make([]node, 0, 2*len(points)/max(leafSize, 1)+1)
		t.build(0, len(points), leafSize)
	}
	return t
}

func (t *kdTree) build(lo, hi, leafSize int) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{lo: int32(lo), hi: int32(hi), left: -1, right: -1})
	if hi-lo <= leafSize {
		return id
	}

	axis, spread := t.widestAxis(lo, hi)
	if spread == 0 {
		// All points coincide on the indexed coordinates.
		return id
	}

	span := t.order[lo:hi]
	slices.SortFunc(span, func(a, b core.Index) int {
		if c := cmp.Compare(t.points[a][axis], t.points[b][axis]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	mid := (lo + hi) / 2

	left := t.build(lo, mid, leafSize)
	right := t.build(mid, hi, leafSize)

	n := &t.nodes[id]
	n.axis = uint8(axis)
	n.split = t.points[t.order[mid]][axis]
	n.left = left
	n.right = right
	return id
}

func (t *kdTree) widestAxis(lo, hi int) (int, float64) {
	var (
		best   int
		spread float64
	)
	for d := range t.dim {
		low, high := t.points[t.order[lo]][d], t.points[t.order[lo]][d]
		for _, i := range t.order[lo+1 : hi] {
			low = min(low, t.points[i][d])
			high = max(high, t.points[i][d])
		}
		if s := high - low; s > spread {
			best, spread = d, s
		}
	}
	return best, spread
}
