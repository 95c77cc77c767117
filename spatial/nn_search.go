package spatial

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/distance"
	"github.com/hupe1980/meshkit/geom"
	"github.com/hupe1980/meshkit/metric"
)

// NNSearch is a nearest neighbor index over a fixed point set.
type NNSearch struct {
	tree        *kdTree
	parallelism int
	logger      *slog.Logger
	metrics     metric.Collector
}

// New builds an index over points. The points are copied.
func New(points []geom.Point, optFns ...Option) (*NNSearch, error) {
	opts := options{
		dimension: DefaultDimension,
		leafSize:  DefaultLeafSize,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.dimension < 2 || opts.dimension > geom.MaxDimension {
		return nil, core.InvalidArgumentf("dimension must be 2 or 3, got %d", opts.dimension)
	}
	if opts.leafSize < 1 {
		return nil, core.InvalidArgumentf("leaf size must be positive, got %d", opts.leafSize)
	}
	if len(points) > int(core.MaxIndex) {
		return nil, core.InvalidArgumentf("too many points: %d", len(points))
	}

	s := &NNSearch{
		tree:        buildKDTree(slices.Clone(points), opts.dimension, opts.leafSize),
		parallelism: opts.parallelism,
		logger:      opts.logger,
		metrics:     metric.OrNoop(opts.metrics),
	}
	if s.logger != nil {
		s.logger.Debug("spatial index built",
			slog.Int("points", len(points)),
			slog.Int("dimension", opts.dimension),
			slog.Int("nodes", len(s.tree.nodes)),
		)
	}
	return s, nil
}

// NbPoints returns the number of indexed points.
func (s *NNSearch) NbPoints() int {
	return len(s.tree.points)
}

// Dimension returns the number of indexed coordinates.
func (s *NNSearch) Dimension() int {
	return s.tree.dim
}

// Point returns the indexed point i.
func (s *NNSearch) Point(i core.Index) geom.Point {
	return s.tree.points[i]
}

func (s *NNSearch) dist2(p geom.Point, i core.Index) float64 {
	return distance.SquaredL2Dim(p, s.tree.points[i], s.tree.dim)
}

// ClosestNeighbor returns the index of the point closest to p.
// Equidistant points resolve to the lowest index.
func (s *NNSearch) ClosestNeighbor(p geom.Point) (core.Index, error) {
	if s.NbPoints() == 0 {
		return core.NoIndex, core.NotFoundf("closest neighbor: index is empty")
	}
	return s.Neighbors(p, 1)[0], nil
}

// Neighbors returns the k points closest to p, nearest first with ties broken
// by index. Fewer than k indices are returned when the index is smaller.
func (s *NNSearch) Neighbors(p geom.Point, k int) []core.Index {
	k = min(k, s.NbPoints())
	if k <= 0 {
		return nil
	}
	h := newCandidateHeap(k)
	s.knn(0, p, h)
	return h.sorted()
}

func (s *NNSearch) knn(id int32, p geom.Point, h *candidateHeap) {
	n := &s.tree.nodes[id]
	if n.leaf() {
		for _, i := range s.tree.order[n.lo:n.hi] {
			h.offer(candidate{dist2: s.dist2(p, i), index: i})
		}
		return
	}

	diff := p[n.axis] - n.split
	near, far := n.left, n.right
	if diff >= 0 {
		near, far = far, near
	}
	s.knn(near, p, h)
	// Equal distances on the far side may still win on index.
	if !h.full() || diff*diff <= h.worst().dist2 {
		s.knn(far, p, h)
	}
}

// RadiusNeighbors returns the points strictly closer than radius to p,
// sorted by distance then index.
func (s *NNSearch) RadiusNeighbors(p geom.Point, radius float64) []core.Index {
	if s.NbPoints() == 0 || !(radius > 0) {
		return nil
	}
	var found []candidate
	s.radius(0, p, radius*radius, &found)
	slices.SortFunc(found, func(a, b candidate) int {
		if c := cmp.Compare(a.dist2, b.dist2); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
	out := make([]core.Index, len(found))
	for i, c := range found {
		out[i] = c.index
	}
	return out
}

func (s *NNSearch) radius(id int32, p geom.Point, r2 float64, found *[]candidate) {
	n := &s.tree.nodes[id]
	if n.leaf() {
		for _, i := range s.tree.order[n.lo:n.hi] {
			if d2 := s.dist2(p, i); d2 < r2 {
				*found = append(*found, candidate{dist2: d2, index: i})
			}
		}
		return
	}

	diff := p[n.axis] - n.split
	near, far := n.left, n.right
	if diff >= 0 {
		near, far = far, near
	}
	s.radius(near, p, r2, found)
	if diff*diff < r2 {
		s.radius(far, p, r2, found)
	}
}

// FrameNeighbors returns the points strictly inside the ellipsoid centered on
// p and spanned by the frame directions scaled by factor, sorted by distance
// then index. Candidates are bounded by the enclosing ball, so components
// outside the frame span are limited by the longest frame direction.
func (s *NNSearch) FrameNeighbors(p geom.Point, frame geom.Frame, factor float64) []core.Index {
	candidates := s.RadiusNeighbors(p, distance.FrameRadius(frame, factor))
	return slices.DeleteFunc(candidates, func(i core.Index) bool {
		return !distance.InsideFrame(p, s.tree.points[i], frame, factor)
	})
}
