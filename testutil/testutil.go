package testutil

import (
	"cmp"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/distance"
	"github.com/hupe1980/meshkit/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates num points whose first dim coordinates are uniform
// in [minVal, maxVal). Remaining coordinates are zero.
func (r *RNG) UniformPoints(num, dim int, minVal, maxVal float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	points := make([]geom.Point, num)
	for i := range points {
		for d := range dim {
			points[i][d] = minVal + r.rand.Float64()*span
		}
	}
	return points
}

// ClusteredPoints generates clusters of size points each. Cluster centers lie
// on a grid with the given spacing; members are displaced from their center by
// at most spread in every coordinate. Points are shuffled, and labels[i] holds
// the cluster of points[i].
func (r *RNG) ClusteredPoints(clusters, size, dim int, spacing, spread float64) ([]geom.Point, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, 0, clusters*size)
	labels := make([]int, 0, clusters*size)
	for c := range clusters {
		var center geom.Point
		center[0] = float64(c) * spacing
		if dim > 1 {
			center[1] = float64(c%7) * spacing
		}
		for range size {
			p := center
			for d := range dim {
				p[d] += (r.rand.Float64()*2 - 1) * spread
			}
			points = append(points, p)
			labels = append(labels, c)
		}
	}

	r.rand.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
		labels[i], labels[j] = labels[j], labels[i]
	})
	return points, labels
}

// Neighbor is a point index with its squared distance to a query.
type Neighbor struct {
	Index    core.Index
	Distance float64
}

// ExactNeighbors returns every point sorted by squared distance to q, ties by index.
// It is the brute-force oracle for spatial index tests.
func ExactNeighbors(points []geom.Point, q geom.Point) []Neighbor {
	out := make([]Neighbor, len(points))
	for i, p := range points {
		out[i] = Neighbor{Index: core.Index(i), Distance: distance.SquaredL2(p, q)}
	}
	slices.SortFunc(out, func(a, b Neighbor) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return out
}

// ExactRadius returns the indices of the points strictly closer than radius to
// q, sorted by distance then index.
func ExactRadius(points []geom.Point, q geom.Point, radius float64) []core.Index {
	var out []core.Index
	for _, n := range ExactNeighbors(points, q) {
		if n.Distance >= radius*radius {
			break
		}
		out = append(out, n.Index)
	}
	return out
}

// ExactKNN returns the indices of the k nearest points to q.
func ExactKNN(points []geom.Point, q geom.Point, k int) []core.Index {
	all := ExactNeighbors(points, q)
	out := make([]core.Index, 0, min(k, len(all)))
	for _, n := range all[:min(k, len(all))] {
		out = append(out, n.Index)
	}
	return out
}
