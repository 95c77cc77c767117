package spatial

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
	"github.com/hupe1980/meshkit/internal/parallel"
)

// GlobalEpsilon is the smallest accepted colocation tolerance.
const GlobalEpsilon = 1e-6

// batchPerWorker is the number of points whose neighbors are precomputed per
// worker and colocation batch.
const batchPerWorker = 1024

// ColocatedInfo describes a partition of input points into colocated classes.
type ColocatedInfo struct {
	// UniquePoints holds one representative point per class, in input order
	// of the representatives.
	UniquePoints []geom.Point

	// ColocatedMapping maps each input point to its class in UniquePoints.
	ColocatedMapping []core.Index

	// ColocatedInputPoints maps each input point to the input index of its
	// class representative.
	ColocatedInputPoints []core.Index
}

// NbUniquePoints returns the number of classes.
func (c ColocatedInfo) NbUniquePoints() int {
	return len(c.UniquePoints)
}

// NbColocatedPoints returns the number of input points merged into the class
// of another input point.
func (c ColocatedInfo) NbColocatedPoints() int {
	return len(c.ColocatedMapping) - len(c.UniquePoints)
}

// ColocatedIndexMapping groups the points closer than epsilon to an earlier
// unassigned point. Tolerances below GlobalEpsilon are rejected.
func (s *NNSearch) ColocatedIndexMapping(epsilon float64) (ColocatedInfo, error) {
	if !(epsilon >= GlobalEpsilon) {
		return ColocatedInfo{}, core.InvalidArgumentf("colocation tolerance %g is below %g", epsilon, GlobalEpsilon)
	}
	return s.colocate(func(p geom.Point) []core.Index {
		return s.RadiusNeighbors(p, epsilon)
	}, slog.Float64("epsilon", epsilon))
}

// ColocatedIndexMappingFrame groups points lying inside the frame scaled by
// factor around an earlier unassigned point. The frame must span the index
// dimension and its shortest scaled direction must reach GlobalEpsilon.
func (s *NNSearch) ColocatedIndexMappingFrame(frame geom.Frame, factor float64) (ColocatedInfo, error) {
	if frame.Dimension() < s.tree.dim {
		return ColocatedInfo{}, core.InvalidArgumentf("frame spans %d directions, index has %d", frame.Dimension(), s.tree.dim)
	}
	if tol := factor * frame.MinElongation(); !(tol >= GlobalEpsilon) {
		return ColocatedInfo{}, core.InvalidArgumentf("colocation tolerance %g is below %g", tol, GlobalEpsilon)
	}
	return s.colocate(func(p geom.Point) []core.Index {
		return s.FrameNeighbors(p, frame, factor)
	}, slog.Float64("factor", factor))
}

func (s *NNSearch) colocate(neighbors func(geom.Point) []core.Index, tolerance slog.Attr) (ColocatedInfo, error) {
	start := time.Now()
	n := s.NbPoints()

	workers := s.parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	batch := batchPerWorker * workers

	representative := make([]core.Index, n)
	assigned := bitset.New(uint(n))
	lists := make([][]core.Index, min(batch, n))

	for lo := 0; lo < n; lo += batch {
		hi := min(lo+batch, n)

		// Only points unassigned at batch start can become representatives.
		err := parallel.For(hi-lo, func(j int) error {
			i := lo + j
			if assigned.Test(uint(i)) {
				lists[j] = nil
				return nil
			}
			lists[j] = neighbors(s.tree.points[i])
			return nil
		}, parallel.WithLimit(workers), parallel.WithGrain(64))
		if err != nil {
			return ColocatedInfo{}, err
		}

		for i := lo; i < hi; i++ {
			if assigned.Test(uint(i)) {
				continue
			}
			rep := core.Index(i)
			representative[i] = rep
			assigned.Set(uint(i))
			for _, j := range lists[i-lo] {
				if !assigned.Test(uint(j)) {
					representative[j] = rep
					assigned.Set(uint(j))
				}
			}
		}
	}

	info := ColocatedInfo{
		ColocatedMapping:     make([]core.Index, n),
		ColocatedInputPoints: representative,
	}
	for i, rep := range representative {
		if rep == core.Index(i) {
			info.ColocatedMapping[i] = core.Index(len(info.UniquePoints))
			info.UniquePoints = append(info.UniquePoints, s.tree.points[i])
			continue
		}
		// Representatives precede their members.
		info.ColocatedMapping[i] = info.ColocatedMapping[rep]
	}

	elapsed := time.Since(start)
	s.metrics.RecordColocation(n, info.NbUniquePoints(), elapsed)
	if s.logger != nil {
		s.logger.Debug("colocation done",
			tolerance,
			slog.Int("points", n),
			slog.Int("unique", info.NbUniquePoints()),
			slog.Duration("elapsed", elapsed),
		)
	}
	return info, nil
}
