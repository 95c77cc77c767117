package meshkit

import (
	"context"
	"io"

	"github.com/hupe1980/meshkit/archive"
	"github.com/hupe1980/meshkit/collection"
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/merge"
	"github.com/hupe1980/meshkit/spatial"
)

// NewRegistry returns an archive registry with the built-in value types whose
// default codec comes from WithCodec or WithConfig. Register custom value
// types on it and pass it to SavePointSet and LoadPointSet with WithRegistry.
func NewRegistry(opts ...Option) (*archive.Registry, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, translateError(err)
	}
	return archive.NewRegistry(archive.WithDefaultCodec(o.codec)), nil
}

// MergePointSets merges the vertices of sources closer than epsilon into a
// new point set. Attributes are transferred from the first source holding
// each merged vertex. The returned merger maps source vertices to merged
// vertices and back.
func MergePointSets(ctx context.Context, sources []*collection.PointSet, epsilon float64, opts ...Option) (*merge.VertexMerger, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, translateError(err)
	}

	in := make([]merge.Source, len(sources))
	for i, ps := range sources {
		if ps == nil {
			return nil, translateError(core.InvalidArgumentf("source %d is nil", i))
		}
		in[i] = ps
	}

	m, err := merge.NewVertexMerger(in, epsilon,
		merge.WithDimension(o.dimension),
		merge.WithParallelism(o.parallelism),
		merge.WithLogger(o.logger.std()),
		merge.WithMetrics(o.metrics),
	)
	if o.logger != nil {
		unique := 0
		if m != nil {
			unique = m.Merged().NbVertices()
		}
		o.logger.WithEpsilon(epsilon).LogMerge(ctx, len(sources), unique, err)
	}
	if err != nil {
		return nil, translateError(err)
	}
	return m, nil
}

// RemoveColocatedPoints deletes the vertices of ps lying closer than epsilon
// to an earlier kept vertex, together with their attribute values.
// It returns the old-to-new vertex mapping, where removed vertices map to
// the kept vertex they were colocated with.
func RemoveColocatedPoints(ctx context.Context, ps *collection.PointSet, epsilon float64, opts ...Option) ([]core.Index, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, translateError(err)
	}

	old2new, removed, err := removeColocated(ps, epsilon, o)
	if o.logger != nil && ps != nil {
		o.logger.WithCollection(ps.ID()).WithEpsilon(epsilon).LogColocation(ctx, len(old2new), removed, err)
	}
	if err != nil {
		return nil, translateError(err)
	}
	return old2new, nil
}

func removeColocated(ps *collection.PointSet, epsilon float64, o options) ([]core.Index, int, error) {
	if ps == nil {
		return nil, 0, core.InvalidArgumentf("point set is nil")
	}
	search, err := spatial.New(ps.Points(), o.spatialOptions()...)
	if err != nil {
		return nil, 0, err
	}
	info, err := search.ColocatedIndexMapping(epsilon)
	if err != nil {
		return nil, 0, err
	}

	removed := info.NbColocatedPoints()
	if removed > 0 {
		mask := make([]bool, len(info.ColocatedInputPoints))
		for i, rep := range info.ColocatedInputPoints {
			mask[i] = rep != core.Index(i)
		}
		// Representatives keep their relative order, so the compaction
		// moves each one to its class index.
		if _, err := collection.NewBuilder(ps, collection.WithParallelism(o.parallelism)).DeleteVertices(mask); err != nil {
			return nil, 0, err
		}
	}
	return info.ColocatedMapping, removed, nil
}

// SavePointSet writes ps with its persistent vertex attributes to filename.
// The file is replaced atomically.
func SavePointSet(ctx context.Context, filename string, ps *collection.PointSet, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return translateError(err)
	}
	if ps == nil {
		return translateError(core.InvalidArgumentf("point set is nil"))
	}
	err = archive.SaveFile(filename, func(w io.Writer) error {
		return archive.WritePointSet(w, o.registry, ps, o.archiveOptions()...)
	})
	if o.logger != nil {
		o.logger.WithCollection(ps.ID()).LogArchive(ctx, "save", filename, err)
	}
	return translateError(err)
}

// LoadPointSet reads a point set saved by SavePointSet.
// A missing file fails with ErrNotFound, a damaged one with ErrCorruption.
func LoadPointSet(ctx context.Context, filename string, opts ...Option) (*collection.PointSet, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, translateError(err)
	}
	var ps *collection.PointSet
	err = archive.LoadFile(filename, func(r io.Reader) error {
		var err error
		ps, err = archive.ReadPointSet(r, o.registry, o.archiveOptions()...)
		return err
	})
	if o.logger != nil {
		o.logger.LogArchive(ctx, "load", filename, err)
	}
	if err != nil {
		return nil, translateError(err)
	}
	return ps, nil
}
