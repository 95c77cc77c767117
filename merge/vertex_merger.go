package merge

import (
	"log/slog"
	"slices"
	"time"

	"github.com/hupe1980/meshkit/attribute"
	"github.com/hupe1980/meshkit/collection"
	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/geom"
	"github.com/hupe1980/meshkit/mapping"
	"github.com/hupe1980/meshkit/metric"
	"github.com/hupe1980/meshkit/spatial"
)

// Source is a collection of points that can be merged.
// *collection.PointSet implements Source.
type Source interface {
	NbVertices() int
	Point(v core.Index) geom.Point
	VertexAttributes() *attribute.Store
	Impl() collection.Impl
}

// VertexOrigin identifies a vertex of a source collection.
type VertexOrigin struct {
	Source int
	Vertex core.Index
}

// VertexMerger holds the result of merging sources.
type VertexMerger struct {
	sources  []Source
	offsets  []int
	info     spatial.ColocatedInfo
	merged   *collection.PointSet
	origins  [][]VertexOrigin
	mappings []*mapping.Generic[core.Index, core.Index]
}

// NewVertexMerger merges the vertices of sources closer than epsilon.
// Sources of different representations are merged into a collection of
// collection.DefaultImpl.
func NewVertexMerger(sources []Source, epsilon float64, optFns ...Option) (*VertexMerger, error) {
	start := time.Now()
	opts := options{dimension: spatial.DefaultDimension}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.metrics = metric.OrNoop(opts.metrics)

	m := &VertexMerger{
		sources: slices.Clone(sources),
		offsets: make([]int, len(sources)),
	}

	var total int
	for i, s := range sources {
		m.offsets[i] = total
		total += s.NbVertices()
	}
	points := make([]geom.Point, 0, total)
	for _, s := range sources {
		for v := range s.NbVertices() {
			points = append(points, s.Point(core.Index(v)))
		}
	}

	search, err := spatial.New(points, opts.spatialOptions()...)
	if err != nil {
		return nil, err
	}
	m.info, err = search.ColocatedIndexMapping(epsilon)
	if err != nil {
		return nil, err
	}

	m.merged = collection.NewPointSet(
		collection.WithImpl(m.commonImpl(opts.logger)),
		collection.WithLogger(opts.logger),
	)
	if _, err := collection.NewBuilder(m.merged).CreatePoints(m.info.UniquePoints); err != nil {
		return nil, err
	}

	m.buildMappings()
	if err := m.transferAttributes(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	opts.metrics.RecordMerge(len(sources), total, m.info.NbUniquePoints(), elapsed)
	if opts.logger != nil {
		opts.logger.Info("vertices merged",
			slog.Int("sources", len(sources)),
			slog.Int("points", total),
			slog.Int("unique", m.info.NbUniquePoints()),
			slog.Float64("epsilon", epsilon),
			slog.Duration("elapsed", elapsed),
		)
	}
	return m, nil
}

func (m *VertexMerger) commonImpl(logger *slog.Logger) collection.Impl {
	if len(m.sources) == 0 {
		return collection.DefaultImpl
	}
	impl := m.sources[0].Impl()
	for _, s := range m.sources[1:] {
		if s.Impl() != impl {
			if logger != nil {
				logger.Debug("heterogeneous sources, using default representation",
					slog.String("first", string(impl)),
					slog.String("other", string(s.Impl())),
				)
			}
			return collection.DefaultImpl
		}
	}
	return impl
}

func (m *VertexMerger) buildMappings() {
	m.origins = make([][]VertexOrigin, m.info.NbUniquePoints())
	m.mappings = make([]*mapping.Generic[core.Index, core.Index], len(m.sources))
	for s, src := range m.sources {
		sm := mapping.NewGeneric[core.Index, core.Index]()
		for v := range src.NbVertices() {
			local := core.Index(v)
			merged := m.info.ColocatedMapping[m.offsets[s]+v]
			sm.Map(local, merged)
			m.origins[merged] = append(m.origins[merged], VertexOrigin{Source: s, Vertex: local})
		}
		m.mappings[s] = sm
	}
}

// transferAttributes imports the transferable attributes of every source.
// Each merged vertex takes its values from its first origin only, and a
// constant attribute keeps the value of the first source holding it.
func (m *VertexMerger) transferAttributes() error {
	first := make([]*mapping.Generic[core.Index, core.Index], len(m.sources))
	for s := range first {
		first[s] = mapping.NewGeneric[core.Index, core.Index]()
	}
	for v, origins := range m.origins {
		o := origins[0]
		first[o.Source].Map(o.Vertex, core.Index(v))
	}

	store := m.merged.VertexAttributes()
	keep := func(name string, _ attribute.Attribute) bool {
		existing, err := store.Attribute(name)
		return err != nil || existing.Kind() != attribute.KindConstant
	}
	for s, src := range m.sources {
		if err := store.ImportMappingIf(first[s], src.VertexAttributes(), keep); err != nil {
			return err
		}
	}
	return nil
}

// VertexInMerged returns the merged vertex of vertex local of source.
func (m *VertexMerger) VertexInMerged(source int, local core.Index) (core.Index, error) {
	if source < 0 || source >= len(m.sources) {
		return core.NoIndex, core.NotFoundf("source %d out of range [0, %d)", source, len(m.sources))
	}
	if n := m.sources[source].NbVertices(); local.Int() >= n {
		return core.NoIndex, core.IndexOutOfRange("source vertex", local, n)
	}
	return m.info.ColocatedMapping[m.offsets[source]+local.Int()], nil
}

// VertexOrigins returns the source vertices merged into vertex v, in source
// order. It returns nil if v is out of range.
func (m *VertexMerger) VertexOrigins(v core.Index) []VertexOrigin {
	if v.Int() >= len(m.origins) {
		return nil
	}
	return slices.Clone(m.origins[v])
}

// Offsets returns the position of the first vertex of each source in the
// concatenation of all source points.
func (m *VertexMerger) Offsets() []int {
	return slices.Clone(m.offsets)
}

// Merged returns the merged collection.
func (m *VertexMerger) Merged() *collection.PointSet {
	return m.merged
}

// Info returns the colocation over the concatenated source points.
func (m *VertexMerger) Info() spatial.ColocatedInfo {
	return m.info
}

// SourceMapping returns the mapping from the vertices of source to merged
// vertices, or nil if source is out of range.
func (m *VertexMerger) SourceMapping(source int) *mapping.Generic[core.Index, core.Index] {
	if source < 0 || source >= len(m.sources) {
		return nil
	}
	return m.mappings[source]
}
