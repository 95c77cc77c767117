// Package meshkit provides attribute storage, colocation and persistence for
// point-based geometric collections.
//
// The building blocks live in sub-packages:
//
//   - attribute: typed per-element attributes and the Store that keeps them
//     in lockstep with their collection
//   - mapping: old-to-new index mappings and deletion compaction
//   - spatial: kd-tree neighbor search and colocated point detection
//   - collection: vertex and point sets with a Builder for edits
//   - merge: merging the vertices of several point sets
//   - archive: the versioned binary archive format
//
// This package ties them together for the common workflows.
//
// # Quick Start
//
//	ctx := context.Background()
//	ps := collection.NewPointSet()
//	b := collection.NewBuilder(ps)
//	b.CreatePoints([]geom.Point{geom.Point3(0, 0, 0), geom.Point3(0, 0, 1e-9), geom.Point3(1, 0, 0)})
//
//	old2new, _ := meshkit.RemoveColocatedPoints(ctx, ps, 1e-6)
//	// old2new == [0 0 1], ps now holds two points
//
//	_ = meshkit.SavePointSet(ctx, "points.mka", ps, meshkit.WithCompression(archive.CompressionZSTD))
//	loaded, _ := meshkit.LoadPointSet(ctx, "points.mka")
//
// # Merging
//
//	m, _ := meshkit.MergePointSets(ctx, []*collection.PointSet{a, b}, 1e-6)
//	merged := m.Merged()
//	v, _ := m.VertexInMerged(1, 0) // vertex 0 of b in the merged set
//
// # Configuration
//
// Settings can be loaded from YAML and applied with WithConfig:
//
//	cfg, err := config.Load("meshkit.yaml")
//	...
//	old2new, err := meshkit.RemoveColocatedPoints(ctx, ps, cfg.Colocation.Epsilon, meshkit.WithConfig(cfg))
//
// # Errors
//
// Errors are marked with one of ErrNotFound, ErrTypeMismatch,
// ErrInvalidArgument or ErrCorruption; test them with errors.Is or the
// IsNotFound-style helpers.
package meshkit
