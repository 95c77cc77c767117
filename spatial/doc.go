// Package spatial provides a static kd-tree over points and the colocation
// search built on it.
//
// # Queries
//
//   - ClosestNeighbor: nearest point, ties broken by lowest index
//   - RadiusNeighbors: points strictly closer than a radius
//   - Neighbors: k nearest points
//   - FrameNeighbors: points strictly inside an anisotropic tolerance ellipsoid
//
// All queries are read-only and safe for concurrent use once the index is built.
//
// # Colocation
//
// ColocatedIndexMapping partitions the indexed points into classes of
// colocated points. Points are visited in input order and each unassigned
// point becomes the representative of every still unassigned point within
// tolerance, so the result depends only on the input order. Neighbor lists are
// computed in parallel batches; the assignment itself is sequential.
package spatial
