// Package collection provides element collections whose vertices carry
// attributes: VertexSet and PointSet.
//
// Collections are read-only through their own methods. Structural edits go
// through a Builder, which keeps every vertex attribute in lockstep with the
// vertex count:
//
//	ps := collection.NewPointSet()
//	b := collection.NewBuilder(ps)
//	v := b.CreatePoint(geom.Point3(1, 2, 3))
//	old2new, err := b.DeleteVertices(mask)
//
// A collection owns its attribute store; attributes hold no reference back to
// the collection.
package collection
