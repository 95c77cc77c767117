package meshkit_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/meshkit"
	"github.com/hupe1980/meshkit/collection"
	"github.com/hupe1980/meshkit/geom"
)

// ExampleRemoveColocatedPoints deduplicates a point set in place.
func ExampleRemoveColocatedPoints() {
	ps := collection.NewPointSet()
	if _, err := collection.NewBuilder(ps).CreatePoints([]geom.Point{
		geom.Point3(0, 0, 0),
		geom.Point3(1, 0, 0),
		geom.Point3(0, 0, 1e-9),
	}); err != nil {
		log.Fatal(err)
	}

	old2new, err := meshkit.RemoveColocatedPoints(context.Background(), ps, 1e-6)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(old2new, ps.NbVertices())
	// Output: [0 1 0] 2
}

// ExampleMergePointSets merges two point sets sharing a vertex.
func ExampleMergePointSets() {
	a := collection.NewPointSet()
	b := collection.NewPointSet()
	if _, err := collection.NewBuilder(a).CreatePoints([]geom.Point{geom.Point3(0, 0, 0), geom.Point3(1, 0, 0)}); err != nil {
		log.Fatal(err)
	}
	if _, err := collection.NewBuilder(b).CreatePoints([]geom.Point{geom.Point3(1, 0, 0), geom.Point3(2, 0, 0)}); err != nil {
		log.Fatal(err)
	}

	m, err := meshkit.MergePointSets(context.Background(), []*collection.PointSet{a, b}, 1e-6)
	if err != nil {
		log.Fatal(err)
	}

	v, _ := m.VertexInMerged(1, 0)
	fmt.Println(m.Merged().NbVertices(), v)
	// Output: 3 1
}
