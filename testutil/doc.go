// Package testutil provides testing utilities for meshkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible point clouds and computing
// exact neighbor sets to check the spatial index against.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 3, -1, 1)
//	pts, labels := rng.ClusteredPoints(20, 5, 3, 10, 0.01)
//
// # Exact Search (Ground Truth)
//
//	want := testutil.ExactRadius(pts, q, r)
//	want := testutil.ExactKNN(pts, q, k)
package testutil
