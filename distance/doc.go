// Package distance provides point distance calculations used by the spatial index.
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b)
//	inside := distance.InsideFrame(center, p, frame, 1.0)
//
// Radius queries compare squared distances, so most callers never take a square root.
package distance
