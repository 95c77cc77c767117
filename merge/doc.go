// Package merge combines several point collections into one, merging
// vertices that lie within a tolerance of each other.
//
// Points of all sources are concatenated in source order and deduplicated
// with spatial colocation. Every class of colocated points becomes one
// vertex of the merged collection. Transferable vertex attributes are
// carried over from the first point of each class.
package merge
