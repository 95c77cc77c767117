// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent overflow when converting
// element counts between Go's int and core.Index or the fixed-width integers
// used by the archive format.
//
// Use cases:
//   - Validating counts read from archives (record counts, value counts)
//   - Converting collection sizes into core.Index before growing a store
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices below a collection size), use direct type casts instead.
package conv
