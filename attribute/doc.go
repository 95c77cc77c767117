// Package attribute stores named, typed, per-element data for one element
// collection and keeps it consistent under structural edits.
//
// # Kinds
//
//   - Constant: one value shared by every element.
//   - Variable: one value per element, resized, compacted and permuted in lockstep.
//   - Sparse: explicitly set values over a default; only non-default values are stored.
//   - Computed: read-only values derived from a rule; structural edits do not apply.
//
// # Store
//
// A Store owns the attributes of one collection. Attributes are added with the
// generic FindOrCreate functions, which are idempotent and fail with
// core.ErrTypeMismatch when the name is taken by another kind or value type.
// Structural edits (Resize, DeleteElements, PermuteElements) are forwarded to
// every attribute, so all Variable attributes always hold NbElements values.
//
// The Attribute interface carries unexported methods: structural edits can only
// be issued through a Store, and no type outside this package can implement it.
//
// A Store is not safe for concurrent mutation.
package attribute
