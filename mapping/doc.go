// Package mapping provides associations between two index domains and the
// index bookkeeping used by structural edits.
//
//   - Bijective: one-to-one; a new pair evicts any earlier partner of either key.
//   - Generic: one-to-many in both directions; repeated pairs are kept.
//   - OldToNew: dense renumbering of the survivors of a deletion mask.
//   - Permute: in-place scatter of a slice by a permutation.
//
// All results are deterministic functions of their inputs, so renumbering
// produced from the same mask or permutation is reproducible.
package mapping
