package mapping

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/meshkit/core"
)

// ValidatePermutation checks that perm is a permutation of 0..n-1.
func ValidatePermutation(perm []core.Index, n int) error {
	if len(perm) != n {
		return core.InvalidArgumentf("permutation has %d entries, want %d", len(perm), n)
	}
	seen := bitset.New(uint(n))
	for i, p := range perm {
		if int(p) >= n {
			return core.InvalidArgumentf("permutation entry %d = %d out of range [0, %d)", i, p, n)
		}
		if seen.Test(uint(p)) {
			return core.InvalidArgumentf("permutation entry %d repeats target %d", i, p)
		}
		seen.Set(uint(p))
	}
	return nil
}

// Permute reorders values in place so that values[perm[i]] holds what was at
// values[i]. perm must be a valid permutation of 0..len(values)-1.
func Permute[T any](values []T, perm []core.Index) {
	visited := bitset.New(uint(len(values)))
	for i := range values {
		if visited.Test(uint(i)) {
			continue
		}
		carry := values[i]
		for j := int(perm[i]); j != i; j = int(perm[j]) {
			carry, values[j] = values[j], carry
			visited.Set(uint(j))
		}
		values[i] = carry
		visited.Set(uint(i))
	}
}

// InversePermutation returns inv such that inv[perm[i]] == i.
func InversePermutation(perm []core.Index) []core.Index {
	inv := make([]core.Index, len(perm))
	for i, p := range perm {
		inv[p] = core.Index(i)
	}
	return inv
}
