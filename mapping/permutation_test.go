package mapping

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meshkit/core"
	"github.com/hupe1980/meshkit/testutil"
)

func TestPermuteScatter(t *testing.T) {
	values := []string{"a", "b", "c", "d"}
	perm := []core.Index{2, 0, 3, 1}

	Permute(values, perm)
	// new[perm[i]] = old[i]
	assert.Equal(t, []string{"b", "d", "a", "c"}, values)
}

func TestPermuteRandom(t *testing.T) {
	rng := testutil.NewRNG(42)
	n := 257
	perm := make([]core.Index, n)
	for i, p := range rng.Perm(n) {
		perm[i] = core.Index(p)
	}
	require.NoError(t, ValidatePermutation(perm, n))

	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	Permute(values, perm)
	for i := range n {
		assert.Equal(t, i, values[perm[i]])
	}

	Permute(values, InversePermutation(perm))
	for i := range n {
		assert.Equal(t, i, values[i])
	}
}

func TestValidatePermutation(t *testing.T) {
	tests := []struct {
		name string
		perm []core.Index
		n    int
	}{
		{"wrong length", []core.Index{0, 1}, 3},
		{"out of range", []core.Index{0, 3, 1}, 3},
		{"repeated", []core.Index{0, 1, 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePermutation(tt.perm, tt.n)
			assert.True(t, errors.Is(err, core.ErrInvalidArgument))
		})
	}

	assert.NoError(t, ValidatePermutation([]core.Index{1, 2, 0}, 3))
}
