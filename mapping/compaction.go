package mapping

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/meshkit/core"
)

// OldToNew returns the dense renumbering of the elements kept by a deletion mask.
//
// old2new[i] is core.NoIndex when mask[i] is true; otherwise it is the number
// of kept elements before i, so survivors keep their relative order.
func OldToNew(mask []bool) []core.Index {
	old2new := make([]core.Index, len(mask))
	var next core.Index
	for i, deleted := range mask {
		if deleted {
			old2new[i] = core.NoIndex
			continue
		}
		old2new[i] = next
		next++
	}
	return old2new
}

// NbDeleted returns the number of true entries in mask.
func NbDeleted(mask []bool) int {
	n := 0
	for _, deleted := range mask {
		if deleted {
			n++
		}
	}
	return n
}

// DeleteElements removes values[i] for every i where mask[i] is true, keeping
// the order of the survivors. The compaction happens in place; the returned
// slice aliases values. Assumes len(mask) == len(values).
func DeleteElements[T any](mask []bool, values []T) []T {
	k := 0
	for i, deleted := range mask {
		if deleted {
			continue
		}
		if k != i {
			values[k] = values[i]
		}
		k++
	}
	clear(values[k:])
	return values[:k]
}

// NewToOld inverts a renumbering: the result has size n and holds, for each new
// index, the old index mapped onto it. Entries no old index maps to are core.NoIndex.
func NewToOld(old2new []core.Index, n int) []core.Index {
	new2old := make([]core.Index, n)
	for i := range new2old {
		new2old[i] = core.NoIndex
	}
	for old, nw := range old2new {
		if nw == core.NoIndex || int(nw) >= n {
			continue
		}
		new2old[nw] = core.Index(old)
	}
	return new2old
}

// MaskFromBitmap converts a set of deleted indices into a deletion mask over n elements.
func MaskFromBitmap(deleted *roaring.Bitmap, n int) ([]bool, error) {
	mask := make([]bool, n)
	if deleted == nil || deleted.IsEmpty() {
		return mask, nil
	}
	if maxIdx := deleted.Maximum(); uint64(maxIdx) >= uint64(n) {
		return nil, core.InvalidArgumentf("deleted index %d out of range [0, %d)", maxIdx, n)
	}
	it := deleted.Iterator()
	for it.HasNext() {
		mask[it.Next()] = true
	}
	return mask, nil
}

// MaskFromBitSet converts a bit set of deleted indices into a deletion mask over n elements.
func MaskFromBitSet(deleted *bitset.BitSet, n int) ([]bool, error) {
	mask := make([]bool, n)
	if deleted == nil {
		return mask, nil
	}
	for i, ok := deleted.NextSet(0); ok; i, ok = deleted.NextSet(i + 1) {
		if i >= uint(n) {
			return nil, core.InvalidArgumentf("deleted index %d out of range [0, %d)", i, n)
		}
		mask[i] = true
	}
	return mask, nil
}

// ToBitmap returns the deleted indices of mask as a bitmap.
func ToBitmap(mask []bool) *roaring.Bitmap {
	bm := roaring.New()
	for i, deleted := range mask {
		if deleted {
			bm.Add(uint32(i))
		}
	}
	return bm
}
