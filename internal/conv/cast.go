package conv

import (
	"math"

	"github.com/hupe1980/meshkit/core"
)

// IntToIndex converts an element count or position to core.Index.
// core.NoIndex is reserved, so the largest accepted value is core.MaxIndex.
func IntToIndex(v int) (core.Index, error) {
	if v < 0 {
		return 0, core.InvalidArgumentf("integer overflow: %d cannot be converted to index (negative)", v)
	}
	if uint64(v) > uint64(core.MaxIndex) {
		return 0, core.InvalidArgumentf("integer overflow: %d cannot be converted to index (too large)", v)
	}
	return core.Index(v), nil
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, core.InvalidArgumentf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, core.InvalidArgumentf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
// Counts read from archives pass through here, so failures are reported as corruption.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, core.Corruptionf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, core.Corruptionf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
