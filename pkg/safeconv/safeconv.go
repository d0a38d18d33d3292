// Package safeconv provides integer conversions that panic on overflow.
// Use them only where the caller has already validated the range.
package safeconv

import "math"

// MustRefToUint32 converts a positive component ref to a bitmap index,
// panics if the ref is not positive.
func MustRefToUint32(ref int32) uint32 {
	if ref <= 0 {
		panic("safeconv: non-positive ref")
	}

	return uint32(ref)
}

// MustIntToInt32 converts int to int32, panics on bounds violation.
func MustIntToInt32(v int) int32 {
	if v < math.MinInt32 || v > math.MaxInt32 {
		panic("safeconv: int to int32 out of bounds")
	}

	return int32(v)
}

// MustInt64ToUint64 converts int64 to uint64, panics if negative.
func MustInt64ToUint64(v int64) uint64 {
	if v < 0 {
		panic("safeconv: negative int64 to uint64 conversion")
	}

	return uint64(v)
}

// Uint64ToInt64 converts uint64 to int64, reporting false on overflow.
func Uint64ToInt64(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}

	return int64(v), true
}
