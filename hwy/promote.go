package hwy

// This file provides pure Go (scalar) implementations of the integer
// promotions and demotions used by the register conversion kernels.
// When SIMD implementations are available (promote_avx512.go), they can be
// used for higher performance on supported hardware.
//
// Note: Go generics don't support type relationships like "T is narrower than U",
// so we provide concrete type-specific functions.
//
// Lane bookkeeping for a register width of W bytes:
//
//	int64: W/8 lanes   int32: W/4 lanes   int8/uint8: W lanes
//
// Splitting one int32 register yields two int64 registers (lower, upper
// half), and an 8-bit register lines up with an int32 register only through
// its lower quarter.

// PromoteLowerI32ToI64 sign-extends the lower half of int32 lanes to int64.
// Input: 2N int32 lanes -> Output: N int64 lanes.
func PromoteLowerI32ToI64(v Vec[int32]) Vec[int64] {
	result := make([]int64, MaxLanes[int64]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = int64(v.data[i])
	}
	return Vec[int64]{data: result}
}

// PromoteUpperI32ToI64 sign-extends the upper half of int32 lanes to int64.
// Input: 2N int32 lanes -> Output: N int64 lanes (from lanes [N, 2N)).
func PromoteUpperI32ToI64(v Vec[int32]) Vec[int64] {
	result := make([]int64, MaxLanes[int64]())
	half := len(v.data) / 2
	n := min(len(result), len(v.data)-half)
	for i := range n {
		result[i] = int64(v.data[half+i])
	}
	return Vec[int64]{data: result}
}

// TruncateTwoI64ToI32 narrows two int64 vectors to one int32 vector,
// keeping only the lower 32 bits of each lane (truncating, not saturating).
// The 'lo' vector fills the lower lanes, 'hi' vector fills the upper lanes.
func TruncateTwoI64ToI32(lo, hi Vec[int64]) Vec[int32] {
	result := make([]int32, MaxLanes[int32]())
	n := min(len(result), len(lo.data))
	for i := range n {
		result[i] = int32(lo.data[i])
	}
	m := min(len(result)-n, len(hi.data))
	for i := range m {
		result[n+i] = int32(hi.data[i])
	}
	return Vec[int32]{data: result}
}

// PromoteQuarterI8ToI32 sign-extends the lowest quarter of int8 lanes to int32.
// Input: 4N int8 lanes -> Output: N int32 lanes (from lanes [0, N)).
func PromoteQuarterI8ToI32(v Vec[int8]) Vec[int32] {
	result := make([]int32, MaxLanes[int32]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// PromoteQuarterU8ToI32 zero-extends the lowest quarter of uint8 lanes to int32.
// Input: 4N uint8 lanes -> Output: N int32 lanes (from lanes [0, N)).
func PromoteQuarterU8ToI32(v Vec[uint8]) Vec[int32] {
	result := make([]int32, MaxLanes[int32]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// TruncateI32ToI8Quarter narrows int32 to int8 (truncating, not saturating).
// Only the lower 8 bits are kept. The result fills the lowest quarter of an
// int8 register; the other lanes are zero.
func TruncateI32ToI8Quarter(v Vec[int32]) Vec[int8] {
	result := make([]int8, MaxLanes[int8]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = int8(v.data[i])
	}
	return Vec[int8]{data: result}
}

// TruncateI32ToU8Quarter narrows int32 to uint8 (truncating, not saturating).
// Only the lower 8 bits are kept. The result fills the lowest quarter of a
// uint8 register; the other lanes are zero.
func TruncateI32ToU8Quarter(v Vec[int32]) Vec[uint8] {
	result := make([]uint8, MaxLanes[uint8]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = uint8(v.data[i])
	}
	return Vec[uint8]{data: result}
}
