package hwy

import "math"

// This file provides pure Go (scalar) implementations of the numeric
// int <-> float conversions used by the register conversion kernels.
// When SIMD implementations are available (convert_avx512.go), they can be
// used for higher performance on supported hardware.
//
// Float to integer conversions truncate toward zero and never fault. Inputs
// that are NaN or outside the destination range produce the x86 "integer
// indefinite" value (the minimum signed integer), the same bits
// VCVTTPS2QQ / VCVTTPS2DQ return with exceptions suppressed.

// TruncF32ToInt64 truncates f toward zero. NaN and values outside the int64
// range return math.MinInt64.
func TruncF32ToInt64(f float32) int64 {
	if math.IsNaN(float64(f)) || f >= 0x1p63 || f < -0x1p63 {
		return math.MinInt64
	}
	return int64(f)
}

// TruncF32ToInt32 truncates f toward zero. NaN and values outside the int32
// range return math.MinInt32.
func TruncF32ToInt32(f float32) int32 {
	if math.IsNaN(float64(f)) || f >= 0x1p31 || f < -0x1p31 {
		return math.MinInt32
	}
	return int32(f)
}

// ConvertTwoI64ToF32 converts two int64 vectors to a single float32 vector.
// Input: 2 vectors of N int64 each -> Output: 1 vector of 2N float32.
// Each lane rounds to the nearest float32; magnitudes above 2^24 may lose
// precision and that loss is not corrected.
func ConvertTwoI64ToF32(lo, hi Vec[int64]) Vec[float32] {
	result := make([]float32, MaxLanes[float32]())
	n := min(len(result), len(lo.data))
	for i := range n {
		result[i] = float32(lo.data[i])
	}
	m := min(len(result)-n, len(hi.data))
	for i := range m {
		result[n+i] = float32(hi.data[i])
	}
	return Vec[float32]{data: result}
}

// TruncLowerF32ToI64 converts the lower half of float32 lanes to int64,
// rounding toward zero.
// Input: 2N float32 lanes -> Output: N int64 lanes (from lanes [0, N)).
func TruncLowerF32ToI64(v Vec[float32]) Vec[int64] {
	result := make([]int64, MaxLanes[int64]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = TruncF32ToInt64(v.data[i])
	}
	return Vec[int64]{data: result}
}

// TruncUpperF32ToI64 converts the upper half of float32 lanes to int64,
// rounding toward zero.
// Input: 2N float32 lanes -> Output: N int64 lanes (from lanes [N, 2N)).
func TruncUpperF32ToI64(v Vec[float32]) Vec[int64] {
	result := make([]int64, MaxLanes[int64]())
	half := len(v.data) / 2
	n := min(len(result), len(v.data)-half)
	for i := range n {
		result[i] = TruncF32ToInt64(v.data[half+i])
	}
	return Vec[int64]{data: result}
}

// ConvertI32ToF32 converts int32 lanes to float32 (round to nearest).
func ConvertI32ToF32(v Vec[int32]) Vec[float32] {
	result := make([]float32, MaxLanes[float32]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = float32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// ConvertQuarterI8ToF32 converts the lowest quarter of int8 lanes to float32
// by way of int32. Every int8 is exactly representable, so the conversion is
// lossless.
func ConvertQuarterI8ToF32(v Vec[int8]) Vec[float32] {
	return ConvertI32ToF32(PromoteQuarterI8ToI32(v))
}

// ConvertQuarterU8ToF32 converts the lowest quarter of uint8 lanes to float32
// by way of int32.
func ConvertQuarterU8ToF32(v Vec[uint8]) Vec[float32] {
	return ConvertI32ToF32(PromoteQuarterU8ToI32(v))
}
