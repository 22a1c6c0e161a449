//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// This file provides AVX-512 SIMD implementations of the int <-> float
// conversions. They work directly with archsimd vector types and follow the
// lane semantics of the portable versions in convert.go: truncation toward
// zero, with NaN and out-of-range lanes giving the integer indefinite value.

// ConvertTwoI64ToF32_AVX512 converts two Int64x8 vectors to one Float32x16
// with VCVTQQ2PS. 'lo' fills lanes [0, 8), 'hi' fills lanes [8, 16).
func ConvertTwoI64ToF32_AVX512(lo, hi archsimd.Int64x8) archsimd.Float32x16 {
	return archsimd.BroadcastFloat32x16(0).
		SetLo(lo.ConvertToFloat32()).
		SetHi(hi.ConvertToFloat32())
}

// TruncF32ToI64_AVX512_Lower converts float32 lanes [0, 8) to Int64x8 with
// VCVTTPS2QQ.
func TruncF32ToI64_AVX512_Lower(v archsimd.Float32x16) archsimd.Int64x8 {
	return v.GetLo().ConvertToInt64()
}

// TruncF32ToI64_AVX512_Upper converts float32 lanes [8, 16) to Int64x8 with
// VCVTTPS2QQ.
func TruncF32ToI64_AVX512_Upper(v archsimd.Float32x16) archsimd.Int64x8 {
	return v.GetHi().ConvertToInt64()
}

// ConvertI32ToF32_AVX512 converts int32 to float32 using VCVTDQ2PS.
func ConvertI32ToF32_AVX512(v archsimd.Int32x16) archsimd.Float32x16 {
	return v.ConvertToFloat32()
}

// ConvertQuarterI8ToF32_AVX512 converts the 16 int8 lanes of v to float32.
// The widening is exact, and so is VCVTDQ2PS for 8-bit values.
func ConvertQuarterI8ToF32_AVX512(v archsimd.Int8x16) archsimd.Float32x16 {
	return ConvertI32ToF32_AVX512(PromoteQuarterI8ToI32_AVX512(v))
}

// ConvertQuarterU8ToF32_AVX512 converts the 16 uint8 lanes of v to float32.
func ConvertQuarterU8ToF32_AVX512(v archsimd.Uint8x16) archsimd.Float32x16 {
	return ConvertI32ToF32_AVX512(PromoteQuarterU8ToI32_AVX512(v))
}

// DemoteF32ToI8Sat_AVX512 truncates with VCVTTPS2DQ and narrows with signed
// saturation (VPMOVSDB). Out-of-range and NaN inputs come out of VCVTTPS2DQ
// as 0x80000000 and therefore clamp to -128.
func DemoteF32ToI8Sat_AVX512(v archsimd.Float32x16) archsimd.Int8x16 {
	return v.ConvertToInt32().SaturateToInt8()
}

// DemoteF32ToU8Sat_AVX512 truncates with VCVTTPS2DQ, clamps negatives to
// zero and narrows with unsigned saturation (VPMOVUSDB).
func DemoteF32ToU8Sat_AVX512(v archsimd.Float32x16) archsimd.Uint8x16 {
	return v.ConvertToInt32().
		Max(archsimd.BroadcastInt32x16(0)).
		AsUint32x16().
		SaturateToUint8()
}
