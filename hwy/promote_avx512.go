//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
	"unsafe"
)

// This file provides AVX-512 SIMD implementations of type promotion and
// demotion operations. These work directly with archsimd vector types:
//   - VPMOVSXDQ: int32 -> int64
//   - VPMOVQD: int64 -> int32 (truncating)
//   - VPMOVSXBD/VPMOVZXBD: int8/uint8 -> int32
//   - VPMOVDB: int32 -> int8 (truncating)
//
// BFloat16 lanes travel as Uint16x16. archsimd has no half-precision
// conversion, so float16 stays on the portable path.

// PromoteI32ToI64_AVX512_Lower sign-extends the lower 8 int32 lanes.
func PromoteI32ToI64_AVX512_Lower(v archsimd.Int32x16) archsimd.Int64x8 {
	return v.GetLo().ExtendToInt64()
}

// PromoteI32ToI64_AVX512_Upper sign-extends the upper 8 int32 lanes.
func PromoteI32ToI64_AVX512_Upper(v archsimd.Int32x16) archsimd.Int64x8 {
	return v.GetHi().ExtendToInt64()
}

// TruncateTwoI64ToI32_AVX512 narrows two Int64x8 vectors to one Int32x16,
// keeping the low 32 bits of every lane.
func TruncateTwoI64ToI32_AVX512(lo, hi archsimd.Int64x8) archsimd.Int32x16 {
	return archsimd.BroadcastInt32x16(0).
		SetLo(lo.TruncateToInt32()).
		SetHi(hi.TruncateToInt32())
}

// PromoteQuarterI8ToI32_AVX512 sign-extends 16 int8 lanes.
func PromoteQuarterI8ToI32_AVX512(v archsimd.Int8x16) archsimd.Int32x16 {
	return v.ExtendToInt32()
}

// PromoteQuarterU8ToI32_AVX512 zero-extends 16 uint8 lanes.
func PromoteQuarterU8ToI32_AVX512(v archsimd.Uint8x16) archsimd.Int32x16 {
	return v.ExtendToUint32().AsInt32x16()
}

// TruncateI32ToI8_AVX512 keeps the low 8 bits of each int32 lane.
func TruncateI32ToI8_AVX512(v archsimd.Int32x16) archsimd.Int8x16 {
	return v.TruncateToInt8()
}

// TruncateI32ToU8_AVX512 keeps the low 8 bits of each int32 lane.
func TruncateI32ToU8_AVX512(v archsimd.Int32x16) archsimd.Uint8x16 {
	return v.AsUint32x16().TruncateToUint8()
}

// LoadBF16x16_AVX512 loads the first 16 lanes of src, which must hold at
// least 16.
func LoadBF16x16_AVX512(src []BFloat16) archsimd.Uint16x16 {
	return archsimd.LoadUint16x16Slice(unsafe.Slice((*uint16)(unsafe.Pointer(&src[0])), 16))
}

// StoreBF16x16_AVX512 stores v into the first 16 lanes of dst.
func StoreBF16x16_AVX512(v archsimd.Uint16x16, dst []BFloat16) {
	v.StoreSlice(unsafe.Slice((*uint16)(unsafe.Pointer(&dst[0])), 16))
}

// PromoteBF16ToF32_AVX512 widens 16 BFloat16 lanes by moving each into the
// high half of a 32-bit lane.
func PromoteBF16ToF32_AVX512(v archsimd.Uint16x16) archsimd.Float32x16 {
	return v.ExtendToUint32().ShiftAllLeft(16).AsFloat32x16()
}

// DemoteF32ToBF16_AVX512 rounds 16 float32 lanes to BFloat16, to nearest
// even. NaN lanes become the canonical quiet NaN with their sign, as in
// Float32ToBFloat16.
func DemoteF32ToBF16_AVX512(v archsimd.Float32x16) archsimd.Uint16x16 {
	bits := v.AsUint32x16()
	lsb := bits.ShiftAllRight(16).And(archsimd.BroadcastUint32x16(1))
	rounded := bits.Add(archsimd.BroadcastUint32x16(0x7FFF)).Add(lsb).ShiftAllRight(16)

	isNaN := bits.And(archsimd.BroadcastUint32x16(0x7FFFFFFF)).
		Greater(archsimd.BroadcastUint32x16(0x7F800000))
	nan := bits.ShiftAllRight(16).
		And(archsimd.BroadcastUint32x16(0x8000)).
		Or(archsimd.BroadcastUint32x16(uint32(BFloat16NaN)))

	return nan.Merge(rounded, isNaN).TruncateToUint16()
}
