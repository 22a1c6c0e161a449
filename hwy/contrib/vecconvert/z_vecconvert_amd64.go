// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd

package vecconvert

import (
	"simd/archsimd"

	"github.com/ajroetker/go-highway-convert/hwy"
)

func init() {
	if hwy.CurrentLevel() != hwy.DispatchAVX512 {
		return
	}
	// VCVTQQ2PS and VCVTTPS2QQ need DQ; byte widening and the VPMOV*DB narrows need BW.
	if hwy.HasAVX512DQ() {
		I64ToF32 = avx512I64ToF32
		F32ToI64 = avx512F32ToI64
	}
	if hwy.HasAVX512BW() {
		I8ToI32 = avx512I8ToI32
		U8ToI32 = avx512U8ToI32
		I32ToI8 = avx512I32ToI8
		I32ToU8 = avx512I32ToU8
		F32ToI8 = avx512F32ToI8
		F32ToU8 = avx512F32ToU8
		I8ToF32 = avx512I8ToF32
		U8ToF32 = avx512U8ToF32
	}
	// archsimd has no float16 conversion; F16ToF32 and F32ToF16 stay portable.
	BF16ToF32 = avx512BF16ToF32
	F32ToBF16 = avx512F32ToBF16
	I32ToI64 = avx512I32ToI64
	I64ToI32 = avx512I64ToI32
}

// lanes returns the storage of v for a direct register load. Only zero
// groups, whose registers hold no lanes, are padded with a copy.
func lanes[T hwy.Lanes](v hwy.Vec[T]) []T {
	if d := v.Data(); len(d) >= hwy.MaxLanes[T]() {
		return d
	}
	return hwy.Load(v.Data()).Data()
}

// reg allocates the storage of one destination register. Kernels store
// their result into a prefix and wrap it with hwy.LoadFull, leaving any
// unproduced lanes zero.
func reg[T hwy.Lanes]() []T {
	return make([]T, hwy.MaxLanes[T]())
}

func loadF32(g VecN[float32, One]) archsimd.Float32x16 {
	return archsimd.LoadFloat32x16Slice(lanes(g.regs[0]))
}

func loadI32(g VecN[int32, One]) archsimd.Int32x16 {
	return archsimd.LoadInt32x16Slice(lanes(g.regs[0]))
}

func loadI64(v hwy.Vec[int64]) archsimd.Int64x8 {
	return archsimd.LoadInt64x8Slice(lanes(v))
}

// The 8-bit kernels read and write only the lowest 16 lanes of a byte register.
func loadI8(g VecN[int8, One]) archsimd.Int8x16 {
	return archsimd.LoadInt8x16Slice(lanes(g.regs[0])[:16])
}

func loadU8(g VecN[uint8, One]) archsimd.Uint8x16 {
	return archsimd.LoadUint8x16Slice(lanes(g.regs[0])[:16])
}

func storeF32(v archsimd.Float32x16) VecN[float32, One] {
	out := reg[float32]()
	v.StoreSlice(out)
	return Make1(hwy.LoadFull(out))
}

func storeI32(v archsimd.Int32x16) VecN[int32, One] {
	out := reg[int32]()
	v.StoreSlice(out)
	return Make1(hwy.LoadFull(out))
}

func storeI64x2(lo, hi archsimd.Int64x8) VecN[int64, Two] {
	a, b := reg[int64](), reg[int64]()
	lo.StoreSlice(a)
	hi.StoreSlice(b)
	return Make2(hwy.LoadFull(a), hwy.LoadFull(b))
}

func storeI8(v archsimd.Int8x16) VecN[int8, One] {
	out := reg[int8]()
	v.StoreSlice(out[:16])
	return Make1(hwy.LoadFull(out))
}

func storeU8(v archsimd.Uint8x16) VecN[uint8, One] {
	out := reg[uint8]()
	v.StoreSlice(out[:16])
	return Make1(hwy.LoadFull(out))
}

func avx512BF16ToF32(src VecN[hwy.BFloat16, One]) VecN[float32, One] {
	return storeF32(hwy.PromoteBF16ToF32_AVX512(hwy.LoadBF16x16_AVX512(lanes(src.regs[0]))))
}

func avx512F32ToBF16(src VecN[float32, One]) VecN[hwy.BFloat16, One] {
	out := reg[hwy.BFloat16]()
	hwy.StoreBF16x16_AVX512(hwy.DemoteF32ToBF16_AVX512(loadF32(src)), out)
	return Make1(hwy.LoadFull(out))
}

func avx512I64ToF32(src VecN[int64, Two]) VecN[float32, One] {
	return storeF32(hwy.ConvertTwoI64ToF32_AVX512(loadI64(src.regs[0]), loadI64(src.regs[1])))
}

func avx512F32ToI64(src VecN[float32, One]) VecN[int64, Two] {
	v := loadF32(src)
	return storeI64x2(hwy.TruncF32ToI64_AVX512_Lower(v), hwy.TruncF32ToI64_AVX512_Upper(v))
}

func avx512I32ToI64(src VecN[int32, One]) VecN[int64, Two] {
	v := loadI32(src)
	return storeI64x2(hwy.PromoteI32ToI64_AVX512_Lower(v), hwy.PromoteI32ToI64_AVX512_Upper(v))
}

func avx512I64ToI32(src VecN[int64, Two]) VecN[int32, One] {
	return storeI32(hwy.TruncateTwoI64ToI32_AVX512(loadI64(src.regs[0]), loadI64(src.regs[1])))
}

func avx512I8ToI32(src VecN[int8, One]) VecN[int32, One] {
	return storeI32(hwy.PromoteQuarterI8ToI32_AVX512(loadI8(src)))
}

func avx512U8ToI32(src VecN[uint8, One]) VecN[int32, One] {
	return storeI32(hwy.PromoteQuarterU8ToI32_AVX512(loadU8(src)))
}

func avx512I32ToI8(src VecN[int32, One]) VecN[int8, One] {
	return storeI8(hwy.TruncateI32ToI8_AVX512(loadI32(src)))
}

func avx512I32ToU8(src VecN[int32, One]) VecN[uint8, One] {
	return storeU8(hwy.TruncateI32ToU8_AVX512(loadI32(src)))
}

func avx512F32ToI8(src VecN[float32, One]) VecN[int8, One] {
	return storeI8(hwy.DemoteF32ToI8Sat_AVX512(loadF32(src)))
}

func avx512F32ToU8(src VecN[float32, One]) VecN[uint8, One] {
	return storeU8(hwy.DemoteF32ToU8Sat_AVX512(loadF32(src)))
}

func avx512I8ToF32(src VecN[int8, One]) VecN[float32, One] {
	return storeF32(hwy.ConvertQuarterI8ToF32_AVX512(loadI8(src)))
}

func avx512U8ToF32(src VecN[uint8, One]) VecN[float32, One] {
	return storeF32(hwy.ConvertQuarterU8ToF32_AVX512(loadU8(src)))
}
