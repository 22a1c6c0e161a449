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
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-highway-convert/hwy"
)

func skipUnlessAVX512(t testing.TB) {
	t.Helper()
	if hwy.CurrentLevel() != hwy.DispatchAVX512 {
		t.Skipf("AVX-512 not active (level %s)", hwy.CurrentLevel())
	}
}

func randBits32(rng *rand.Rand, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = math.Float32frombits(rng.Uint32())
	}
	return s
}

// sameBits compares two groups lane by lane on their bit patterns so NaN
// lanes compare equal.
func sameBits[T hwy.Lanes, N Size](t *testing.T, name string, want, got VecN[T, N]) {
	t.Helper()
	if want.NumLanes() != got.NumLanes() {
		t.Fatalf("%s: NumLanes: portable %d, avx512 %d", name, want.NumLanes(), got.NumLanes())
	}
	for i := range want.NumLanes() {
		w, g := want.Lane(i), got.Lane(i)
		if w != g && !(w != w && g != g) {
			t.Fatalf("%s: lane %d: portable %v, avx512 %v", name, i, w, g)
		}
	}
}

func TestAVX512MatchesPortable(t *testing.T) {
	skipUnlessAVX512(t)
	rng := rand.New(rand.NewSource(11))

	for range 1000 {
		f32 := LoadN[float32, One](randBits32(rng, 16))
		i32 := LoadN[int32, One](randInt32s(rng, 16))

		i64s := make([]int64, 16)
		bytes := make([]int8, 64)
		ubytes := make([]uint8, 64)
		brains := make([]hwy.BFloat16, 32)
		for i := range i64s {
			i64s[i] = int64(rng.Uint64())
		}
		for i := range bytes {
			bytes[i] = int8(rng.Uint32())
			ubytes[i] = uint8(rng.Uint32())
		}
		for i := range brains {
			brains[i] = hwy.BFloat16(rng.Uint32())
		}
		i64 := LoadN[int64, Two](i64s)
		i8 := LoadN[int8, One](bytes)
		u8 := LoadN[uint8, One](ubytes)

		sameBits(t, "BF16ToF32", BaseBF16ToF32(LoadN[hwy.BFloat16, One](brains)), avx512BF16ToF32(LoadN[hwy.BFloat16, One](brains)))
		sameBits(t, "F32ToBF16", BaseF32ToBF16(f32), avx512F32ToBF16(f32))
		sameBits(t, "I64ToF32", BaseI64ToF32(i64), avx512I64ToF32(i64))
		sameBits(t, "F32ToI64", BaseF32ToI64(f32), avx512F32ToI64(f32))
		sameBits(t, "I32ToI64", BaseI32ToI64(i32), avx512I32ToI64(i32))
		sameBits(t, "I64ToI32", BaseI64ToI32(i64), avx512I64ToI32(i64))
		sameBits(t, "I8ToI32", BaseI8ToI32(i8), avx512I8ToI32(i8))
		sameBits(t, "U8ToI32", BaseU8ToI32(u8), avx512U8ToI32(u8))
		sameBits(t, "I32ToI8", BaseI32ToI8(i32), avx512I32ToI8(i32))
		sameBits(t, "I32ToU8", BaseI32ToU8(i32), avx512I32ToU8(i32))
		sameBits(t, "F32ToI8", BaseF32ToI8(f32), avx512F32ToI8(f32))
		sameBits(t, "F32ToU8", BaseF32ToU8(f32), avx512F32ToU8(f32))
		sameBits(t, "I8ToF32", BaseI8ToF32(i8), avx512I8ToF32(i8))
		sameBits(t, "U8ToF32", BaseU8ToF32(u8), avx512U8ToF32(u8))
	}
}

func TestAVX512ZeroGroup(t *testing.T) {
	skipUnlessAVX512(t)

	var f32 VecN[float32, One]
	var i64 VecN[int64, Two]
	var i8 VecN[int8, One]
	sameBits(t, "F32ToI8", BaseF32ToI8(f32), avx512F32ToI8(f32))
	sameBits(t, "I64ToF32", BaseI64ToF32(i64), avx512I64ToF32(i64))
	sameBits(t, "I8ToF32", BaseI8ToF32(i8), avx512I8ToF32(i8))
}

// TestAVX512UpperBytesZero checks that the byte-producing kernels leave
// lanes [16, 64) of the destination register zero.
func TestAVX512UpperBytesZero(t *testing.T) {
	skipUnlessAVX512(t)

	data := make([]int32, 16)
	for i := range data {
		data[i] = int32(i*77 + 1)
	}
	i32 := LoadN[int32, One](data)
	got := avx512I32ToI8(i32)
	if got.NumLanes() != 64 {
		t.Fatalf("NumLanes: got %d, want 64", got.NumLanes())
	}
	for i := 16; i < 64; i++ {
		if got.Lane(i) != 0 {
			t.Errorf("lane %d: got %d, want 0", i, got.Lane(i))
		}
	}
}

func BenchmarkAVX512VsPortable(b *testing.B) {
	skipUnlessAVX512(b)
	rng := rand.New(rand.NewSource(3))

	f32 := LoadN[float32, One](randBits32(rng, 16))
	i32 := LoadN[int32, One](randInt32s(rng, 16))
	i64s := make([]int64, 16)
	for i := range i64s {
		i64s[i] = int64(rng.Uint64())
	}
	i64 := LoadN[int64, Two](i64s)
	bytes := make([]int8, 64)
	for i := range bytes {
		bytes[i] = int8(rng.Uint32())
	}
	i8 := LoadN[int8, One](bytes)

	bench := func(name string, base, avx512 func()) {
		b.Run(name+"/Base", func(b *testing.B) {
			for b.Loop() {
				base()
			}
		})
		b.Run(name+"/AVX512", func(b *testing.B) {
			for b.Loop() {
				avx512()
			}
		})
	}
	bench("F32ToBF16", func() { _ = BaseF32ToBF16(f32) }, func() { _ = avx512F32ToBF16(f32) })
	bench("I64ToF32", func() { _ = BaseI64ToF32(i64) }, func() { _ = avx512I64ToF32(i64) })
	bench("F32ToI64", func() { _ = BaseF32ToI64(f32) }, func() { _ = avx512F32ToI64(f32) })
	bench("I32ToI64", func() { _ = BaseI32ToI64(i32) }, func() { _ = avx512I32ToI64(i32) })
	bench("F32ToI8", func() { _ = BaseF32ToI8(f32) }, func() { _ = avx512F32ToI8(f32) })
	bench("I8ToF32", func() { _ = BaseI8ToF32(i8) }, func() { _ = avx512I8ToF32(i8) })
}
