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

package hwy

// This file provides pure Go (scalar) implementations of the 16-bit float
// promotions and demotions between one 16-bit register and one float32
// register.
//
// A 16-bit register holds twice as many lanes as a float32 register of the
// same width, so only its lower half takes part:
//
//	Promote: 16-bit lanes [0, n) -> float32 lanes [0, n)
//	Demote:  float32 lanes [0, n) -> 16-bit lanes [0, n), lanes [n, 2n) zero
//
// where n = MaxLanes[float32](). This matches VCVTPH2PS / VCVTPS2PH on the
// lower 256 bits of a zmm register.

// PromoteLowerBF16ToF32 widens the lower half of a BFloat16 register to float32.
// Each value is shifted into the high half of a float32; no rounding occurs.
func PromoteLowerBF16ToF32(v Vec[BFloat16]) Vec[float32] {
	result := make([]float32, MaxLanes[float32]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = BFloat16ToFloat32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// DemoteF32ToBF16Lower narrows float32 to BFloat16 into the lower half of a
// BFloat16 register, rounding to nearest even. The upper half is zero.
func DemoteF32ToBF16Lower(v Vec[float32]) Vec[BFloat16] {
	result := make([]BFloat16, MaxLanes[BFloat16]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = Float32ToBFloat16(v.data[i])
	}
	return Vec[BFloat16]{data: result}
}

// PromoteLowerF16ToF32 widens the lower half of a Float16 register to float32.
// The conversion is exact.
func PromoteLowerF16ToF32(v Vec[Float16]) Vec[float32] {
	result := make([]float32, MaxLanes[float32]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = Float16ToFloat32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// DemoteF32ToF16Lower narrows float32 to Float16 into the lower half of a
// Float16 register with round-to-nearest-even. Magnitudes above 65504 that
// do not round down become infinity. The upper half is zero.
func DemoteF32ToF16Lower(v Vec[float32]) Vec[Float16] {
	result := make([]Float16, MaxLanes[Float16]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = Float32ToFloat16(v.data[i])
	}
	return Vec[Float16]{data: result}
}
