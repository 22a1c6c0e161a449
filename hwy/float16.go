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

import (
	"math"

	"github.com/x448/float16"
)

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Exponent bias: 15
//   - Max value: 65504
//   - Min positive normal: ~6.10e-5
//   - Smallest denormal: ~5.96e-8
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero      Float16 = 0x0000 // Positive zero
	Float16NegZero   Float16 = 0x8000 // Negative zero
	Float16One       Float16 = 0x3C00 // 1.0
	Float16NegOne    Float16 = 0xBC00 // -1.0
	Float16MaxValue  Float16 = 0x7BFF // 65504 (max finite value)
	Float16MinNormal Float16 = 0x0400 // 2^-14 (~6.10e-5, smallest normal)
	Float16MinValue  Float16 = 0x0001 // Smallest denormal (~5.96e-8)
	Float16Inf       Float16 = 0x7C00 // Positive infinity
	Float16NegInf    Float16 = 0xFC00 // Negative infinity
	Float16NaN       Float16 = 0x7E00 // Quiet NaN (canonical)

	float16QuietBit = 0x0200
)

// Float16ToFloat32 converts a single Float16 to float32.
// The conversion is exact for every non-NaN bit pattern. NaNs keep their
// payload and come back quiet, as VCVTPH2PS does.
func Float16ToFloat32(h Float16) float32 {
	f := float16.Frombits(uint16(h)).Float32()
	if h.IsNaN() {
		return math.Float32frombits(math.Float32bits(f) | 0x00400000)
	}
	return f
}

// Float32ToFloat16 converts a float32 to Float16 with round-to-nearest-even.
//
// Values beyond the half range become infinity, values below half the
// smallest denormal become signed zero. NaN inputs come back quiet, which is
// what VCVTPS2PH produces for signaling NaNs.
func Float32ToFloat16(f float32) Float16 {
	if bits := math.Float32bits(f); bits&0x7FFFFFFF > 0x7F800000 {
		sign := Float16((bits >> 16) & 0x8000)
		payload := Float16((bits >> 13) & 0x03FF)
		return sign | Float16Inf | float16QuietBit | payload
	}
	return Float16(float16.Fromfloat32(f).Bits())
}
