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

import "math"

// BFloat16 represents a Brain Float 16 (bfloat16) number.
//
// Format: Sign (1 bit) | Exponent (8 bits) | Mantissa (7 bits)
//
//	S | EEEEEEEE | MMMMMMM
//
// A BFloat16 is the top 16 bits of a float32: same exponent range, 7 bits of
// mantissa. Widening is exact (append 16 zero bits); narrowing rounds the
// discarded low half to nearest even.
type BFloat16 uint16

// BFloat16 constants for special values.
const (
	BFloat16Zero      BFloat16 = 0x0000 // Positive zero
	BFloat16NegZero   BFloat16 = 0x8000 // Negative zero
	BFloat16One       BFloat16 = 0x3F80 // 1.0
	BFloat16NegOne    BFloat16 = 0xBF80 // -1.0
	BFloat16MaxValue  BFloat16 = 0x7F7F // ~3.39e38 (max finite value)
	BFloat16MinNormal BFloat16 = 0x0080 // ~1.18e-38 (smallest normal)
	BFloat16MinValue  BFloat16 = 0x0001 // Smallest denormal
	BFloat16Inf       BFloat16 = 0x7F80 // Positive infinity
	BFloat16NegInf    BFloat16 = 0xFF80 // Negative infinity
	BFloat16NaN       BFloat16 = 0x7FC0 // Quiet NaN (canonical)
)

// BFloat16ToFloat32 converts a single BFloat16 to float32.
// The 16 bits become the high half of the float32; the low mantissa bits are zero.
func BFloat16ToFloat32(b BFloat16) float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Float32ToBFloat16 converts a float32 to BFloat16, keeping the top 16 bits
// rounded to nearest even.
//
// NaN inputs return the canonical quiet NaN with the input's sign, so a
// payload living only in the discarded bits cannot turn into infinity.
func Float32ToBFloat16(f float32) BFloat16 {
	bits := math.Float32bits(f)
	if bits&0x7FFFFFFF > 0x7F800000 {
		return BFloat16((bits>>16)&0x8000) | BFloat16NaN
	}
	// 0x7FFF plus the lowest kept bit rounds ties toward an even result.
	bits += 0x7FFF + (bits>>16)&1
	return BFloat16(bits >> 16)
}
