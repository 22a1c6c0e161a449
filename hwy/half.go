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

// halfLayout holds the exponent and mantissa masks of a 16-bit float format.
// Both formats keep the sign in bit 15.
type halfLayout struct {
	exp, mant uint16
}

var (
	bf16Layout = halfLayout{exp: 0x7F80, mant: 0x007F}
	f16Layout  = halfLayout{exp: 0x7C00, mant: 0x03FF}
)

func (l halfLayout) isNaN(b uint16) bool { return b&l.exp == l.exp && b&l.mant != 0 }
func (l halfLayout) isInf(b uint16) bool { return b&0x7FFF == l.exp }
func (l halfLayout) isDenormal(b uint16) bool { return b&l.exp == 0 && b&l.mant != 0 }
func isZero16(b uint16) bool { return b&0x7FFF == 0 }
func isNegative16(b uint16) bool { return b&0x8000 != 0 }

// IsNaN reports whether b is a NaN.
func (b BFloat16) IsNaN() bool { return bf16Layout.isNaN(uint16(b)) }

// IsInf reports whether b is an infinity of either sign.
func (b BFloat16) IsInf() bool { return bf16Layout.isInf(uint16(b)) }

// IsDenormal reports whether b is subnormal.
func (b BFloat16) IsDenormal() bool { return bf16Layout.isDenormal(uint16(b)) }

// IsZero reports whether b is a zero of either sign.
func (b BFloat16) IsZero() bool { return isZero16(uint16(b)) }

// IsNegative reports whether the sign bit is set, including for -0 and NaN.
func (b BFloat16) IsNegative() bool { return isNegative16(uint16(b)) }

// Float32 widens b exactly.
func (b BFloat16) Float32() float32 { return BFloat16ToFloat32(b) }

// Bits returns the raw encoding.
func (b BFloat16) Bits() uint16 { return uint16(b) }

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool { return f16Layout.isNaN(uint16(h)) }

// IsInf reports whether h is an infinity of either sign.
func (h Float16) IsInf() bool { return f16Layout.isInf(uint16(h)) }

// IsDenormal reports whether h is subnormal.
func (h Float16) IsDenormal() bool { return f16Layout.isDenormal(uint16(h)) }

// IsZero reports whether h is a zero of either sign.
func (h Float16) IsZero() bool { return isZero16(uint16(h)) }

// IsNegative reports whether the sign bit is set, including for -0 and NaN.
func (h Float16) IsNegative() bool { return isNegative16(uint16(h)) }

// Float32 widens h exactly, quieting NaNs.
func (h Float16) Float32() float32 { return Float16ToFloat32(h) }

// Bits returns the raw encoding.
func (h Float16) Bits() uint16 { return uint16(h) }
