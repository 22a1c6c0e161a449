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

package vecconvert

import "github.com/ajroetker/go-highway-convert/hwy"

// Portable kernel bodies built on the hwy register primitives. They run on
// every target and are the reference the AVX-512 bodies must match.

// BaseBF16ToF32 widens the lower half of a bfloat16 register to float32.
func BaseBF16ToF32(src VecN[hwy.BFloat16, One]) VecN[float32, One] {
	return Make1(hwy.PromoteLowerBF16ToF32(src.regs[0]))
}

// BaseF32ToBF16 narrows float32 into the lower half of a bfloat16 register.
func BaseF32ToBF16(src VecN[float32, One]) VecN[hwy.BFloat16, One] {
	return Make1(hwy.DemoteF32ToBF16Lower(src.regs[0]))
}

// BaseF16ToF32 widens the lower half of a binary16 register to float32.
func BaseF16ToF32(src VecN[hwy.Float16, One]) VecN[float32, One] {
	return Make1(hwy.PromoteLowerF16ToF32(src.regs[0]))
}

// BaseF32ToF16 narrows float32 into the lower half of a binary16 register.
func BaseF32ToF16(src VecN[float32, One]) VecN[hwy.Float16, One] {
	return Make1(hwy.DemoteF32ToF16Lower(src.regs[0]))
}

// BaseI64ToF32 converts two int64 registers into one float32 register.
func BaseI64ToF32(src VecN[int64, Two]) VecN[float32, One] {
	return Make1(hwy.ConvertTwoI64ToF32(src.regs[0], src.regs[1]))
}

// BaseF32ToI64 truncates one float32 register into two int64 registers.
func BaseF32ToI64(src VecN[float32, One]) VecN[int64, Two] {
	v := src.regs[0]
	return Make2(hwy.TruncLowerF32ToI64(v), hwy.TruncUpperF32ToI64(v))
}

// BaseI32ToI64 sign-extends one int32 register into two int64 registers.
func BaseI32ToI64(src VecN[int32, One]) VecN[int64, Two] {
	v := src.regs[0]
	return Make2(hwy.PromoteLowerI32ToI64(v), hwy.PromoteUpperI32ToI64(v))
}

// BaseI64ToI32 keeps the low 32 bits of two int64 registers.
func BaseI64ToI32(src VecN[int64, Two]) VecN[int32, One] {
	return Make1(hwy.TruncateTwoI64ToI32(src.regs[0], src.regs[1]))
}

// BaseI8ToI32 sign-extends the lowest quarter of an int8 register.
func BaseI8ToI32(src VecN[int8, One]) VecN[int32, One] {
	return Make1(hwy.PromoteQuarterI8ToI32(src.regs[0]))
}

// BaseU8ToI32 zero-extends the lowest quarter of a uint8 register.
func BaseU8ToI32(src VecN[uint8, One]) VecN[int32, One] {
	return Make1(hwy.PromoteQuarterU8ToI32(src.regs[0]))
}

// BaseI32ToI8 keeps the low 8 bits of each int32 lane.
func BaseI32ToI8(src VecN[int32, One]) VecN[int8, One] {
	return Make1(hwy.TruncateI32ToI8Quarter(src.regs[0]))
}

// BaseI32ToU8 keeps the low 8 bits of each int32 lane.
func BaseI32ToU8(src VecN[int32, One]) VecN[uint8, One] {
	return Make1(hwy.TruncateI32ToU8Quarter(src.regs[0]))
}

// BaseF32ToI8 narrows float32 to int8 with saturation.
func BaseF32ToI8(src VecN[float32, One]) VecN[int8, One] {
	return Make1(hwy.DemoteF32ToI8Sat(src.regs[0]))
}

// BaseF32ToU8 narrows float32 to uint8 with saturation.
func BaseF32ToU8(src VecN[float32, One]) VecN[uint8, One] {
	return Make1(hwy.DemoteF32ToU8Sat(src.regs[0]))
}

// BaseI8ToF32 converts the lowest quarter of an int8 register to float32.
func BaseI8ToF32(src VecN[int8, One]) VecN[float32, One] {
	return Make1(hwy.ConvertQuarterI8ToF32(src.regs[0]))
}

// BaseU8ToF32 converts the lowest quarter of a uint8 register to float32.
func BaseU8ToF32(src VecN[uint8, One]) VecN[float32, One] {
	return Make1(hwy.ConvertQuarterU8ToF32(src.regs[0]))
}
