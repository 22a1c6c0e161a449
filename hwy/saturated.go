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

// This file provides saturating float32 -> 8-bit demotions.
// Saturated operations clamp results to the type's valid range instead of wrapping.
//
// The conversion runs in two steps, mirroring VCVTTPS2DQ followed by the
// saturating packs (VPACKSSDW, VPACKSSWB / VPACKUSWB):
//  1. truncate toward zero to int32 (NaN and |x| >= 2^31 give math.MinInt32)
//  2. clamp the int32 to the 8-bit range
//
// So 1000.0 -> 127 and -1000.0 -> -128 for int8, while NaN and inputs too
// large for int32 land on the minimum (-128 for int8, 0 for uint8).

// DemoteF32ToI8Sat narrows float32 to int8 with saturation.
// The result fills the lowest quarter of an int8 register; other lanes are zero.
func DemoteF32ToI8Sat(v Vec[float32]) Vec[int8] {
	result := make([]int8, MaxLanes[int8]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = saturateI32ToI8(TruncF32ToInt32(v.data[i]))
	}
	return Vec[int8]{data: result}
}

// DemoteF32ToU8Sat narrows float32 to uint8 with saturation.
// The result fills the lowest quarter of a uint8 register; other lanes are zero.
func DemoteF32ToU8Sat(v Vec[float32]) Vec[uint8] {
	result := make([]uint8, MaxLanes[uint8]())
	n := min(len(result), len(v.data))
	for i := range n {
		result[i] = saturateI32ToU8(TruncF32ToInt32(v.data[i]))
	}
	return Vec[uint8]{data: result}
}

func saturateI32ToI8(x int32) int8 {
	if x > 127 {
		return 127
	}
	if x < -128 {
		return -128
	}
	return int8(x)
}

func saturateI32ToU8(x int32) uint8 {
	if x > 255 {
		return 255
	}
	if x < 0 {
		return 0
	}
	return uint8(x)
}
