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

// Kernel converts a group of SN registers of ST lanes into a group of DN
// registers of DT lanes. Type arguments follow the (destination, source)
// order used by Convert.
type Kernel[DT hwy.Lanes, DN Size, ST hwy.Lanes, SN Size] func(VecN[ST, SN]) VecN[DT, DN]

// Compose chains first and second through the intermediate group type.
func Compose[DT hwy.Lanes, DN Size, MT hwy.Lanes, MN Size, ST hwy.Lanes, SN Size](
	first Kernel[MT, MN, ST, SN], second Kernel[DT, DN, MT, MN],
) Kernel[DT, DN, ST, SN] {
	return func(src VecN[ST, SN]) VecN[DT, DN] {
		return second(first(src))
	}
}

// Resolution says how Convert serves a type tuple.
type Resolution int

const (
	// Generic means no kernel covers the tuple; Fallback converts lane by lane.
	Generic Resolution = iota
	// Direct means a single kernel covers the tuple.
	Direct
	// Composed means two kernels chained through int32 cover the tuple.
	Composed
)

// String returns the resolution name.
func (r Resolution) String() string {
	switch r {
	case Direct:
		return "direct"
	case Composed:
		return "composed"
	default:
		return "fallback"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Convert converts src to a group of DN registers of DT lanes using the
// kernel registered for the tuple, or Fallback when there is none.
//
// The type switch in resolve depends only on type arguments, so each
// instantiation settles on one branch.
func Convert[DT hwy.Lanes, DN Size, ST hwy.Lanes, SN Size](src VecN[ST, SN]) VecN[DT, DN] {
	if k, _ := resolve[DT, DN, ST, SN](); k != nil {
		return k(src)
	}
	return Fallback[DT, DN](src)
}

// Lookup reports how Convert resolves the tuple.
func Lookup[DT hwy.Lanes, DN Size, ST hwy.Lanes, SN Size]() Resolution {
	_, r := resolve[DT, DN, ST, SN]()
	return r
}

func resolve[DT hwy.Lanes, DN Size, ST hwy.Lanes, SN Size]() (Kernel[DT, DN, ST, SN], Resolution) {
	var k Kernel[DT, DN, ST, SN]
	r := Direct
	switch p := any(&k).(type) {
	case *Kernel[float32, One, hwy.BFloat16, One]:
		*p = BF16ToF32
	case *Kernel[hwy.BFloat16, One, float32, One]:
		*p = F32ToBF16
	case *Kernel[float32, One, hwy.Float16, One]:
		*p = F16ToF32
	case *Kernel[hwy.Float16, One, float32, One]:
		*p = F32ToF16
	case *Kernel[float32, One, int64, Two]:
		*p = I64ToF32
	case *Kernel[int64, Two, float32, One]:
		*p = F32ToI64
	case *Kernel[int64, Two, int32, One]:
		*p = I32ToI64
	case *Kernel[int32, One, int64, Two]:
		*p = I64ToI32
	case *Kernel[int32, One, int8, One]:
		*p = I8ToI32
	case *Kernel[int32, One, uint8, One]:
		*p = U8ToI32
	case *Kernel[int8, One, int32, One]:
		*p = I32ToI8
	case *Kernel[uint8, One, int32, One]:
		*p = I32ToU8
	case *Kernel[int8, One, float32, One]:
		*p = F32ToI8
	case *Kernel[uint8, One, float32, One]:
		*p = F32ToU8
	case *Kernel[float32, One, int8, One]:
		*p = I8ToF32
	case *Kernel[float32, One, uint8, One]:
		*p = U8ToF32
	case *Kernel[int8, One, int64, Two]:
		*p, r = I64ToI8, Composed
	case *Kernel[uint8, One, int64, Two]:
		*p, r = I64ToU8, Composed
	case *Kernel[int64, Two, int8, One]:
		*p, r = I8ToI64, Composed
	case *Kernel[int64, Two, uint8, One]:
		*p, r = U8ToI64, Composed
	default:
		return nil, Generic
	}
	return k, r
}

// LogicalCount returns how many logical elements a conversion of the tuple
// carries on the current target: the smaller of the two group lengths.
// Destination lanes past this count are zero.
func LogicalCount[DT hwy.Lanes, DN Size, ST hwy.Lanes, SN Size]() int {
	var dn DN
	var sn SN
	return min(dn.Count()*hwy.MaxLanes[DT](), sn.Count()*hwy.MaxLanes[ST]())
}

// Fallback converts the first LogicalCount elements one at a time with Go
// conversions. Float16 and BFloat16 lanes go through float32 with the hwy
// scalar conversions.
func Fallback[DT hwy.Lanes, DN Size, ST hwy.Lanes, SN Size](src VecN[ST, SN]) VecN[DT, DN] {
	n := LogicalCount[DT, DN, ST, SN]()
	var dn DN
	out := make([]DT, dn.Count()*hwy.MaxLanes[DT]())
	for i := range n {
		out[i] = convertLane[DT](src.Lane(i))
	}
	return LoadN[DT, DN](out)
}

func convertLane[DT, ST hwy.Lanes](x ST) DT {
	switch v := any(x).(type) {
	case hwy.BFloat16:
		return fromFloat32[DT](hwy.BFloat16ToFloat32(v))
	case hwy.Float16:
		return fromFloat32[DT](hwy.Float16ToFloat32(v))
	}
	var zero DT
	switch any(zero).(type) {
	case hwy.BFloat16, hwy.Float16:
		return fromFloat32[DT](float32(x))
	}
	return DT(x)
}

func fromFloat32[DT hwy.Lanes](f float32) DT {
	var zero DT
	switch any(zero).(type) {
	case hwy.BFloat16:
		return any(hwy.Float32ToBFloat16(f)).(DT)
	case hwy.Float16:
		return any(hwy.Float32ToFloat16(f)).(DT)
	}
	return DT(f)
}
