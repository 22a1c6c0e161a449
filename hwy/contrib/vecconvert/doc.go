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

// Package vecconvert converts groups of vector registers from one lane type
// to another while keeping the logical element order.
//
// # Register Groups
//
// A VecN[T, N] holds N registers of lane type T, where N is the size type One
// or Two. Logical element i lives in register i/lanes, lane i%lanes. Groups
// of different lane widths but equal logical length use different N: a group
// of int64 needs two registers to carry what one float32 register carries.
//
// # Kernels
//
// Every supported (destination, source) pair has a concrete kernel:
//
//	BF16ToF32, F32ToBF16   bfloat16 <-> float32 (round to nearest even down)
//	F16ToF32,  F32ToF16    binary16 <-> float32 (overflow to infinity down)
//	I64ToF32,  F32ToI64    int64 x2 <-> float32 (truncating, never faults)
//	I32ToI64,  I64ToI32    int32 <-> int64 x2 (sign extend / wrap)
//	I8ToI32,   U8ToI32     8-bit -> int32 (sign / zero extend)
//	I32ToI8,   I32ToU8     int32 -> 8-bit (wrap)
//	F32ToI8,   F32ToU8     float32 -> 8-bit (saturate)
//	I8ToF32,   U8ToF32     8-bit -> float32 (exact)
//	I64ToI8,   I64ToU8     int64 x2 -> int32 -> 8-bit
//	I8ToI64,   U8ToI64     8-bit -> int32 -> int64 x2
//
// The overflow policies differ on purpose and follow the x86 instructions
// the kernels model: float to int64 truncates, int64 to int32 wraps, and
// float to 8-bit saturates. Kernels are pure and safe for concurrent use.
//
// Calling a kernel with a group of the wrong size does not compile. Convert
// picks a kernel from its type arguments and falls back to a lane-wise
// conversion for pairs without one.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-highway-convert/hwy"
//	    "github.com/ajroetker/go-highway-convert/hwy/contrib/vecconvert"
//	)
//
//	src := vecconvert.LoadN[int32, vecconvert.One](values)
//	wide := vecconvert.I32ToI64(src)        // VecN[int64, Two]
//	back := vecconvert.Convert[int32, vecconvert.One](wide)
//
// # Targets
//
// With GOEXPERIMENT=simd on amd64 and an AVX-512 CPU, the kernels run on
// archsimd registers. Everywhere else the portable bodies in the hwy package
// serve the same calls, and HWY_NO_SIMD=1 forces them on any machine.
package vecconvert
