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

package hwy

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

const simdExperiment = true

// CPU feature flags for the conversion kernels.
var (
	// hasAVX512DQ gates VCVTQQ2PS / VCVTTPS2QQ (int64 <-> float32).
	hasAVX512DQ bool

	// hasAVX512BW gates VPMOVSXBD-style byte widening and VPMOVDB narrowing
	// used by the 8-bit kernels.
	hasAVX512BW bool

	// hasF16C indicates F16C support: VCVTPH2PS / VCVTPS2PH.
	// F16C is detected via CPUID leaf 1, ECX bit 29
	hasF16C bool

	// hasAVX512BF16 indicates AVX-512 BF16 support (VCVTNEPS2BF16).
	hasAVX512BF16 bool
)

func init() {
	detectFeatureFlags()

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Use actual CPU detection from archsimd package
	if archsimd.X86.AVX512() {
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	} else if archsimd.X86.AVX2() {
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	} else {
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}

func detectFeatureFlags() {
	if cpu.X86.HasAVX512 {
		hasAVX512DQ = cpu.X86.HasAVX512DQ
		hasAVX512BW = cpu.X86.HasAVX512BW
		hasAVX512BF16 = cpu.X86.HasAVX512BF16
	}
	// F16C is typically present with FMA (Haswell+), and FMA is a good proxy
	// since all FMA-capable CPUs also have F16C.
	if cpu.X86.HasAVX {
		hasF16C = cpu.X86.HasFMA
	}
}

// HasAVX512DQ returns true if the CPU supports AVX-512 DQ instructions.
// The int64 <-> float32 kernels need it.
func HasAVX512DQ() bool {
	return hasAVX512DQ
}

// HasAVX512BW returns true if the CPU supports AVX-512 BW instructions.
// The 8-bit kernels need it.
func HasAVX512BW() bool {
	return hasAVX512BW
}

// HasF16C returns true if the CPU supports F16C instructions.
// F16C provides hardware-accelerated float16 <-> float32 conversions.
// Present on Intel Haswell+ and AMD Piledriver+ CPUs.
func HasF16C() bool {
	return hasF16C
}

// HasAVX512BF16 returns true if the CPU supports AVX-512 BF16 instructions.
// Present on Intel Cooper Lake+ and AMD Zen 4+ CPUs.
func HasAVX512BF16() bool {
	return hasAVX512BF16
}

// HasARMFP16 returns false on x86 (ARM FP16 is ARM-specific).
func HasARMFP16() bool {
	return false
}

// HasARMBF16 returns false on x86 (ARM BF16 is ARM-specific).
func HasARMBF16() bool {
	return false
}
