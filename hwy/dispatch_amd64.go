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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// Without archsimd the AVX-512 conversion kernels are not compiled, so the
// level stays scalar. The feature flags are still reported for diagnostics.

const simdExperiment = false

// CPU feature flags reported by x/sys/cpu.
var (
	// hasAVX512DQ gates VCVTQQ2PS / VCVTTPS2QQ (int64 <-> float32).
	hasAVX512DQ bool

	// hasAVX512BW gates the byte/word moves used by the 8-bit kernels.
	hasAVX512BW bool

	// hasF16C indicates F16C support: float16 <-> float32 conversions (Haswell+)
	hasF16C bool

	// hasAVX512BF16 indicates AVX-512 BF16 support (Cooper Lake+)
	hasAVX512BF16 bool
)

func init() {
	detectFeatureFlags()

	// HWY_NO_SIMD makes no difference here: scalar is the only level.
	setScalarMode()
}

func detectFeatureFlags() {
	if cpu.X86.HasAVX512 {
		hasAVX512DQ = cpu.X86.HasAVX512DQ
		hasAVX512BW = cpu.X86.HasAVX512BW
		hasAVX512BF16 = cpu.X86.HasAVX512BF16
	}
	// F16C detection: use FMA as a proxy (F16C is present on all FMA-capable CPUs)
	if cpu.X86.HasAVX {
		hasF16C = cpu.X86.HasFMA
	}
}

// HasAVX512DQ returns true if the CPU supports AVX-512 DQ instructions.
func HasAVX512DQ() bool {
	return hasAVX512DQ
}

// HasAVX512BW returns true if the CPU supports AVX-512 BW instructions.
func HasAVX512BW() bool {
	return hasAVX512BW
}

// HasF16C returns true if the CPU supports F16C instructions.
// F16C provides hardware-accelerated float16 <-> float32 conversions.
func HasF16C() bool {
	return hasF16C
}

// HasAVX512BF16 returns true if the CPU supports AVX-512 BF16 instructions.
func HasAVX512BF16() bool {
	return hasAVX512BF16
}

// HasARMFP16 returns false on x86.
func HasARMFP16() bool {
	return false
}

// HasARMBF16 returns false on x86.
func HasARMBF16() bool {
	return false
}
