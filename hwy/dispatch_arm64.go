//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

const simdExperiment = false

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
}

// HasAVX512DQ returns false on ARM.
func HasAVX512DQ() bool {
	return false
}

// HasAVX512BW returns false on ARM.
func HasAVX512BW() bool {
	return false
}

// HasF16C returns false on ARM. Use HasARMFP16 instead.
func HasF16C() bool {
	return false
}

// HasAVX512BF16 returns false on ARM. Use HasARMBF16 instead.
func HasAVX512BF16() bool {
	return false
}

// HasARMFP16 reports FP16 NEON arithmetic (ARMv8.2-A).
func HasARMFP16() bool {
	return cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
}

// HasARMBF16 reports BF16 support. x/sys/cpu does not expose it on every
// OS yet, so this stays false.
func HasARMBF16() bool {
	return false
}
