package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	// This is the level the register conversion kernels are specialised for.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// MarshalText encodes the level by name.
func (d DispatchLevel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx512", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Highway will use scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX-512 (512 bits / 64 bytes):
//   - float32: 64/4 = 16 lanes
//   - int64: 64/8 = 8 lanes
//   - int8: 64/1 = 64 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

// Capabilities is a snapshot of the detected dispatch level and the CPU
// features the conversion kernels care about.
type Capabilities struct {
	Level         DispatchLevel `json:"level" yaml:"level"`
	Name          string        `json:"name" yaml:"name"`
	Width         int           `json:"width" yaml:"width"`
	AVX512DQ      bool          `json:"avx512dq" yaml:"avx512dq"`
	AVX512BW      bool          `json:"avx512bw" yaml:"avx512bw"`
	F16C          bool          `json:"f16c" yaml:"f16c"`
	AVX512BF16    bool          `json:"avx512bf16" yaml:"avx512bf16"`
	ARMFP16       bool          `json:"armfp16" yaml:"armfp16"`
	ARMBF16       bool          `json:"armbf16" yaml:"armbf16"`
	SIMDExtension bool          `json:"simd_experiment" yaml:"simd_experiment"`
}

// CurrentCapabilities returns the capabilities detected at startup.
func CurrentCapabilities() Capabilities {
	return Capabilities{
		Level:         currentLevel,
		Name:          currentName,
		Width:         currentWidth,
		AVX512DQ:      HasAVX512DQ(),
		AVX512BW:      HasAVX512BW(),
		F16C:          HasF16C(),
		AVX512BF16:    HasAVX512BF16(),
		ARMFP16:       HasARMFP16(),
		ARMBF16:       HasARMBF16(),
		SIMDExtension: simdExperiment,
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
