package vecconvert

import "github.com/ajroetker/go-highway-convert/hwy"

// Kernel entry points. Each starts on the portable body and is replaced once
// at init by a target specific body when the CPU supports one
// (see z_vecconvert_amd64.go).
var (
	// BF16ToF32 widens bfloat16 lanes [0, n) to float32 by appending 16 zero
	// mantissa bits.
	BF16ToF32 func(VecN[hwy.BFloat16, One]) VecN[float32, One] = BaseBF16ToF32

	// F32ToBF16 keeps the top 16 bits of each float32, rounded to nearest
	// even, in bfloat16 lanes [0, n). NaNs become the quiet NaN 0x7FC0.
	F32ToBF16 func(VecN[float32, One]) VecN[hwy.BFloat16, One] = BaseF32ToBF16

	// F16ToF32 widens binary16 lanes [0, n) to float32 exactly.
	F16ToF32 func(VecN[hwy.Float16, One]) VecN[float32, One] = BaseF16ToF32

	// F32ToF16 rounds float32 to the nearest binary16, overflowing to
	// infinity, into lanes [0, n).
	F32ToF16 func(VecN[float32, One]) VecN[hwy.Float16, One] = BaseF32ToF16

	// I64ToF32 converts each int64 lane to the nearest float32.
	I64ToF32 func(VecN[int64, Two]) VecN[float32, One] = BaseI64ToF32

	// F32ToI64 truncates toward zero. NaN and out of range lanes become
	// math.MinInt64; nothing is raised.
	F32ToI64 func(VecN[float32, One]) VecN[int64, Two] = BaseF32ToI64

	// I32ToI64 sign-extends; the low half of the source goes to register 0.
	I32ToI64 func(VecN[int32, One]) VecN[int64, Two] = BaseI32ToI64

	// I64ToI32 keeps the low 32 bits of each lane.
	I64ToI32 func(VecN[int64, Two]) VecN[int32, One] = BaseI64ToI32

	// I8ToI32 sign-extends int8 lanes [0, n).
	I8ToI32 func(VecN[int8, One]) VecN[int32, One] = BaseI8ToI32

	// U8ToI32 zero-extends uint8 lanes [0, n).
	U8ToI32 func(VecN[uint8, One]) VecN[int32, One] = BaseU8ToI32

	// I32ToI8 keeps the low 8 bits of each lane in int8 lanes [0, n).
	I32ToI8 func(VecN[int32, One]) VecN[int8, One] = BaseI32ToI8

	// I32ToU8 keeps the low 8 bits of each lane in uint8 lanes [0, n).
	I32ToU8 func(VecN[int32, One]) VecN[uint8, One] = BaseI32ToU8

	// F32ToI8 truncates to int32 and clamps to [-128, 127]. NaN and lanes
	// beyond the int32 range give -128.
	F32ToI8 func(VecN[float32, One]) VecN[int8, One] = BaseF32ToI8

	// F32ToU8 truncates to int32 and clamps to [0, 255]. NaN and lanes
	// beyond the int32 range give 0.
	F32ToU8 func(VecN[float32, One]) VecN[uint8, One] = BaseF32ToU8

	// I8ToF32 converts int8 lanes [0, n) to float32 exactly.
	I8ToF32 func(VecN[int8, One]) VecN[float32, One] = BaseI8ToF32

	// U8ToF32 converts uint8 lanes [0, n) to float32 exactly.
	U8ToF32 func(VecN[uint8, One]) VecN[float32, One] = BaseU8ToF32
)

// There is no direct 8-bit <-> int64 instruction; these go through int32.
// They call the entry points at run time so they pick up target overrides.

// I64ToI8 wraps int64 lanes to int32 and then to int8.
func I64ToI8(src VecN[int64, Two]) VecN[int8, One] {
	return I32ToI8(I64ToI32(src))
}

// I64ToU8 wraps int64 lanes to int32 and then to uint8.
func I64ToU8(src VecN[int64, Two]) VecN[uint8, One] {
	return I32ToU8(I64ToI32(src))
}

// I8ToI64 sign-extends int8 lanes to int32 and then to int64.
func I8ToI64(src VecN[int8, One]) VecN[int64, Two] {
	return I32ToI64(I8ToI32(src))
}

// U8ToI64 zero-extends uint8 lanes to int32 and then sign-extends to int64,
// which cannot change a value below 256.
func U8ToI64(src VecN[uint8, One]) VecN[int64, Two] {
	return I32ToI64(U8ToI32(src))
}
