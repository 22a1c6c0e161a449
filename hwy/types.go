// Package hwy provides the portable vector-register layer used by the
// conversion kernels in hwy/contrib/vecconvert.
//
// It follows the Highway C++ library's split between a portable vector handle
// and per-target implementations: every primitive here has a pure Go body
// that works on any CPU, and the AVX-512 files (built with
// GOEXPERIMENT=simd on amd64) provide the same primitives on native
// archsimd registers.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-highway-convert/hwy"
//
//	v := hwy.Load(data)                  // one full-width register
//	lo := hwy.PromoteLowerI32ToI64(v)    // sign-extend the low half
//	hi := hwy.PromoteUpperI32ToI64(v)    // sign-extend the high half
//	back := hwy.TruncateTwoI64ToI32(lo, hi)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
// Float16 and BFloat16 satisfy it through their uint16 storage.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Bytes is a constraint for the 8-bit lane types.
type Bytes interface {
	~int8 | ~uint8
}

// Vec is a portable handle for one hardware vector register.
//
// A Vec always holds MaxLanes[T]() lanes for the width detected at startup.
// It is immutable once produced: every primitive returns a new Vec.
//
// Vec instances should not be created directly; use Load, LoadFull, Set, Zero or Iota.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Lane returns lane i, or the zero value when i is out of range.
func (v Vec[T]) Lane(i int) T {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[i]
}

// Data returns the underlying slice representation of the vector.
// The slice is shared with v and must not be modified.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}
