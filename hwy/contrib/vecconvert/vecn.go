package vecconvert

import "github.com/ajroetker/go-highway-convert/hwy"

// Size is the register count of a group, fixed by its type.
type Size interface {
	One | Two
	Count() int
}

// One is the size of a single-register group.
type One struct{}

// Count returns 1.
func (One) Count() int { return 1 }

// Two is the size of a two-register group.
type Two struct{}

// Count returns 2.
func (Two) Count() int { return 2 }

// VecN is an ordered group of N vector registers of lane type T.
//
// Logical element i maps to register i/MaxLanes[T](), lane i%MaxLanes[T]().
// The zero value reads as all zero lanes.
type VecN[T hwy.Lanes, N Size] struct {
	regs [2]hwy.Vec[T]
}

// Make1 wraps a single register as a group.
func Make1[T hwy.Lanes](v hwy.Vec[T]) VecN[T, One] {
	return VecN[T, One]{regs: [2]hwy.Vec[T]{v}}
}

// Make2 groups two registers; lo holds the lower logical elements.
func Make2[T hwy.Lanes](lo, hi hwy.Vec[T]) VecN[T, Two] {
	return VecN[T, Two]{regs: [2]hwy.Vec[T]{lo, hi}}
}

// LoadN fills a group from consecutive elements of src. Elements past the
// end of src are zero.
func LoadN[T hwy.Lanes, N Size](src []T) VecN[T, N] {
	var g VecN[T, N]
	lanes := hwy.MaxLanes[T]()
	for r := range g.NumRegs() {
		start := min(r*lanes, len(src))
		g.regs[r] = hwy.Load(src[start:])
	}
	return g
}

// NumRegs returns N.
func (g VecN[T, N]) NumRegs() int {
	var n N
	return n.Count()
}

// NumLanes returns the logical element count, N * MaxLanes[T]().
func (g VecN[T, N]) NumLanes() int {
	return g.NumRegs() * hwy.MaxLanes[T]()
}

// Reg returns register r. r must be less than NumRegs.
func (g VecN[T, N]) Reg(r int) hwy.Vec[T] {
	if r >= g.NumRegs() {
		panic("vecconvert: register index out of range")
	}
	return g.regs[r]
}

// Lane returns logical element i, or zero when i is out of range.
func (g VecN[T, N]) Lane(i int) T {
	lanes := hwy.MaxLanes[T]()
	if i < 0 || i >= g.NumRegs()*lanes {
		var zero T
		return zero
	}
	return g.regs[i/lanes].Lane(i % lanes)
}

// Store writes the group's NumLanes logical elements to dst in order,
// stopping at the end of dst. Lanes the group does not hold, as in the zero
// value, are written as zero.
func (g VecN[T, N]) Store(dst []T) {
	lanes := hwy.MaxLanes[T]()
	for r := range g.NumRegs() {
		start := r * lanes
		if start >= len(dst) {
			return
		}
		part := dst[start:min(start+lanes, len(dst))]
		n := copy(part, g.regs[r].Data())
		clear(part[n:])
	}
}
