package verify

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/x448/float16"

	"github.com/ajroetker/go-highway-convert/hwy"
	"github.com/ajroetker/go-highway-convert/hwy/contrib/vecconvert"
	"github.com/ajroetker/go-highway-convert/hwy/contrib/workerpool"
)

type checker interface {
	name() string
	types() (src, dst string)
	run(ctx context.Context, pool *workerpool.Pool, opts Options) (KernelReport, error)
}

// domain describes the source values for a kernel. A positive size means
// every value at(0) .. at(size-1) is checked; otherwise edges come first and
// sample fills the rest.
type domain[T hwy.Lanes] struct {
	size   int
	at     func(i int) T
	edges  []T
	sample func(rng *rand.Rand) T
}

type check[DT hwy.Lanes, DN vecconvert.Size, ST hwy.Lanes, SN vecconvert.Size] struct {
	kernelName string
	kernel     vecconvert.Kernel[DT, DN, ST, SN]
	ref        func(ST) DT
	equal      func(got, want DT) bool
	src        domain[ST]
}

func newCheck[DT hwy.Lanes, DN vecconvert.Size, ST hwy.Lanes, SN vecconvert.Size](
	name string, kernel vecconvert.Kernel[DT, DN, ST, SN], ref func(ST) DT, src domain[ST],
) *check[DT, DN, ST, SN] {
	return &check[DT, DN, ST, SN]{kernelName: name, kernel: kernel, ref: ref, equal: sameValue[DT], src: src}
}

func (c *check[DT, DN, ST, SN]) name() string { return c.kernelName }

func (c *check[DT, DN, ST, SN]) types() (string, string) {
	return vecconvert.TypeName[ST](), vecconvert.TypeName[DT]()
}

func (c *check[DT, DN, ST, SN]) run(ctx context.Context, pool *workerpool.Pool, opts Options) (KernelReport, error) {
	count := vecconvert.LogicalCount[DT, DN, ST, SN]()
	var sn SN
	srcLanes := sn.Count() * hwy.MaxLanes[ST]()

	src, dst := c.types()
	rep := KernelReport{Name: c.kernelName, Src: src, Dst: dst, Exhaustive: c.src.size > 0}
	groups := opts.Samples
	if rep.Exhaustive {
		groups = (c.src.size + count - 1) / count
	}

	var (
		checked atomic.Int64
		once    sync.Once
		first   *Mismatch
	)
	err := pool.Sweep(ctx, groups, batchGroups, func(start, end int) error {
		rng := rand.New(rand.NewSource(opts.Seed + int64(start)))
		buf := make([]ST, srcLanes)
		for g := start; g < end; g++ {
			c.fill(buf, g, count, rng)
			in := vecconvert.LoadN[ST, SN](buf)
			out := c.kernel(in)
			for i := range out.NumLanes() {
				var want DT
				if i < count {
					want = c.ref(in.Lane(i))
				}
				got := out.Lane(i)
				if c.equal(got, want) {
					continue
				}
				m := &Mismatch{
					Lane:  i,
					Input: formatLane(in.Lane(i)),
					Got:   formatLane(got),
					Want:  formatLane(want),
				}
				once.Do(func() { first = m })
				return fmt.Errorf("%w: %s lane %d input %s: got %s, want %s",
					ErrMismatch, c.kernelName, i, m.Input, m.Got, m.Want)
			}
			checked.Add(int64(count))
		}
		return nil
	})
	rep.Checked = checked.Load()
	rep.Mismatch = first
	return rep, err
}

// fill loads the source values of group g into buf. Lanes past count are
// left as they are; the kernel does not read them.
func (c *check[DT, DN, ST, SN]) fill(buf []ST, g, count int, rng *rand.Rand) {
	for i := range count {
		idx := g*count + i
		switch {
		case c.src.size > 0:
			buf[i] = c.src.at(idx % c.src.size)
		case idx < len(c.src.edges):
			buf[i] = c.src.edges[idx]
		default:
			buf[i] = c.src.sample(rng)
		}
	}
}

// sameValue compares lanes exactly, treating any two float NaNs as equal.
func sameValue[T hwy.Lanes](got, want T) bool {
	if got == want {
		return true
	}
	switch g := any(got).(type) {
	case float32:
		return math.IsNaN(float64(g)) && math.IsNaN(float64(any(want).(float32)))
	case hwy.Float16:
		return g.IsNaN() && any(want).(hwy.Float16).IsNaN()
	}
	return false
}

func formatLane[T hwy.Lanes](v T) string {
	switch x := any(v).(type) {
	case float32:
		return fmt.Sprintf("%g (0x%08X)", x, math.Float32bits(x))
	case hwy.BFloat16:
		return fmt.Sprintf("%g (0x%04X)", x.Float32(), uint16(x))
	case hwy.Float16:
		return fmt.Sprintf("%g (0x%04X)", x.Float32(), uint16(x))
	}
	return fmt.Sprint(v)
}

func bits16[T ~uint16]() domain[T] {
	return domain[T]{size: 1 << 16, at: func(i int) T { return T(i) }}
}

func bytes8[T hwy.Bytes]() domain[T] {
	return domain[T]{size: 256, at: func(i int) T { return T(i) }}
}

var f32Edges = []float32{
	0, float32(math.Copysign(0, -1)), 1, -1, 0.5, -0.5, 2.5, -2.5,
	127, 127.5, 128, -128, -128.5, -129, 255, 255.5, 256, -0.99,
	65504, 65519, 65520, 0x1p-24, 0x1p-25, 0x1.8p-25, 0x1p-14,
	0x1p24 + 1, 0x1p31, -0x1p31, 0x1p62, 0x1p63, -0x1p63, 9.3e18, -9.3e18,
	math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32,
	float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
	math.Float32frombits(0x7F800001), math.Float32frombits(0xFFC00001),
	math.Float32frombits(0x3F808000), math.Float32frombits(0x3F818000),
	math.Float32frombits(0x7F7FFFFF), math.Float32frombits(0x00008000),
}

func f32Domain() domain[float32] {
	return domain[float32]{
		edges: f32Edges,
		sample: func(rng *rand.Rand) float32 {
			if rng.Intn(2) == 0 {
				return math.Float32frombits(rng.Uint32())
			}
			return float32(rng.NormFloat64() * 1000)
		},
	}
}

func i32Domain() domain[int32] {
	return domain[int32]{
		edges: []int32{0, 1, -1, 127, 128, -128, -129, 255, 256, 1 << 24, 1<<24 + 1, math.MaxInt32, math.MinInt32},
		sample: func(rng *rand.Rand) int32 {
			return int32(rng.Uint32())
		},
	}
}

func i64Domain() domain[int64] {
	return domain[int64]{
		edges: []int64{
			0, 1, -1, 255, 256, -129, math.MaxInt32, math.MaxInt32 + 1, math.MinInt32, math.MinInt32 - 1,
			1<<24 + 1, 1<<53 + 1, 1 << 62, math.MaxInt64, math.MinInt64,
		},
		sample: func(rng *rand.Rand) int64 {
			if rng.Intn(2) == 0 {
				return int64(int32(rng.Uint32()))
			}
			return int64(rng.Uint64())
		},
	}
}

// The references below are written from the lane semantics directly rather
// than through the hwy primitives the kernels are built on.

func refBF16ToF32(b hwy.BFloat16) float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// bf16Magnitude decodes a bfloat16 pattern in float64, reading the all-ones
// exponent as an ordinary one so the step past the largest finite value has
// a distance.
func bf16Magnitude(b uint32) float64 {
	exp := int(b>>7) & 0xFF
	mant := float64(b & 0x7F)
	if exp == 0 {
		return math.Ldexp(mant, -133)
	}
	return math.Ldexp(128+mant, exp-134)
}

func refF32ToBF16(f float32) hwy.BFloat16 {
	bits := math.Float32bits(f)
	sign := bits & 0x80000000
	if math.IsNaN(float64(f)) {
		return hwy.BFloat16(sign>>16 | 0x7FC0)
	}
	mag := math.Abs(float64(f))
	lo := (bits &^ 0x80000000) >> 16
	if lo >= 0x7F80 {
		return hwy.BFloat16(sign>>16 | lo)
	}
	hi := lo + 1
	dlo, dhi := mag-bf16Magnitude(lo), bf16Magnitude(hi)-mag
	pick := lo
	if dhi < dlo || (dhi == dlo && lo&1 == 1) {
		pick = hi
	}
	return hwy.BFloat16(sign>>16 | pick)
}

func refF16ToF32(h hwy.Float16) float32 {
	return float16.Frombits(uint16(h)).Float32()
}

func refF32ToF16(f float32) hwy.Float16 {
	return hwy.Float16(float16.Fromfloat32(f).Bits())
}

func refF32ToI64(f float32) int64 {
	t := math.Trunc(float64(f))
	if math.IsNaN(t) || t >= 0x1p63 || t < -0x1p63 {
		return math.MinInt64
	}
	return int64(t)
}

// truncI32 models VCVTTPS2DQ: NaN and results outside int32 give MinInt32.
func truncI32(f float32) int64 {
	t := math.Trunc(float64(f))
	if math.IsNaN(t) || t >= 0x1p31 || t < -0x1p31 {
		return math.MinInt32
	}
	return int64(t)
}

func refF32ToI8(f float32) int8 {
	return int8(max(-128, min(127, truncI32(f))))
}

func refF32ToU8(f float32) uint8 {
	return uint8(max(0, min(255, truncI32(f))))
}

func allChecks() []checker {
	return []checker{
		newCheck("BF16ToF32", vecconvert.BF16ToF32, refBF16ToF32, bits16[hwy.BFloat16]()),
		newCheck("F32ToBF16", vecconvert.F32ToBF16, refF32ToBF16, f32Domain()),
		newCheck("F16ToF32", vecconvert.F16ToF32, refF16ToF32, bits16[hwy.Float16]()),
		newCheck("F32ToF16", vecconvert.F32ToF16, refF32ToF16, f32Domain()),
		newCheck("I64ToF32", vecconvert.I64ToF32, func(x int64) float32 { return float32(x) }, i64Domain()),
		newCheck("F32ToI64", vecconvert.F32ToI64, refF32ToI64, f32Domain()),
		newCheck("I32ToI64", vecconvert.I32ToI64, func(x int32) int64 { return int64(x) }, i32Domain()),
		newCheck("I64ToI32", vecconvert.I64ToI32, func(x int64) int32 { return int32(x) }, i64Domain()),
		newCheck("I8ToI32", vecconvert.I8ToI32, func(x int8) int32 { return int32(x) }, bytes8[int8]()),
		newCheck("U8ToI32", vecconvert.U8ToI32, func(x uint8) int32 { return int32(x) }, bytes8[uint8]()),
		newCheck("I32ToI8", vecconvert.I32ToI8, func(x int32) int8 { return int8(x) }, i32Domain()),
		newCheck("I32ToU8", vecconvert.I32ToU8, func(x int32) uint8 { return uint8(x) }, i32Domain()),
		newCheck("F32ToI8", vecconvert.F32ToI8, refF32ToI8, f32Domain()),
		newCheck("F32ToU8", vecconvert.F32ToU8, refF32ToU8, f32Domain()),
		newCheck("I8ToF32", vecconvert.I8ToF32, func(x int8) float32 { return float32(x) }, bytes8[int8]()),
		newCheck("U8ToF32", vecconvert.U8ToF32, func(x uint8) float32 { return float32(x) }, bytes8[uint8]()),
		newCheck("I64ToI8", vecconvert.I64ToI8, func(x int64) int8 { return int8(x) }, i64Domain()),
		newCheck("I64ToU8", vecconvert.I64ToU8, func(x int64) uint8 { return uint8(x) }, i64Domain()),
		newCheck("I8ToI64", vecconvert.I8ToI64, func(x int8) int64 { return int64(x) }, bytes8[int8]()),
		newCheck("U8ToI64", vecconvert.U8ToI64, func(x uint8) int64 { return int64(x) }, bytes8[uint8]()),
	}
}
