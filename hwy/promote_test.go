package hwy

import (
	"math"
	"testing"
)

func TestPromoteI32ToI64(t *testing.T) {
	n := MaxLanes[int32]()
	data := make([]int32, n)
	for i := range n {
		data[i] = int32(i - n/2)
	}
	data[0] = math.MinInt32
	data[n-1] = math.MaxInt32
	v := Load(data)

	lower := PromoteLowerI32ToI64(v)
	upper := PromoteUpperI32ToI64(v)

	half := n / 2
	if lower.NumLanes() != half || upper.NumLanes() != half {
		t.Fatalf("NumLanes: got %d/%d, want %d", lower.NumLanes(), upper.NumLanes(), half)
	}
	for i := range half {
		if got := lower.Lane(i); got != int64(data[i]) {
			t.Errorf("lower lane %d: got %d, want %d", i, got, data[i])
		}
		if got := upper.Lane(i); got != int64(data[half+i]) {
			t.Errorf("upper lane %d: got %d, want %d", i, got, data[half+i])
		}
	}
}

func TestTruncateTwoI64ToI32(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want int32
	}{
		{"small", 42, 42},
		{"negative", -42, -42},
		{"wraps past max", 1<<32 + 5, 5},
		{"max int32 plus one", math.MaxInt32 + 1, math.MinInt32},
		{"min int64", math.MinInt64, 0},
		{"max int64", math.MaxInt64, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateTwoI64ToI32(Set(tt.in), Set(tt.in))
			for i := range result.NumLanes() {
				if got := result.Lane(i); got != tt.want {
					t.Fatalf("lane %d: got %d, want %d", i, got, tt.want)
				}
			}
		})
	}
}

func TestTruncateTwoI64ToI32LaneOrder(t *testing.T) {
	n := MaxLanes[int64]()
	lo := make([]int64, n)
	hi := make([]int64, n)
	for i := range n {
		lo[i] = int64(i)
		hi[i] = int64(n + i)
	}

	result := TruncateTwoI64ToI32(Load(lo), Load(hi))
	if result.NumLanes() != 2*n {
		t.Fatalf("NumLanes: got %d, want %d", result.NumLanes(), 2*n)
	}
	for i := range 2 * n {
		if got := result.Lane(i); got != int32(i) {
			t.Errorf("lane %d: got %d, want %d", i, got, i)
		}
	}
}

// TestI32I64RoundTrip checks that splitting an int32 register into two int64
// registers and narrowing them back is the identity.
func TestI32I64RoundTrip(t *testing.T) {
	n := MaxLanes[int32]()
	data := make([]int32, n)
	for i := range n {
		data[i] = int32(uint32(i) * 0x9E3779B9)
	}
	v := Load(data)

	back := TruncateTwoI64ToI32(PromoteLowerI32ToI64(v), PromoteUpperI32ToI64(v))
	for i := range n {
		if got := back.Lane(i); got != data[i] {
			t.Errorf("lane %d: got %d, want %d", i, got, data[i])
		}
	}
}

func TestPromoteQuarterBytesToI32(t *testing.T) {
	n := MaxLanes[int8]()
	signed := make([]int8, n)
	unsigned := make([]uint8, n)
	for i := range n {
		signed[i] = int8(127 - i*5)
		unsigned[i] = uint8(255 - i*3)
	}

	si := PromoteQuarterI8ToI32(Load(signed))
	ui := PromoteQuarterU8ToI32(Load(unsigned))

	quarter := n / 4
	if si.NumLanes() != quarter || ui.NumLanes() != quarter {
		t.Fatalf("NumLanes: got %d/%d, want %d", si.NumLanes(), ui.NumLanes(), quarter)
	}
	for i := range quarter {
		if got := si.Lane(i); got != int32(signed[i]) {
			t.Errorf("int8 lane %d: got %d, want %d", i, got, signed[i])
		}
		if got := ui.Lane(i); got != int32(unsigned[i]) {
			t.Errorf("uint8 lane %d: got %d, want %d", i, got, unsigned[i])
		}
	}
}

func TestTruncateI32ToBytesQuarter(t *testing.T) {
	tests := []struct {
		name  string
		in    int32
		want8 int8
		wantU uint8
	}{
		{"in range", 100, 100, 100},
		{"wraps 300", 300, 44, 44},
		{"wraps 1000", 1000, -24, 232},
		{"negative one", -1, -1, 255},
		{"wraps -200", -200, 56, 56},
		{"min int32", math.MinInt32, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Set(tt.in)
			signed := TruncateI32ToI8Quarter(v)
			unsigned := TruncateI32ToU8Quarter(v)

			if signed.NumLanes() != MaxLanes[int8]() {
				t.Fatalf("NumLanes: got %d, want %d", signed.NumLanes(), MaxLanes[int8]())
			}
			quarter := MaxLanes[int32]()
			for i := range signed.NumLanes() {
				want8, wantU := tt.want8, tt.wantU
				if i >= quarter {
					want8, wantU = 0, 0
				}
				if got := signed.Lane(i); got != want8 {
					t.Fatalf("int8 lane %d: got %d, want %d", i, got, want8)
				}
				if got := unsigned.Lane(i); got != wantU {
					t.Fatalf("uint8 lane %d: got %d, want %d", i, got, wantU)
				}
			}
		})
	}
}

func TestPromoteHalf(t *testing.T) {
	n := MaxLanes[BFloat16]()
	bf := make([]BFloat16, n)
	fp := make([]Float16, n)
	for i := range n {
		bf[i] = Float32ToBFloat16(float32(i) - 3.5)
		fp[i] = Float32ToFloat16(float32(i) - 3.5)
	}

	bfOut := PromoteLowerBF16ToF32(Load(bf))
	fpOut := PromoteLowerF16ToF32(Load(fp))

	half := n / 2
	if bfOut.NumLanes() != half || fpOut.NumLanes() != half {
		t.Fatalf("NumLanes: got %d/%d, want %d", bfOut.NumLanes(), fpOut.NumLanes(), half)
	}
	for i := range half {
		want := float32(i) - 3.5
		if got := bfOut.Lane(i); got != want {
			t.Errorf("bf16 lane %d: got %v, want %v", i, got, want)
		}
		if got := fpOut.Lane(i); got != want {
			t.Errorf("f16 lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestDemoteHalf(t *testing.T) {
	n := MaxLanes[float32]()
	data := make([]float32, n)
	for i := range n {
		data[i] = float32(i) * 0.25
	}
	v := Load(data)

	bf := DemoteF32ToBF16Lower(v)
	fp := DemoteF32ToF16Lower(v)

	if bf.NumLanes() != 2*n || fp.NumLanes() != 2*n {
		t.Fatalf("NumLanes: got %d/%d, want %d", bf.NumLanes(), fp.NumLanes(), 2*n)
	}
	for i := range 2 * n {
		var wantBF BFloat16
		var wantFP Float16
		if i < n {
			wantBF, wantFP = Float32ToBFloat16(data[i]), Float32ToFloat16(data[i])
		}
		if got := bf.Lane(i); got != wantBF {
			t.Errorf("bf16 lane %d: got 0x%04X, want 0x%04X", i, got, wantBF)
		}
		if got := fp.Lane(i); got != wantFP {
			t.Errorf("f16 lane %d: got 0x%04X, want 0x%04X", i, got, wantFP)
		}
	}
}

func BenchmarkPromoteLowerI32ToI64(b *testing.B) {
	v := Iota[int32]()
	for b.Loop() {
		_ = PromoteLowerI32ToI64(v)
	}
}
