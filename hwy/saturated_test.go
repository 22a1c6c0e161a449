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

package hwy

import (
	"math"
	"testing"
)

func TestDemoteF32ToI8Sat(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected int8
	}{
		{"in range", 100, 100},
		{"truncates", -5.9, -5},
		{"max", 127, 127},
		{"overflow", 1000, 127},
		{"min", -128, -128},
		{"underflow", -1000, -128},
		{"just past int32", 0x1p31, -128},
		{"huge", 1e10, -128},
		{"negative huge", -1e10, -128},
		{"nan", float32(math.NaN()), -128},
		{"inf", float32(math.Inf(1)), -128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DemoteF32ToI8Sat(Set(tt.input))
			quarter := MaxLanes[float32]()
			for i := range result.NumLanes() {
				want := tt.expected
				if i >= quarter {
					want = 0
				}
				if got := result.Lane(i); got != want {
					t.Fatalf("lane %d: got %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestDemoteF32ToU8Sat(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected uint8
	}{
		{"in range", 200, 200},
		{"truncates", 254.99, 254},
		{"overflow", 1000, 255},
		{"negative", -1, 0},
		{"negative fraction", -0.5, 0},
		{"huge", 1e10, 0},
		{"nan", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DemoteF32ToU8Sat(Set(tt.input))
			if result.NumLanes() != MaxLanes[uint8]() {
				t.Fatalf("NumLanes: got %d, want %d", result.NumLanes(), MaxLanes[uint8]())
			}
			if got := result.Lane(0); got != tt.expected {
				t.Errorf("DemoteF32ToU8Sat(%v): got %d, want %d", tt.input, got, tt.expected)
			}
			if got := result.Lane(MaxLanes[float32]()); got != 0 {
				t.Errorf("lane past the quarter: got %d, want 0", got)
			}
		})
	}
}

func TestDemoteF32ToI8SatLaneOrder(t *testing.T) {
	n := MaxLanes[float32]()
	data := make([]float32, n)
	for i := range n {
		data[i] = float32(i*20 - 150)
	}

	result := DemoteF32ToI8Sat(Load(data))
	for i := range n {
		want := saturateI32ToI8(int32(i*20 - 150))
		if got := result.Lane(i); got != want {
			t.Errorf("lane %d: got %d, want %d", i, got, want)
		}
	}
}
