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

// This file provides pure Go (scalar) register construction and access.
// Registers are always full width: a short source is zero-padded so that
// lane counts are a property of the type and the target, never of the input.

// Load creates a full-width vector from the first MaxLanes[T]() elements of
// src. Missing elements are zero.
func Load[T Lanes](src []T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	copy(data, src)
	return Vec[T]{data: data}
}

// LoadFull wraps src as a vector without copying when it holds at least
// MaxLanes[T]() elements; shorter slices are copied and zero-padded as by
// Load. The vector aliases src, so src must not be modified afterwards.
func LoadFull[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	if len(src) < n {
		return Load(src)
	}
	return Vec[T]{data: src[:n:n]}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
// Lane values wrap for narrow integer types.
func Iota[T Lanes]() Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}
