// Copyright 2025 ffsvm-go Authors
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

// Package simd provides the packed, lane-aligned numeric containers the
// prediction engine is built on: a row-optimized matrix whose rows are
// padded to a whole number of SIMD lanes, a matching padded vector, and a
// lower-triangular dense store for pairwise (class, class) data such as
// rho, probA and probB.
//
// The arithmetic itself (Splat, FMA, ReduceSum) is always evaluated with
// plain Go loops: there is no goexperiment.simd / archsimd dependency here.
// What the package buys the kernel evaluator is layout, not instructions —
// every row is contiguous and its length is a multiple of LaneWidth, so a
// real SIMD loop (or the autovectorizer) has lanes to work with and never
// has to special-case a ragged tail.
package simd

// Lanes constrains the element types a Vec, Matrix, Block or Triangular may
// hold: the numeric types the kernel evaluator and decision/voting code
// operate on.
type Lanes interface {
	~float32 | ~float64
}

// Floats further restricts Lanes to floating point types, for operations
// like FMA and ReduceSum that are only meaningful (or only precise enough)
// on floats. Kept distinct from Lanes so integer lane types could be added
// later without touching the float-only operations.
type Floats interface {
	~float32 | ~float64
}

// LaneWidth is the number of T-sized lanes packed into one SIMD register at
// the current dispatch level. Padded rows are always a multiple of
// LaneWidth[T]() elements long.
func LaneWidth[T Lanes]() int {
	var zero T
	switch any(zero).(type) {
	case float32:
		return currentWidth / 4
	case float64:
		return currentWidth / 8
	default:
		return 1
	}
}

// PadLen rounds n up to the next multiple of LaneWidth[T](), so that a
// padded row or vector of this length can be iterated lane-by-lane with no
// remainder.
func PadLen[T Lanes](n int) int {
	lanes := LaneWidth[T]()
	if n <= 0 {
		return 0
	}
	rem := n % lanes
	if rem == 0 {
		return n
	}
	return n + (lanes - rem)
}

// Vec is a single padded row: NumLanes() is always a whole multiple of the
// dispatch level's lane width. It is the unit the kernel evaluator reads
// one lane-chunk at a time.
type Vec[T Lanes] struct {
	data []T
}

// NewVec allocates a zeroed Vec of the padded length for n logical elements.
func NewVec[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, PadLen[T](n))}
}

// VecFromSlice wraps an already-padded slice without copying. The caller
// guarantees len(data) is a multiple of LaneWidth[T]().
func VecFromSlice[T Lanes](data []T) Vec[T] {
	return Vec[T]{data: data}
}

// Raw returns the underlying padded slice, including any zero-padding
// lanes. Callers must never interpret padding lanes as meaningful data.
func (v Vec[T]) Raw() []T { return v.data }

// Len returns the padded length (always a multiple of LaneWidth[T]()).
func (v Vec[T]) Len() int { return len(v.data) }

// At returns the scalar value at index i (0 <= i < Len()).
func (v Vec[T]) At(i int) T { return v.data[i] }

// Set writes the scalar value at index i.
func (v Vec[T]) Set(i int, val T) { v.data[i] = val }

// Lane returns the lane-sized chunk starting at a lane boundary, i.e.
// data[laneIdx*width : laneIdx*width+width].
func (v Vec[T]) Lane(laneIdx, width int) []T {
	start := laneIdx * width
	return v.data[start : start+width]
}

// Splat broadcasts a scalar into every lane of a width-sized chunk, mirroring
// Google Highway's Set/splat primitive (hwy.Set in the teacher package).
func Splat[T Lanes](value T, width int) []T {
	out := make([]T, width)
	for i := range out {
		out[i] = value
	}
	return out
}

// ReduceSum horizontally sums a lane-sized chunk, mirroring hwy.ReduceSum.
func ReduceSum[T Lanes](lane []T) T {
	var sum T
	for _, x := range lane {
		sum += x
	}
	return sum
}

// FMA computes a*b+c element-wise over equally sized lane chunks, mirroring
// hwy.FMA.
func FMA[T Floats](a, b, c []T) []T {
	n := len(a)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = a[i]*b[i] + c[i]
	}
	return out
}
