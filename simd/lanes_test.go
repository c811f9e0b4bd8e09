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

package simd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tobii/ffsvm-go/simd"
)

func TestPadLenRoundsUpToLaneWidth(t *testing.T) {
	width := simd.LaneWidth[float32]()
	for n := 1; n <= width*3; n++ {
		padded := simd.PadLen[float32](n)
		require.GreaterOrEqual(t, padded, n)
		require.Zero(t, padded%width)
	}
}

func TestPadLenZeroForNonPositive(t *testing.T) {
	require.Equal(t, 0, simd.PadLen[float32](0))
	require.Equal(t, 0, simd.PadLen[float32](-1))
}

func TestNewVecPaddedAndZeroed(t *testing.T) {
	v := simd.NewVec[float64](3)
	require.Zero(t, v.Len()%simd.LaneWidth[float64]())
	for i := 0; i < v.Len(); i++ {
		require.Zero(t, v.At(i))
	}
}

func TestReduceSum(t *testing.T) {
	require.Equal(t, 10.0, simd.ReduceSum([]float64{1, 2, 3, 4}))
}

func TestSplat(t *testing.T) {
	require.Equal(t, []float32{2, 2, 2}, simd.Splat(float32(2), 3))
}

func TestFMA(t *testing.T) {
	got := simd.FMA([]float64{1, 2}, []float64{3, 4}, []float64{1, 1})
	require.Equal(t, []float64{4, 9}, got)
}
