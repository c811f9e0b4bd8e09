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

package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tobii/ffsvm-go/kernel"
	"github.com/Tobii/ffsvm-go/simd"
)

func TestNewRbfRejectsNonPositiveGamma(t *testing.T) {
	_, err := kernel.NewRbf(0)
	require.ErrorIs(t, err, kernel.ErrNoGamma)

	_, err = kernel.NewRbf(-1)
	require.ErrorIs(t, err, kernel.ErrNoGamma)
}

func TestRbfComputeKnownValue(t *testing.T) {
	r, err := kernel.NewRbf(1.0)
	require.NoError(t, err)

	vectors := simd.NewMatrix[float32](1, 4)
	vectors.Set(0, 0, 0)
	vectors.Set(0, 1, 0)
	vectors.Set(0, 2, 0)
	vectors.Set(0, 3, 0)

	feature := make([]float32, vectors.PaddedCols())
	copy(feature, []float32{0.55838, -0.157895, 0.581292, -0.221184})

	out := make([]float64, 1)
	r.Compute(vectors, feature, out)

	require.InDelta(t, 0.48503132303876567, out[0], 1e-9)
}

// Kernel symmetry (property 4): K(u,v) = K(v,u) within float rounding.
func TestRbfComputeSymmetric(t *testing.T) {
	r, err := kernel.NewRbf(0.7)
	require.NoError(t, err)

	u := []float32{0.1, -0.2, 0.3, 0.4}
	v := []float32{-0.5, 0.6, -0.1, 0.2}

	uMat := simd.NewMatrix[float32](1, 4)
	vMat := simd.NewMatrix[float32](1, 4)
	for i, val := range u {
		uMat.Set(0, i, val)
	}
	for i, val := range v {
		vMat.Set(0, i, val)
	}

	uFeature := make([]float32, uMat.PaddedCols())
	copy(uFeature, v)
	vFeature := make([]float32, vMat.PaddedCols())
	copy(vFeature, u)

	kUV := make([]float64, 1)
	kVU := make([]float64, 1)
	r.Compute(uMat, uFeature, kUV)
	r.Compute(vMat, vFeature, kVU)

	require.InDelta(t, kUV[0], kVU[0], 1e-12)
}

// Padding lanes beyond Cols() must never perturb the result.
func TestRbfComputeIgnoresPadding(t *testing.T) {
	r, err := kernel.NewRbf(1.0)
	require.NoError(t, err)

	vectors := simd.NewMatrix[float32](1, 3)
	vectors.Set(0, 0, 1)
	vectors.Set(0, 1, 2)
	vectors.Set(0, 2, 3)

	clean := make([]float32, vectors.PaddedCols())
	copy(clean, []float32{1, 2, 3})

	dirty := make([]float32, vectors.PaddedCols())
	copy(dirty, []float32{1, 2, 3})
	for i := 3; i < len(dirty); i++ {
		dirty[i] = 42
	}

	outClean := make([]float64, 1)
	outDirty := make([]float64, 1)
	r.Compute(vectors, clean, outClean)
	r.Compute(vectors, dirty, outDirty)

	require.Equal(t, outClean[0], outDirty[0])
	require.InDelta(t, 1.0, outClean[0], 1e-12) // identical vectors, gamma irrelevant
}

func TestRbfComputeSparseMatchesDense(t *testing.T) {
	r, err := kernel.NewRbf(0.5)
	require.NoError(t, err)

	denseVectors := simd.NewMatrix[float32](1, 4)
	sv := []float32{0.2, 0, 0.4, -0.1}
	for i, v := range sv {
		denseVectors.Set(0, i, v)
	}
	feature := make([]float32, denseVectors.PaddedCols())
	copy(feature, []float32{0.1, -0.3, 0, 0.2})

	denseOut := make([]float64, 1)
	r.Compute(denseVectors, feature, denseOut)

	sparseSV := []kernel.SparseVector{{{Index: 0, Value: 0.2}, {Index: 2, Value: 0.4}, {Index: 3, Value: -0.1}}}
	sparseFeature := kernel.SparseVector{{Index: 0, Value: 0.1}, {Index: 1, Value: -0.3}, {Index: 3, Value: 0.2}}
	sparseOut := make([]float64, 1)
	r.ComputeSparse(sparseSV, sparseFeature, sparseOut)

	require.InDelta(t, denseOut[0], sparseOut[0], 1e-9)
}

func TestRbfComputeSparseSymmetric(t *testing.T) {
	r, err := kernel.NewRbf(1.2)
	require.NoError(t, err)

	a := kernel.SparseVector{{Index: 0, Value: 0.3}, {Index: 2, Value: -0.5}}
	b := kernel.SparseVector{{Index: 1, Value: 0.1}, {Index: 2, Value: 0.4}}

	ab := make([]float64, 1)
	ba := make([]float64, 1)
	r.ComputeSparse([]kernel.SparseVector{a}, b, ab)
	r.ComputeSparse([]kernel.SparseVector{b}, a, ba)

	require.InDelta(t, ab[0], ba[0], 1e-12)
	require.False(t, math.IsNaN(ab[0]))
}
