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

// Package kernel computes the similarity function K(sv, x) a support
// vector machine evaluates between a support vector and a query feature
// vector. It corresponds to ffsvm's svm::kernel module, generalized from a
// single Rbf type to the Dense/Sparse capability split spec.md describes.
package kernel

import (
	"errors"

	"github.com/Tobii/ffsvm-go/simd"
)

// ErrNoGamma is returned when a model header advertises the RBF kernel but
// never supplied a gamma parameter.
var ErrNoGamma = errors.New("kernel: rbf requires gamma > 0")

// Dense computes K(sv_i, feature) for every row i of a packed, lane-padded
// support vector matrix, writing results into out (len(out) >= rows).
// Implementations must treat zero-padding lanes on both operands as
// contributing nothing to the similarity score.
type Dense interface {
	Compute(vectors *simd.Matrix[float32], feature []float32, out []float64)
}

// Sparse computes K(sv_i, feature) where both the support vector and the
// feature are streams of strictly increasing (index, value) pairs, missing
// indices on either side implicitly zero.
type Sparse interface {
	ComputeSparse(vectors []SparseVector, feature SparseVector, out []float64)
}

// SparseVector is a strictly-increasing-index sparse encoding of one
// feature vector or support vector.
type SparseVector []SparseEntry

// SparseEntry is one (index, value) pair of a SparseVector.
type SparseEntry struct {
	Index int
	Value float32
}
