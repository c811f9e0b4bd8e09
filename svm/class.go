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

package svm

import "github.com/Tobii/ffsvm-go/simd"

// Class holds one class's support vectors and dual coefficients, laid out
// for vectorized kernel evaluation. Mirrors ffsvm's svm::Class.
type Class struct {
	// Label is the externally visible integer label from the model file.
	Label int

	// NumSupportVectors is this class's support vector count.
	NumSupportVectors int

	// Coefficients is a dense (NumClasses-1) x NumSupportVectors block.
	// Row r holds the dual coefficients paired against "other-class slot"
	// r; see decision.go for how a class index maps to a slot.
	Coefficients *simd.Block[float64]

	// SupportVectors is a lane-padded (NumSupportVectors x paddedAttrs)
	// matrix, ready for the kernel evaluator's row iteration.
	SupportVectors *simd.Matrix[float32]
}

// coefficientSlot implements libSVM's convention for indexing into a
// class's coefficient block: within class c's block, the row paired
// against class k sits at position k if k < c, and k-1 if k > c (there is
// no row for k == c, a class is never paired against itself).
func coefficientSlot(c, k int) int {
	if k < c {
		return k
	}
	return k - 1
}
