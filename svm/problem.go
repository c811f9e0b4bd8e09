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

// Problem is a per-query workspace built once against a specific Model and
// reused across many queries by one caller. No operation on a Problem may
// run concurrently with any other operation on the same Problem; callers
// that predict from multiple goroutines provision one Problem per
// goroutine (spec.md §5).
type Problem struct {
	// Features is the lane-padded feature vector the caller fills before
	// calling PredictValue/PredictProbability. Its length always equals
	// the owning Model's PaddedAttributes().
	Features []float32

	// KernelValues holds K(sv, features) grouped by class: row c, column
	// s is K(class c's s-th support vector, Features).
	KernelValues *simd.Block[float64]

	// DecisionValues holds one signed score d(i,j) per class pair.
	DecisionValues *simd.Triangular[float64]

	// Vote is the one-vs-one vote tally, one counter per class.
	Vote []int

	// Probabilities is the per-class probability estimate, written by
	// PredictProbability.
	Probabilities []float64

	// Label is the predicted external label, written by both
	// PredictValue and PredictProbability.
	Label int

	// pairwise, q and qp are scratch for the pairwise-coupling fixed-point
	// iteration (probability.go); never read before PredictProbability
	// writes them.
	pairwise *simd.Block[float64]
	q        *simd.Block[float64]
	qp       []float64
}

// NewProblem allocates a Problem sized for model, with Features zeroed.
// Every per-query buffer is preallocated here. PredictValue and
// PredictProbability still make small per-call allocations outside these
// buffers: one goroutine per class for the kernel fan-out, and the gonum
// matrix/vector wrappers built around q, Probabilities and qp.
func NewProblem(model *Model) *Problem {
	n := model.NumClasses()
	maxSV := model.MaxClassSV()

	return &Problem{
		Features:       make([]float32, model.PaddedAttributes()),
		KernelValues:   simd.NewBlock[float64](n, maxSV),
		DecisionValues: simd.NewTriangular[float64](n),
		Vote:           make([]int, n),
		Probabilities:  make([]float64, n),
		pairwise:       simd.NewBlock[float64](n, n),
		q:              simd.NewBlock[float64](n, n),
		qp:             make([]float64, n),
	}
}

// Reset zeroes Vote, Probabilities and Label so a Problem can be reused for
// an unrelated query without the caller having to know the internal
// buffer shapes. KernelValues, DecisionValues and the coupling scratch are
// not cleared; the next prediction overwrites them. Features is left
// untouched: callers fill it immediately before predicting anyway.
func (p *Problem) Reset() {
	for i := range p.Vote {
		p.Vote[i] = 0
	}
	for i := range p.Probabilities {
		p.Probabilities[i] = 0
	}
	p.Label = 0
}
