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

import (
	"math"

	"github.com/Tobii/ffsvm-go/simd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	probClamp   = 1e-7
	probEpsilon = 0.005
)

// PredictProbability fills p.Label and p.Probabilities from p.Features. It
// first runs the same kernel/decision/vote pipeline PredictValue does, then
// sigmoid-calibrates every pairwise decision value and couples them into a
// coherent n-class distribution by fixed-point iteration (spec.md §4.4).
// p.Label is overwritten with the argmax of p.Probabilities.
//
// Returns ErrModelDoesNotSupportProbabilities if the model carries no
// probA/probB calibration, or ErrMaxIterationsExceededPredictingProbabilities
// if the coupling iteration fails to converge within its cap; in the latter
// case p.Label and p.Probabilities still hold the best-effort result from
// the final iteration.
func (m *Model) PredictProbability(p *Problem) error {
	if !m.HasProbabilities() {
		return ErrModelDoesNotSupportProbabilities
	}

	m.computeKernelValues(p)
	m.computeDecisionValues(p)
	m.vote(p)

	n := m.NumClasses()
	m.computePairwiseCoupling(p)

	for k := range p.Probabilities {
		p.Probabilities[k] = 1.0 / float64(n)
	}

	converged := coupleProbabilities(p.q, p.Probabilities, p.qp, n)

	best := argmaxFloat(p.Probabilities)
	label, _ := m.ClassLabelForIndex(best)
	p.Label = label

	if !converged {
		return ErrMaxIterationsExceededPredictingProbabilities
	}
	return nil
}

// coupleProbabilities runs the Wu-Lin-Weng fixed-point iteration (Algorithm
// 4, "Probability Estimates for Multi-Class Classification by Pairwise
// Coupling") that turns a coupling matrix q into a coherent n-class
// distribution, starting from the uniform prior already written into prob.
// It mutates prob in place and uses qp as scratch for q*prob. probClamp
// keeps every pairwise probability strictly inside (0,1), so q's diagonal
// is always strictly positive and this iteration is well-defined; per Wu,
// Lin & Weng (2004) it then converges globally whenever q is irreducible,
// which holds for any model built from a connected training set. It
// returns false only if the cap of 100*max(10,n) iterations is exhausted
// first — reachable only by a q so numerically degenerate no real trained
// model produces one.
func coupleProbabilities(q *simd.Block[float64], prob, qp []float64, n int) bool {
	qMat := mat.NewDense(n, n, q.Raw())
	pVec := mat.NewVecDense(n, prob)
	qpVec := mat.NewVecDense(n, qp)

	cap := 100 * maxInt(10, n)

	for iter := 0; iter < cap; iter++ {
		qpVec.MulVec(qMat, pVec)
		pQp := floats.Dot(prob, qp)

		maxDiff := 0.0
		for k := 0; k < n; k++ {
			if diff := math.Abs(qp[k] - pQp); diff > maxDiff {
				maxDiff = diff
			}
		}
		if maxDiff < probEpsilon {
			return true
		}

		for k := 0; k < n; k++ {
			delta := (-qp[k] + pQp) / q.At(k, k)
			prob[k] += delta
		}
		sum := 0.0
		for k := 0; k < n; k++ {
			sum += prob[k]
		}
		for k := 0; k < n; k++ {
			prob[k] /= sum
		}
	}
	return false
}

// computePairwiseCoupling fills p.pairwise with the sigmoid-calibrated
// pairwise probabilities r_ij = 1/(1+exp(a_ij*d_ij+b_ij)), clamped into
// [probClamp, 1-probClamp], and p.q with the coupling matrix:
//
//	Q[k][k] = sum_{s != k} r_sk^2
//	Q[k][s] = -r_ks * r_sk   (s != k)
func (m *Model) computePairwiseCoupling(p *Problem) {
	n := m.NumClasses()
	probs := m.probabilities

	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			d := p.DecisionValues.At(i, j)
			a := probs.A.At(i, j)
			b := probs.B.At(i, j)
			r := 1.0 / (1.0 + math.Exp(a*d+b))
			r = clamp(r, probClamp, 1-probClamp)
			p.pairwise.Set(i, j, r)
			p.pairwise.Set(j, i, 1-r)
		}
	}
	for k := 0; k < n; k++ {
		p.pairwise.Set(k, k, 0)
	}

	for k := 0; k < n; k++ {
		sum := 0.0
		for s := 0; s < n; s++ {
			if s == k {
				continue
			}
			rsk := p.pairwise.At(s, k)
			sum += rsk * rsk
		}
		p.q.Set(k, k, sum)
		for s := 0; s < n; s++ {
			if s == k {
				continue
			}
			rks := p.pairwise.At(k, s)
			rsk := p.pairwise.At(s, k)
			p.q.Set(k, s, -rks*rsk)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// argmaxFloat returns the index of the largest value, ties broken by the
// lowest index.
func argmaxFloat(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
