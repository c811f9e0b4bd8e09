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

import "golang.org/x/sync/errgroup"

// PredictValue fills p.Label from p.Features: it runs the kernel evaluator
// over every class's support vectors, forms the n*(n-1)/2 pairwise
// decision values, counts one-vs-one votes, and writes the argmax class's
// external label. It is total over well-formed inputs; spec.md §4.3 names
// no failure mode at this stage.
func (m *Model) PredictValue(p *Problem) {
	m.computeKernelValues(p)
	m.computeDecisionValues(p)
	m.vote(p)
	p.Label = m.labelFromVotes(p.Vote)
}

// computeKernelValues evaluates K(sv, features) for every class's support
// vectors. Classes are embarrassingly parallel (spec.md §5): each class
// writes only to its own row of p.KernelValues, so the fan-out needs no
// further synchronization before the serial voting phase.
func (m *Model) computeKernelValues(p *Problem) {
	var g errgroup.Group
	for ci := range m.classes {
		ci := ci
		g.Go(func() error {
			class := &m.classes[ci]
			out := p.KernelValues.Row(ci)[:class.NumSupportVectors]
			m.kernel.Compute(class.SupportVectors, p.Features, out)
			return nil
		})
	}
	_ = g.Wait() // Compute never returns an error
}

// computeDecisionValues forms d(i,j) for every class pair i>j:
//
//	d(i,j) = sum_{s in SV(i)} coef_i[slot(i,j)][s] * K(sv_s, x)
//	       + sum_{t in SV(j)} coef_j[slot(j,i)][t] * K(sv_t, x)
//	       - rho(i,j)
func (m *Model) computeDecisionValues(p *Problem) {
	n := m.NumClasses()
	for i := 1; i < n; i++ {
		ci := &m.classes[i]
		kvi := p.KernelValues.Row(i)
		for j := 0; j < i; j++ {
			cj := &m.classes[j]
			kvj := p.KernelValues.Row(j)

			sum := 0.0
			coefI := ci.Coefficients.Row(coefficientSlot(i, j))
			for s := 0; s < ci.NumSupportVectors; s++ {
				sum += coefI[s] * kvi[s]
			}
			coefJ := cj.Coefficients.Row(coefficientSlot(j, i))
			for t := 0; t < cj.NumSupportVectors; t++ {
				sum += coefJ[t] * kvj[t]
			}
			sum -= m.rho.At(i, j)
			p.DecisionValues.Set(i, j, sum)
		}
	}
}

// vote increments p.Vote[i] when d(i,j) > 0, else p.Vote[j], for every
// class pair i>j.
func (m *Model) vote(p *Problem) {
	n := m.NumClasses()
	for i := range p.Vote {
		p.Vote[i] = 0
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if p.DecisionValues.At(i, j) > 0 {
				p.Vote[i]++
			} else {
				p.Vote[j]++
			}
		}
	}
}

// labelFromVotes returns the external label of the class with the most
// votes, ties broken by the lowest class index.
func (m *Model) labelFromVotes(vote []int) int {
	best := 0
	for i := 1; i < len(vote); i++ {
		if vote[i] > vote[best] {
			best = i
		}
	}
	label, _ := m.ClassLabelForIndex(best)
	return label
}
