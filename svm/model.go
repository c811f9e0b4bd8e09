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

// Package svm is the prediction engine core: Model (immutable, shareable)
// and Problem (single-owner, per-query scratch), build_model, predict_value
// and predict_probability. It corresponds to ffsvm's svm module, generalized
// from RbfCSVM-only to the shape spec.md describes.
package svm

import (
	"github.com/Tobii/ffsvm-go/kernel"
	"github.com/Tobii/ffsvm-go/modelfile"
	"github.com/Tobii/ffsvm-go/simd"
)

// Probabilities holds the per-class-pair sigmoid calibration parameters.
type Probabilities struct {
	A *simd.Triangular[float64]
	B *simd.Triangular[float64]
}

// Model is the immutable, concurrency-safe in-memory representation of a
// trained SVM. Build it once with BuildModel and share the pointer freely
// across goroutines; all mutation happens on a per-goroutine Problem.
type Model struct {
	numAttributes    int
	paddedAttributes int
	numTotalSV       int
	kernel           kernel.Dense
	classes          []Class
	rho              *simd.Triangular[float64]
	probabilities    *Probabilities
}

// Attributes returns the declared feature dimension, reflecting the
// libSVM model.
func (m *Model) Attributes() int { return m.numAttributes }

// PaddedAttributes returns the lane-padded feature width Problem.Features
// is sized to.
func (m *Model) PaddedAttributes() int { return m.paddedAttributes }

// NumClasses returns the number of classes, reflecting the libSVM model.
func (m *Model) NumClasses() int { return len(m.classes) }

// NumTotalSV returns the total support vector count across all classes.
func (m *Model) NumTotalSV() int { return m.numTotalSV }

// HasProbabilities reports whether the model was built with sigmoid
// calibration (probA/probB), required by PredictProbability.
func (m *Model) HasProbabilities() bool { return m.probabilities != nil }

// MaxClassSV returns the largest class's support vector count, the column
// width of Problem.KernelValues.
func (m *Model) MaxClassSV() int {
	max := 0
	for _, c := range m.classes {
		if c.NumSupportVectors > max {
			max = c.NumSupportVectors
		}
	}
	return max
}

// ClassIndexForLabel finds the internal class slot for an external libSVM
// label, the index Problem.Probabilities is keyed by. Ported from ffsvm's
// SVM::class_index_for_label (spec.md supplement, §5 of SPEC_FULL.md).
func (m *Model) ClassIndexForLabel(label int) (int, bool) {
	for i, c := range m.classes {
		if c.Label == label {
			return i, true
		}
	}
	return 0, false
}

// ClassLabelForIndex is the inverse of ClassIndexForLabel: the external
// label for an internal class slot.
func (m *Model) ClassLabelForIndex(index int) (int, bool) {
	if index < 0 || index >= len(m.classes) {
		return 0, false
	}
	return m.classes[index].Label, true
}

// BuildModel consumes a neutral parsed representation and lays out support
// vectors in packed, lane-aligned form, validating shape and attribute
// ordering. No partial Model is ever returned: a non-nil error always
// carries a nil Model.
func BuildModel(mf *modelfile.ModelFile) (*Model, error) {
	h := mf.Header

	if h.NumClasses < 2 {
		return nil, ErrTooFewClasses
	}
	if h.SvmType != "c_svc" {
		return nil, ErrUnsupportedSvmType
	}
	if h.KernelType != "rbf" {
		return nil, ErrUnsupportedKernel
	}
	if h.Gamma == nil {
		return nil, kernel.ErrNoGamma
	}

	n := h.NumClasses
	numPairs := n * (n - 1) / 2
	if len(h.Labels) != n || len(h.NrSV) != n || len(h.Rho) != numPairs {
		return nil, ErrShapeMismatch
	}
	hasProb := len(h.ProbA) > 0 || len(h.ProbB) > 0
	if hasProb && (len(h.ProbA) != numPairs || len(h.ProbB) != numPairs) {
		return nil, ErrShapeMismatch
	}

	total := 0
	for _, c := range h.NrSV {
		total += c
	}
	if total != h.TotalSV || total != len(mf.SV) {
		return nil, ErrShapeMismatch
	}

	numAttributes, err := inferNumAttributes(mf.SV)
	if err != nil {
		return nil, err
	}
	if err := validateAttributeOrder(mf.SV, numAttributes); err != nil {
		return nil, err
	}

	rbf, err := kernel.NewRbf(*h.Gamma)
	if err != nil {
		return nil, err
	}

	paddedAttrs := simd.PadLen[float32](numAttributes)
	classes := make([]Class, n)

	svOffset := 0
	for ci := 0; ci < n; ci++ {
		numSV := h.NrSV[ci]
		coef := simd.NewBlock[float64](n-1, numSV)
		svMatrix := simd.NewMatrix[float32](numSV, numAttributes)

		for s := 0; s < numSV; s++ {
			row := mf.SV[svOffset+s]
			for r, v := range row.Coefficients {
				coef.Set(r, s, v)
			}
			for _, attr := range row.Attributes {
				svMatrix.Set(s, attr.Index, float32(attr.Value))
			}
		}

		classes[ci] = Class{
			Label:             h.Labels[ci],
			NumSupportVectors: numSV,
			Coefficients:      coef,
			SupportVectors:    svMatrix,
		}
		svOffset += numSV
	}

	rho := simd.NewTriangular[float64](n)
	for k, v := range h.Rho {
		rho.SetPairIndex(k, v)
	}

	var probs *Probabilities
	if hasProb {
		a := simd.NewTriangular[float64](n)
		b := simd.NewTriangular[float64](n)
		for k, v := range h.ProbA {
			a.SetPairIndex(k, v)
		}
		for k, v := range h.ProbB {
			b.SetPairIndex(k, v)
		}
		probs = &Probabilities{A: a, B: b}
	}

	return &Model{
		numAttributes:    numAttributes,
		paddedAttributes: paddedAttrs,
		numTotalSV:       total,
		kernel:           rbf,
		classes:          classes,
		rho:              rho,
		probabilities:    probs,
	}, nil
}

// inferNumAttributes derives the declared feature dimension from the first
// support vector row's attribute count; every row is validated against it
// by validateAttributeOrder.
func inferNumAttributes(rows []modelfile.SVRow) (int, error) {
	if len(rows) == 0 {
		return 0, ErrShapeMismatch
	}
	return len(rows[0].Attributes), nil
}

// validateAttributeOrder enforces that every support vector's attribute
// indices are a dense, strictly increasing prefix 0,1,...,numAttributes-1.
func validateAttributeOrder(rows []modelfile.SVRow, numAttributes int) error {
	for _, row := range rows {
		lastIndex := -1
		for _, attr := range row.Attributes {
			if attr.Index != lastIndex+1 {
				return &AttributesUnorderedError{Index: attr.Index, Value: attr.Value, LastIndex: lastIndex}
			}
			lastIndex = attr.Index
		}
		if lastIndex != numAttributes-1 {
			return &AttributesUnorderedError{Index: lastIndex + 1, Value: 0, LastIndex: lastIndex}
		}
	}
	return nil
}
