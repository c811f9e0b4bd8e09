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
	"errors"
	"fmt"
)

// Sentinel errors for conditions with no payload, checked with errors.Is.
// None of these are ever wrapped with %w at their definition site; callers
// that need context wrap them at the call boundary instead.
var (
	// ErrTooFewClasses is returned by BuildModel when nr_class < 2: a
	// one-vs-one voting scheme needs at least two classes to pair.
	ErrTooFewClasses = errors.New("svm: model must declare at least 2 classes")

	// ErrUnsupportedSvmType is returned when svm_type is not c_svc.
	ErrUnsupportedSvmType = errors.New("svm: only svm_type c_svc is supported")

	// ErrUnsupportedKernel is returned when kernel_type is not rbf.
	ErrUnsupportedKernel = errors.New("svm: only kernel_type rbf is supported")

	// ErrShapeMismatch is returned when a header field's cardinality
	// (labels, nr_sv, rho, probA/probB) does not match nr_class.
	ErrShapeMismatch = errors.New("svm: header field shape does not match nr_class")

	// ErrModelDoesNotSupportProbabilities is returned by predict_probability
	// when the model was not built with probA/probB calibration.
	ErrModelDoesNotSupportProbabilities = errors.New("svm: model has no probability calibration")

	// ErrMaxIterationsExceededPredictingProbabilities is returned when the
	// pairwise-coupling fixed-point iteration fails to converge within its
	// iteration cap.
	ErrMaxIterationsExceededPredictingProbabilities = errors.New("svm: pairwise coupling did not converge")
)

// AttributesUnorderedError reports a support vector whose attribute
// indices are not the required dense prefix 0,1,...,num_attributes-1.
// Mirrors the original SVMError::SvmAttributesUnordered{index,value,last_index}.
type AttributesUnorderedError struct {
	Index     int     // the offending attribute index
	Value     float64 // its value, for debugging the model file
	LastIndex int     // the last index successfully processed (-1 if none)
}

func (e *AttributesUnorderedError) Error() string {
	return fmt.Sprintf("svm: attribute index %d out of order (value %v, last index %d)", e.Index, e.Value, e.LastIndex)
}
