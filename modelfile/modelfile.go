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

// Package modelfile is the neutral parsed representation of a libsvm text
// model, and the lexer that produces it. Spec.md §1 treats this component
// as an external collaborator of the prediction engine; it is implemented
// here anyway since the engine needs something to hand to svm.BuildModel.
package modelfile

// Header holds the key/value lines that precede the "SV" marker.
type Header struct {
	SvmType    string
	KernelType string
	Gamma      *float32 // nil if absent
	NumClasses int
	TotalSV    int
	Rho        []float64 // nr_class*(nr_class-1)/2 entries
	Labels     []int     // nr_class entries, canonical order
	ProbA      []float64 // optional, same cardinality as Rho
	ProbB      []float64 // optional, same cardinality as Rho
	NrSV       []int     // nr_class entries, sums to TotalSV
}

// HasProbabilities reports whether the header advertised probA/probB.
func (h Header) HasProbabilities() bool {
	return len(h.ProbA) > 0 && len(h.ProbB) > 0
}

// Attribute is one index:value entry of a support vector row. Index is
// 0-based internally (the 1-based on-disk index minus one); the parser is
// responsible for that conversion so downstream code never re-derives it.
type Attribute struct {
	Index int
	Value float64
}

// SVRow is one parsed support vector: its per-opposing-class dual
// coefficients, in file order, followed by its sparse attribute list in
// strictly ascending index order.
type SVRow struct {
	Coefficients []float64 // nr_class-1 entries
	Attributes   []Attribute
}

// ModelFile is the complete neutral parsed representation svm.BuildModel
// consumes. The text buffer it was parsed from is not retained.
type ModelFile struct {
	Header Header
	SV     []SVRow
}
