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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProblemResetClearsVoteProbabilitiesLabelNotFeatures(t *testing.T) {
	m := &Model{
		classes:          []Class{{Label: 0}, {Label: 1}},
		paddedAttributes: 4,
	}
	p := NewProblem(m)
	copy(p.Features, []float32{1, 2, 3, 4})
	p.Vote[0] = 5
	p.Probabilities[1] = 0.9
	p.Label = 7

	p.Reset()

	require.Equal(t, []float32{1, 2, 3, 4}, p.Features)
	require.Equal(t, []int{0, 0}, p.Vote)
	require.Equal(t, []float64{0, 0}, p.Probabilities)
	require.Equal(t, 0, p.Label)
}
