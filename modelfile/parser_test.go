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

package modelfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tobii/ffsvm-go/modelfile"
)

const validModel = `svm_type c_svc
kernel_type rbf
gamma 1
nr_class 2
total_sv 2
rho 0
label 0 12
nr_sv 1 1
SV
-1 1:0 2:0 3:0 4:0
15 1:1 2:1 3:1 4:1
`

func TestParseValidModel(t *testing.T) {
	mf, err := modelfile.Parse(strings.NewReader(validModel))
	require.NoError(t, err)

	require.Equal(t, "c_svc", mf.Header.SvmType)
	require.Equal(t, "rbf", mf.Header.KernelType)
	require.NotNil(t, mf.Header.Gamma)
	require.Equal(t, float32(1), *mf.Header.Gamma)
	require.Equal(t, 2, mf.Header.NumClasses)
	require.Equal(t, 2, mf.Header.TotalSV)
	require.Equal(t, []float64{0}, mf.Header.Rho)
	require.Equal(t, []int{0, 12}, mf.Header.Labels)
	require.Equal(t, []int{1, 1}, mf.Header.NrSV)
	require.False(t, mf.Header.HasProbabilities())

	require.Len(t, mf.SV, 2)
	require.Equal(t, []float64{-1}, mf.SV[0].Coefficients)
	require.Equal(t, 4, len(mf.SV[0].Attributes))
	require.Equal(t, 0, mf.SV[0].Attributes[0].Index)
	require.Equal(t, 3, mf.SV[1].Attributes[3].Index)
	require.Equal(t, 1.0, mf.SV[1].Attributes[3].Value)
}

func TestParseModelWithProbabilities(t *testing.T) {
	text := `svm_type c_svc
kernel_type rbf
gamma 0.5
nr_class 2
total_sv 2
rho 0.1
label 0 1
probA -1.2
probB 0.3
nr_sv 1 1
SV
1 1:0.1 2:0.2
-1 1:0.3 2:0.4
`
	mf, err := modelfile.Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.True(t, mf.Header.HasProbabilities())
	require.Equal(t, []float64{-1.2}, mf.Header.ProbA)
	require.Equal(t, []float64{0.3}, mf.Header.ProbB)
}

func TestParseRejectsNrSVMismatch(t *testing.T) {
	text := `svm_type c_svc
kernel_type rbf
gamma 1
nr_class 2
total_sv 3
rho 0
label 0 1
nr_sv 1 1
SV
1 1:0.1
-1 1:0.2
`
	_, err := modelfile.Parse(strings.NewReader(text))
	require.Error(t, err)

	var perr *modelfile.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseRejectsMissingSVMarker(t *testing.T) {
	text := `svm_type c_svc
kernel_type rbf
gamma 1
nr_class 2
total_sv 0
rho 0
label 0 1
nr_sv 0 0
`
	_, err := modelfile.Parse(strings.NewReader(text))
	require.Error(t, err)
}

func TestParseRejectsUnknownHeaderKey(t *testing.T) {
	text := `svm_type c_svc
bogus_key 7
SV
`
	_, err := modelfile.Parse(strings.NewReader(text))
	require.Error(t, err)
}

func TestParseRejectsMalformedAttribute(t *testing.T) {
	text := `svm_type c_svc
kernel_type rbf
gamma 1
nr_class 2
total_sv 1
rho 0
label 0 1
nr_sv 1 0
SV
1 not-a-pair
`
	_, err := modelfile.Parse(strings.NewReader(text))
	require.Error(t, err)
}
