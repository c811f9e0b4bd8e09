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

package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// whatever it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunClassifyLabelOnly(t *testing.T) {
	featuresFile := t.TempDir() + "/features.txt"
	require.NoError(t, os.WriteFile(featuresFile, []byte("0.55838 -0.157895 0.581292 -0.221184\n0 0 0 0\n"), 0o644))

	modelFlag = "../../internal/testdata/two_class_rbf.model"
	featuresFlag = featuresFile
	probsFlag = false
	configPath = ""
	defer func() { modelFlag, featuresFlag, probsFlag, configPath = "", "", false, "" }()

	out := captureStdout(t, func() {
		require.NoError(t, runClassify(classifyCmd, nil))
	})

	require.Equal(t, "1\t12\n2\t0\n", out)
}

func TestRunClassifyProbabilities(t *testing.T) {
	featuresFile := t.TempDir() + "/features.txt"
	require.NoError(t, os.WriteFile(featuresFile, []byte("0 1 1\n"), 0o644))

	modelFlag = "../../internal/testdata/three_class_rbf_prob.model"
	featuresFlag = featuresFile
	probsFlag = true
	configPath = ""
	defer func() { modelFlag, featuresFlag, probsFlag, configPath = "", "", false, "" }()

	out := captureStdout(t, func() {
		require.NoError(t, runClassify(classifyCmd, nil))
	})

	require.Contains(t, out, "1\tlabel=")
	require.Contains(t, out, "0:")
	require.Contains(t, out, "1:")
	require.Contains(t, out, "2:")
}

func TestRunClassifyRejectsTooManyFeatures(t *testing.T) {
	featuresFile := t.TempDir() + "/features.txt"
	require.NoError(t, os.WriteFile(featuresFile, []byte("1 2 3 4 5\n"), 0o644))

	modelFlag = "../../internal/testdata/two_class_rbf.model"
	featuresFlag = featuresFile
	probsFlag = false
	configPath = ""
	defer func() { modelFlag, featuresFlag, probsFlag, configPath = "", "", false, "" }()

	err := runClassify(classifyCmd, nil)
	require.Error(t, err)
}
