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

package simd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tobii/ffsvm-go/simd"
)

func TestCurrentWidthIsPositiveAndByteMultipleOfLanes(t *testing.T) {
	require.Greater(t, simd.CurrentWidth(), 0)
	require.Equal(t, simd.CurrentWidth(), simd.LaneWidth[float32]()*4)
	require.Equal(t, simd.CurrentWidth(), simd.LaneWidth[float64]()*8)
	require.NotEmpty(t, simd.CurrentName())
}

func TestNoSimdEnvUnsetByDefault(t *testing.T) {
	t.Setenv("FFSVM_NO_SIMD", "")
	require.False(t, simd.NoSimdEnv())

	t.Setenv("FFSVM_NO_SIMD", "1")
	require.True(t, simd.NoSimdEnv())

	t.Setenv("FFSVM_NO_SIMD", "0")
	require.False(t, simd.NoSimdEnv())
}
