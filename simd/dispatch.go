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

package simd

import "os"

// DispatchLevel names the SIMD width this build/host combination decided to
// pad rows for. It never changes which code path runs (there is only the
// portable Go one); it only changes LaneWidth, i.e. the padding target.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int // bytes per SIMD register at this dispatch level
	currentName  string
)

// CurrentLevel returns the dispatch level chosen at process start.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the register width, in bytes, at the current
// dispatch level.
func CurrentWidth() int { return currentWidth }

// CurrentName returns a short human-readable name for the current dispatch
// level, e.g. for diagnostic output (see cmd/cpuinfo).
func CurrentName() string { return currentName }

// NoSimdEnv reports whether FFSVM_NO_SIMD is set, forcing scalar-width
// padding regardless of detected CPU features. Mirrors the teacher's
// HWY_NO_SIMD escape hatch.
func NoSimdEnv() bool {
	v := os.Getenv("FFSVM_NO_SIMD")
	return v != "" && v != "0"
}
