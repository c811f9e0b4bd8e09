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

// Command cpuinfo is a diagnostic tool printing the CPU features Go
// detected and the simd package's resulting lane-padding decision.
// Adapted from the teacher's internal/cpuinfo, rewired against this
// repository's simd dispatch package instead of hwy.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/Tobii/ffsvm-go/simd"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("simd dispatch level: %s\n", simd.CurrentLevel())
	fmt.Printf("simd dispatch width: %d bytes\n", simd.CurrentWidth())
	fmt.Printf("simd dispatch name: %s\n", simd.CurrentName())
	fmt.Printf("FFSVM_NO_SIMD set:   %v\n", simd.NoSimdEnv())
	fmt.Printf("float32 lanes:       %d\n", simd.LaneWidth[float32]())
	fmt.Printf("float64 lanes:       %d\n", simd.LaneWidth[float64]())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:    %v\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:   %v\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:  %v\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
}
