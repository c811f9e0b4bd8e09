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

// Command ffi is the cgo export boundary over the svm engine, built with
// `go build -buildmode=c-shared` (or c-archive). It mirrors the original
// ffi.rs's Context/error-code design (spec.md §6): one opaque handle per
// loaded model, a fixed-size pool of reusable Problems, and a flat integer
// error code space instead of panics crossing the C boundary.
//
// Unlike the original, a context is referenced by a runtime/cgo.Handle
// rather than a raw pointer cast to/from uintptr on the Go side: destroy
// deletes the handle's registry entry so the Go garbage collector can
// reclaim the Model and its Problem pool, closing the handle leak spec.md
// §9 notes in the original's destroy path (there was nothing left for the
// C caller to free; the leak was the Go-side map entry never going away).
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"os"
	"runtime/cgo"
	"unicode/utf8"
	"unsafe"

	"github.com/Tobii/ffsvm-go/modelfile"
	"github.com/Tobii/ffsvm-go/svm"
)

// context is the Go-side state one handle refers to.
type context struct {
	maxProblems int
	model       *svm.Model
	problems    []*svm.Problem
}

func lookup(handle C.uintptr_t) (*context, bool) {
	h := cgo.Handle(handle)
	defer func() { recover() }() // an unknown/expired handle panics on Value()
	v := h.Value()
	ctx, ok := v.(*context)
	return ctx, ok
}

// FfsvmTest squares value; a smoke test that the shared library loaded and
// the calling convention lines up, ported from the original's ffsvm_test.
//
//export FfsvmTest
func FfsvmTest(value C.int32_t) C.int32_t {
	return value * value
}

//export FfsvmContextCreate
func FfsvmContextCreate(handleOut *C.uintptr_t) C.int32_t {
	if handleOut == nil {
		return C.int32_t(errNullPointer)
	}
	ctx := &context{maxProblems: 1}
	*handleOut = C.uintptr_t(cgo.NewHandle(ctx))
	return C.int32_t(errOK)
}

//export FfsvmSetMaxProblems
func FfsvmSetMaxProblems(handle C.uintptr_t, maxProblems C.uint32_t) C.int32_t {
	ctx, ok := lookup(handle)
	if !ok {
		return C.int32_t(errNullPointer)
	}
	if ctx.model != nil {
		return C.int32_t(errModelAlreadyLoaded)
	}
	ctx.maxProblems = int(maxProblems)
	return C.int32_t(errOK)
}

//export FfsvmLoadModel
func FfsvmLoadModel(handle C.uintptr_t, modelPath *C.char) C.int32_t {
	ctx, ok := lookup(handle)
	if !ok {
		return C.int32_t(errNullPointer)
	}
	if modelPath == nil {
		return C.int32_t(errNullPointer)
	}
	path := C.GoString(modelPath)
	if !utf8.ValidString(path) {
		return C.int32_t(errNoValidUTF8)
	}

	f, err := os.Open(path)
	if err != nil {
		return C.int32_t(errModelParse)
	}
	defer f.Close()

	mf, err := modelfile.Parse(f)
	if err != nil {
		return C.int32_t(errModelParse)
	}
	model, err := svm.BuildModel(mf)
	if err != nil {
		return C.int32_t(errModelBuild)
	}

	problems := make([]*svm.Problem, ctx.maxProblems)
	for i := range problems {
		problems[i] = svm.NewProblem(model)
	}
	ctx.model = model
	ctx.problems = problems
	return C.int32_t(errOK)
}

//export FfsvmPredictValues
func FfsvmPredictValues(handle C.uintptr_t, featuresPtr *C.float, featuresLen C.uint32_t, labelsPtr *C.uint32_t, labelsLen C.uint32_t) C.int32_t {
	ctx, ok := lookup(handle)
	if !ok {
		return C.int32_t(errNullPointer)
	}
	if featuresPtr == nil || labelsPtr == nil {
		return C.int32_t(errNullPointer)
	}
	if ctx.model == nil {
		return C.int32_t(errNoModel)
	}

	numAttrs := ctx.model.Attributes()
	if numAttrs == 0 || int(featuresLen)%numAttrs != 0 {
		return C.int32_t(errFeaturesLenNotMultiple)
	}
	numProblems := int(featuresLen) / numAttrs
	if numProblems > len(ctx.problems) {
		return C.int32_t(errPoolTooSmall)
	}
	if numProblems != int(labelsLen) {
		return C.int32_t(errLabelsLenMismatch)
	}

	features := unsafe.Slice((*float32)(unsafe.Pointer(featuresPtr)), int(featuresLen))
	labels := unsafe.Slice((*uint32)(unsafe.Pointer(labelsPtr)), int(labelsLen))

	for i := 0; i < numProblems; i++ {
		p := ctx.problems[i]
		copy(p.Features, features[i*numAttrs:(i+1)*numAttrs])
		ctx.model.PredictValue(p)
		labels[i] = uint32(p.Label)
		p.Reset()
	}
	return C.int32_t(errOK)
}

//export FfsvmContextDestroy
func FfsvmContextDestroy(handlePtr *C.uintptr_t) C.int32_t {
	if handlePtr == nil {
		return C.int32_t(errNullPointer)
	}
	cgo.Handle(*handlePtr).Delete()
	*handlePtr = 0
	return C.int32_t(errOK)
}

func main() {}
