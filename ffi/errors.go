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

// Error code space returned by every exported function, mirroring the
// original ffi.rs's Errors enum (spec.md §6).
const (
	errOK                     int32 = 0
	errNullPointer            int32 = -1
	errNoValidUTF8            int32 = -2
	errModelParse             int32 = -20
	errModelBuild             int32 = -30
	errNoModel                int32 = -31
	errModelAlreadyLoaded     int32 = -32
	errPoolTooSmall           int32 = -40
	errFeaturesLenNotMultiple int32 = -41
	errLabelsLenMismatch      int32 = -42
)
