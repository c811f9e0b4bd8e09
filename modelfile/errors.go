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

package modelfile

import (
	"errors"
	"fmt"
)

// ParseError reports a malformed libsvm text model. Line is 1-based.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("modelfile: line %d: %s", e.Line, e.Message)
}

var (
	errShortRow      = errors.New("modelfile: SV row has fewer fields than nr_class-1 coefficients")
	errMalformedAttr = errors.New("modelfile: attribute token missing ':'")
)
