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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Parse reads a libsvm text model per the grammar fixed in spec.md §6 and
// returns its neutral parsed representation. The input is consumed as a
// stream; no copy of the full text is retained once parsing completes.
func Parse(r io.Reader) (*ModelFile, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	mf := &ModelFile{}
	line := 0
	inSV := false

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if inSV {
			row, err := parseSVRow(text, len(mf.Header.Labels))
			if err != nil {
				return nil, &ParseError{Line: line, Message: err.Error()}
			}
			mf.SV = append(mf.SV, row)
			continue
		}

		fields := strings.Fields(text)
		key := fields[0]
		values := fields[1:]

		switch key {
		case "svm_type":
			mf.Header.SvmType = firstOr(values, "")
		case "kernel_type":
			mf.Header.KernelType = firstOr(values, "")
		case "gamma":
			g, err := strconv.ParseFloat(firstOr(values, ""), 32)
			if err != nil {
				return nil, &ParseError{Line: line, Message: "malformed gamma: " + err.Error()}
			}
			gf := float32(g)
			mf.Header.Gamma = &gf
		case "nr_class":
			n, err := strconv.Atoi(firstOr(values, ""))
			if err != nil {
				return nil, &ParseError{Line: line, Message: "malformed nr_class: " + err.Error()}
			}
			mf.Header.NumClasses = n
		case "total_sv":
			n, err := strconv.Atoi(firstOr(values, ""))
			if err != nil {
				return nil, &ParseError{Line: line, Message: "malformed total_sv: " + err.Error()}
			}
			mf.Header.TotalSV = n
		case "rho":
			vals, err := parseFloat64s(values)
			if err != nil {
				return nil, &ParseError{Line: line, Message: "malformed rho: " + err.Error()}
			}
			mf.Header.Rho = vals
		case "label":
			vals, err := parseInts(values)
			if err != nil {
				return nil, &ParseError{Line: line, Message: "malformed label: " + err.Error()}
			}
			mf.Header.Labels = vals
		case "probA":
			vals, err := parseFloat64s(values)
			if err != nil {
				return nil, &ParseError{Line: line, Message: "malformed probA: " + err.Error()}
			}
			mf.Header.ProbA = vals
		case "probB":
			vals, err := parseFloat64s(values)
			if err != nil {
				return nil, &ParseError{Line: line, Message: "malformed probB: " + err.Error()}
			}
			mf.Header.ProbB = vals
		case "nr_sv":
			vals, err := parseInts(values)
			if err != nil {
				return nil, &ParseError{Line: line, Message: "malformed nr_sv: " + err.Error()}
			}
			mf.Header.NrSV = vals
		case "SV":
			inSV = true
		default:
			return nil, &ParseError{Line: line, Message: "unknown header key " + strconv.Quote(key)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !inSV {
		return nil, &ParseError{Line: line, Message: "model file has no SV section"}
	}

	total := lo.Sum(mf.Header.NrSV)
	if total != mf.Header.TotalSV {
		return nil, &ParseError{Line: line, Message: "nr_sv does not sum to total_sv"}
	}

	return mf, nil
}

func parseSVRow(text string, numClasses int) (SVRow, error) {
	fields := strings.Fields(text)
	numCoef := numClasses - 1
	if numCoef < 0 {
		numCoef = 0
	}
	if len(fields) < numCoef {
		return SVRow{}, errShortRow
	}

	row := SVRow{Coefficients: make([]float64, numCoef)}
	for i := 0; i < numCoef; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return SVRow{}, err
		}
		row.Coefficients[i] = v
	}

	for _, tok := range fields[numCoef:] {
		idxStr, valStr, ok := strings.Cut(tok, ":")
		if !ok {
			return SVRow{}, errMalformedAttr
		}
		idx1, err := strconv.Atoi(idxStr)
		if err != nil {
			return SVRow{}, err
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return SVRow{}, err
		}
		row.Attributes = append(row.Attributes, Attribute{Index: idx1 - 1, Value: val})
	}
	return row, nil
}

func parseFloat64s(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func firstOr(fields []string, def string) string {
	if len(fields) == 0 {
		return def
	}
	return fields[0]
}
