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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Tobii/ffsvm-go/modelfile"
	"github.com/Tobii/ffsvm-go/svm"
)

var (
	modelFlag    string
	featuresFlag string
	probsFlag    bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify one feature vector per line of a file against a model",
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&modelFlag, "model", "", "Path to a libSVM-format model file (required)")
	classifyCmd.Flags().StringVar(&featuresFlag, "features", "", "Path to a file of whitespace-separated feature rows (required)")
	classifyCmd.Flags().BoolVar(&probsFlag, "probabilities", false, "Report per-class probabilities instead of just the label")
	_ = classifyCmd.MarkFlagRequired("model")
	_ = classifyCmd.MarkFlagRequired("features")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	modelPath := modelFlag
	if modelPath == "" {
		modelPath = cfg.ModelPath
	}

	logrus.Infof("loading model %s", modelPath)
	f, err := os.Open(modelPath)
	if err != nil {
		return fmt.Errorf("opening model: %w", err)
	}
	defer f.Close()

	mf, err := modelfile.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing model: %w", err)
	}
	model, err := svm.BuildModel(mf)
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}
	logrus.Infof("model loaded: %d classes, %d support vectors", model.NumClasses(), model.NumTotalSV())

	featuresFile, err := os.Open(featuresFlag)
	if err != nil {
		return fmt.Errorf("opening features: %w", err)
	}
	defer featuresFile.Close()

	problem := svm.NewProblem(model)
	printer := message.NewPrinter(language.English)
	scanner := bufio.NewScanner(featuresFile)
	row := 0
	for scanner.Scan() {
		row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values, err := parseFeatureRow(line)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		if len(values) > model.Attributes() {
			return fmt.Errorf("row %d: %d features exceeds model's %d attributes", row, len(values), model.Attributes())
		}
		for i := range problem.Features {
			problem.Features[i] = 0
		}
		copy(problem.Features, values)

		if probsFlag {
			if err := model.PredictProbability(problem); err != nil {
				logrus.Warnf("row %d: probability estimate unavailable: %v", row, err)
			}
			printClassification(printer, model, problem, row)
		} else {
			model.PredictValue(problem)
			fmt.Printf("%d\t%d\n", row, problem.Label)
		}
		problem.Reset()
	}
	return scanner.Err()
}

func printClassification(p *message.Printer, model *svm.Model, problem *svm.Problem, row int) {
	p.Printf("%d\tlabel=%d\t", row, problem.Label)
	for i := 0; i < model.NumClasses(); i++ {
		label, _ := model.ClassLabelForIndex(i)
		p.Printf("%d:%.1f%% ", label, problem.Probabilities[i]*100)
	}
	fmt.Println()
}

func parseFeatureRow(line string) ([]float32, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}
