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
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds serving defaults that --config can supply. Only ModelPath
// is read, by classify, and only when --model is given as an empty string
// (--model itself is a required flag); MaxProblems and LogLevel are parsed
// but not applied. A non-empty --model always wins over ModelPath.
type Config struct {
	ModelPath   string `yaml:"modelPath"`
	MaxProblems int    `yaml:"maxProblems"`
	LogLevel    string `yaml:"logLevel"`
}

// loadConfig reads and parses a YAML config file. An empty path is not an
// error: it returns a zero Config so callers fall through to flag defaults.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
