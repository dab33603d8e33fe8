// Copyright 2025 Naren Yellavula
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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlset.yaml"

type FilterConfig struct {
	Enabled           bool    `yaml:"enabled"`
	Capacity          uint    `yaml:"capacity"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type InterpreterConfig struct {
	Verify bool         `yaml:"verify"`
	Filter FilterConfig `yaml:"filter"`
}

type ShellConfig struct {
	Prompt string `yaml:"prompt"`
	Color  bool   `yaml:"color"`
}

type BenchConfig struct {
	Keys int   `yaml:"keys"`
	Seed int64 `yaml:"seed"`
}

type Config struct {
	Interpreter InterpreterConfig `yaml:"interpreter"`
	Shell       ShellConfig       `yaml:"shell"`
	Bench       BenchConfig       `yaml:"bench"`
}

func DefaultConfig() Config {
	return Config{
		Interpreter: InterpreterConfig{
			Verify: false,
			Filter: FilterConfig{
				Enabled:           true,
				Capacity:          100000,
				FalsePositiveRate: 0.01,
			},
		},
		Shell: ShellConfig{
			Prompt: "avl> ",
			Color:  true,
		},
		Bench: BenchConfig{
			Keys: 10000,
			Seed: 1,
		},
	}
}

// LoadConfig reads ~/.avlset.yaml. Missing or unreadable files yield the
// defaults; only a malformed file is reported as an error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := DefaultConfig()
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		config := DefaultConfig()
		return &config, nil
	}
	return parseConfig(data)
}

// parseConfig overlays the YAML document on the defaults, so a file
// naming only some settings keeps the rest.
func parseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.Interpreter.Filter.Capacity == 0 {
		config.Interpreter.Filter.Capacity = DefaultConfig().Interpreter.Filter.Capacity
	}
	if rate := config.Interpreter.Filter.FalsePositiveRate; rate <= 0 || rate >= 1 {
		config.Interpreter.Filter.FalsePositiveRate = DefaultConfig().Interpreter.Filter.FalsePositiveRate
	}
	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	config := DefaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, writing the default
// file first when none exists.
func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
