// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"fmt"
	"os"

	"github.com/consensys/go-owl/pkg/owl/ofn"
	"gopkg.in/yaml.v3"
)

// COLOR_AUTO enables colour only when writing to a terminal.
const COLOR_AUTO = "auto"

// COLOR_ALWAYS enables colour unconditionally.
const COLOR_ALWAYS = "always"

// COLOR_NEVER disables colour unconditionally.
const COLOR_NEVER = "never"

// Config holds the settings used by the owlfn tool.
type Config struct {
	Limits LimitsConfig `yaml:"limits"`
	Report ReportConfig `yaml:"report"`
}

// LimitsConfig bounds the resources used when parsing a document.
type LimitsConfig struct {
	// Maximum nesting depth of expressions and annotations.
	MaxDepth uint `yaml:"max_depth"`
	// Maximum document size, in bytes.
	MaxInputSize uint `yaml:"max_input_size"`
}

// ReportConfig determines how syntax errors are reported.
type ReportConfig struct {
	// One of "auto", "always" or "never".
	Color string `yaml:"color"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxDepth:     ofn.DEFAULT_MAX_DEPTH,
			MaxInputSize: ofn.DEFAULT_MAX_INPUT_SIZE,
		},
		Report: ReportConfig{
			Color: COLOR_AUTO,
		},
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Limits.MaxDepth == 0 {
		return fmt.Errorf("limits.max_depth must be positive")
	} else if c.Limits.MaxInputSize == 0 {
		return fmt.Errorf("limits.max_input_size must be positive")
	}
	//
	switch c.Report.Color {
	case COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
		return nil
	default:
		return fmt.Errorf("report.color must be one of auto, always or never (was %q)", c.Report.Color)
	}
}

// Options converts the limits into parser options.
func (c *Config) Options() ofn.Options {
	return ofn.Options{
		MaxDepth:     c.Limits.MaxDepth,
		MaxInputSize: c.Limits.MaxInputSize,
	}
}

// LoadFromFile reads a YAML configuration file.  Settings missing from the
// file retain their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	//
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	//
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	//
	return cfg, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	//
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	//
	return nil
}
