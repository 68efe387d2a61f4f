// Package config loads and validates training configuration files.
//
// A configuration is YAML:
//
//	model:
//	  inputs: 3
//	  layers: [4, 4, 1]
//	  activation: tanh
//	optimizer:
//	  name: sgd
//	  lr: 0.1
//	epochs: 20
//	seed: 42
//	data:
//	  - input: [2.0, 3.0, -1.0]
//	    target: [1.0]
//
// Fields missing from the file keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a configuration that fails validation.
var ErrInvalid = errors.New("invalid config")

var validate = validator.New()

// Config describes one training run.
type Config struct {
	Model     ModelConfig     `yaml:"model"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Epochs    int             `yaml:"epochs" validate:"gt=0"`
	Seed      uint64          `yaml:"seed"`
	Data      []Sample        `yaml:"data" validate:"required,min=1,dive"`
}

// ModelConfig describes the network shape.
type ModelConfig struct {
	Inputs     int    `yaml:"inputs" validate:"gt=0"`
	Layers     []int  `yaml:"layers" validate:"required,min=1,dive,gt=0"`
	Activation string `yaml:"activation" validate:"omitempty,oneof=tanh relu exp identity"`
}

// OptimizerConfig selects and tunes the optimizer. Zero hyperparameters take
// the optimizer's defaults.
type OptimizerConfig struct {
	Name     string  `yaml:"name" validate:"oneof=sgd adam"`
	LR       float64 `yaml:"lr" validate:"gt=0"`
	Momentum float64 `yaml:"momentum" validate:"gte=0,lt=1"`
	Beta1    float64 `yaml:"beta1" validate:"gte=0,lt=1"`
	Beta2    float64 `yaml:"beta2" validate:"gte=0,lt=1"`
	Eps      float64 `yaml:"eps" validate:"gte=0"`
}

// Sample is one training example.
type Sample struct {
	Input  []float64 `yaml:"input" validate:"required,min=1"`
	Target []float64 `yaml:"target" validate:"required,min=1"`
}

// Default returns the built-in run: a 3-4-4-1 tanh network fitted to four
// samples with plain SGD.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Inputs:     3,
			Layers:     []int{4, 4, 1},
			Activation: "tanh",
		},
		Optimizer: OptimizerConfig{
			Name: "sgd",
			LR:   0.1,
		},
		Epochs: 20,
		Seed:   42,
		Data: []Sample{
			{Input: []float64{2.0, 3.0, -1.0}, Target: []float64{1.0}},
			{Input: []float64{3.0, -1.0, 0.5}, Target: []float64{-1.0}},
			{Input: []float64{0.5, 1.0, 1.0}, Target: []float64{-1.0}},
			{Input: []float64{1.0, 1.0, -1.0}, Target: []float64{1.0}},
		},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and that every sample matches the
// network's input and output sizes.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	outputs := c.Model.Layers[len(c.Model.Layers)-1]
	for i, s := range c.Data {
		if len(s.Input) != c.Model.Inputs {
			return fmt.Errorf("%w: sample %d has %d inputs, model takes %d", ErrInvalid, i, len(s.Input), c.Model.Inputs)
		}
		if len(s.Target) != outputs {
			return fmt.Errorf("%w: sample %d has %d targets, model outputs %d", ErrInvalid, i, len(s.Target), outputs)
		}
	}
	return nil
}
