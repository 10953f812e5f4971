// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config loads the training knobs a driver needs (learning
// rate, optimizer kind, epoch count, hidden layer widths) from a YAML
// document, using gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OptimizerKind selects which optim.Optimizer the driver constructs.
type OptimizerKind string

const (
	// OptimizerSGD selects plain gradient descent.
	OptimizerSGD OptimizerKind = "sgd"
	// OptimizerAdam selects adaptive moment estimation.
	OptimizerAdam OptimizerKind = "adam"
)

// Hyperparameters holds the knobs a training driver reads before
// constructing a model and optimizer.
type Hyperparameters struct {
	Optimizer    OptimizerKind `yaml:"optimizer"`
	LearningRate float32       `yaml:"learning_rate"`
	Epochs       int           `yaml:"epochs"`
	HiddenLayers []int         `yaml:"hidden_layers"`
}

// Default returns the hyperparameters used when no config file is
// supplied: Adam at its default learning rate, 100 epochs, one hidden
// layer of width 8.
func Default() Hyperparameters {
	return Hyperparameters{
		Optimizer:    OptimizerAdam,
		LearningRate: 1e-3,
		Epochs:       100,
		HiddenLayers: []int{8},
	}
}

// Load reads and parses a YAML hyperparameters document from path.
func Load(path string) (Hyperparameters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Hyperparameters{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Hyperparameters{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
