// Copyright 2025 The ECGNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter update rule for the classifier.
//
// # Basic Usage
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//
//	grads, err := nn.Backprop(segments, params, labels, parallel.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	if err := optimizer.Step(params, grads); err != nil {
//	    return err
//	}
//
// SGD applies param -= lr·grad to every entry. A learning rate of 0 leaves the
// parameters bit-identical.
package optim

import "github.com/LoftinTitus/ECGNN/internal/optim"

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// SGD represents the plain SGD optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) *SGD { return optim.NewSGD(config) }
