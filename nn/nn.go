// Copyright 2025 The ECGNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/LoftinTitus/ECGNN/internal/nn"
	"github.com/LoftinTitus/ECGNN/internal/parallel"
	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// Parameters

// Params is the learnable state of the classifier.
type Params = nn.Params

// Gradients mirrors Params with dL/dθ for each parameter.
type Gradients = nn.Gradients

// Tensor is a named parameter snapshot used for persistence.
type Tensor = nn.Tensor

// NewParams allocates parameters for features inputs and hidden units.
//
// Example:
//
//	params, err := nn.NewParams(500, 64, nn.Xavier{Seed: 42})
func NewParams(features, hidden int, init Initializer) (*Params, error) {
	return nn.NewParams(features, hidden, init)
}

// ParamsFromStateDict rebuilds parameters from named tensors.
func ParamsFromStateDict(state map[string]Tensor) (*Params, error) {
	return nn.ParamsFromStateDict(state)
}

// NewGradients returns zero gradients for features inputs and hidden units.
func NewGradients(features, hidden int) (*Gradients, error) {
	return nn.NewGradients(features, hidden)
}

// Initialization

// Initializer fills freshly allocated parameters.
type Initializer = nn.Initializer

// Constant sets every parameter entry to Value.
type Constant = nn.Constant

// Xavier draws Glorot-uniform weights from Seed and zeroes biases.
type Xavier = nn.Xavier

// DefaultInit sets every parameter to 0.01.
var DefaultInit = nn.DefaultInit

// Evaluation

// Forward evaluates the network on one 1×F segment.
func Forward(segment *tensor.Matrix, p *Params) (float64, tensor.Vector, error) {
	return nn.Forward(segment, p)
}

// BinaryCrossEntropy is the mean clamped binary cross-entropy.
func BinaryCrossEntropy(outputs, labels tensor.Vector) (float64, error) {
	return nn.BinaryCrossEntropy(outputs, labels)
}

// Backprop computes batch-averaged gradients.
func Backprop(segments []*tensor.Matrix, p *Params, labels tensor.Vector, cfg parallel.Config) (*Gradients, error) {
	return nn.Backprop(segments, p, labels, cfg)
}

// Epsilon bounds predictions away from 0 and 1 inside the loss.
const Epsilon = nn.Epsilon

// Clamp limits p to [Epsilon, 1-Epsilon].
func Clamp(p float64) float64 { return nn.Clamp(p) }

// Activations

// ReLU returns max(0, x).
func ReLU(x float64) float64 { return nn.ReLU(x) }

// Sigmoid returns 1/(1+e^-x).
func Sigmoid(x float64) float64 { return nn.Sigmoid(x) }

// Checkpoints

// Checkpoint is a parameter snapshot plus training state.
type Checkpoint = nn.Checkpoint

// LoadCheckpoint reads a .ecgn checkpoint.
func LoadCheckpoint(path string) (*Checkpoint, error) { return nn.LoadCheckpoint(path) }

// ErrEmptyBatch is returned for operations on zero examples.
var ErrEmptyBatch = nn.ErrEmptyBatch
