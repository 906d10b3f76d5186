// Copyright 2025 The ECGNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the single-hidden-layer binary classifier: its
// parameters, forward pass, loss and gradients.
//
// # Overview
//
// The network maps a 1×F segment to a probability:
//
//	hidden = ReLU(segment·W1 + b1)
//	output = sigmoid(hidden·w2 + b2)
//
// and is trained on mean binary cross-entropy. Backprop returns gradients
// averaged over the whole batch; pair it with package optim to update.
//
// # Basic Usage
//
//	import (
//	    "github.com/LoftinTitus/ECGNN/nn"
//	    "github.com/LoftinTitus/ECGNN/parallel"
//	)
//
//	func main() {
//	    params, _ := nn.NewParams(500, 64, nn.DefaultInit)
//
//	    output, hidden, err := nn.Forward(segment, params)
//	    ...
//	    grads, err := nn.Backprop(segments, params, labels, parallel.DefaultConfig())
//	}
//
// # Initialization
//
// DefaultInit sets every parameter to 0.01. All hidden units then start
// identical and stay identical for the whole run. Xavier{Seed: n} breaks the
// symmetry and is usually the better choice for new models.
package nn
