// Package optim implements the parameter update rule for the binary classifier.
//
// This package provides:
//   - Optimizer interface: Base interface for optimizers
//   - SGD: plain Stochastic Gradient Descent
//
// Example usage:
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
package optim

import "github.com/LoftinTitus/ECGNN/internal/nn"

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - GetLR: Get current learning rate (for monitoring)
//   - SetLR: Replace the learning rate
type Optimizer interface {
	// Step applies gradient updates to p in place.
	//
	// g must have the same shapes as p. Nothing is modified when they disagree.
	Step(p *nn.Params, g *nn.Gradients) error

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
