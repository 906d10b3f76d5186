package optim

import (
	"fmt"

	"github.com/LoftinTitus/ECGNN/internal/nn"
	"gonum.org/v1/gonum/floats"
)

// SGD implements plain Stochastic Gradient Descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// applied to every entry of every parameter tensor. A learning rate of 0
// leaves parameters bit-identical.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	if err := optimizer.Step(params, grads); err != nil {
//	    return err
//	}
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate. Zero is a valid rate, not a request for a default.
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return &SGD{lr: config.LR}
}

// Step performs a single optimization step.
//
// Shapes are checked before anything is written, so a mismatched g leaves p
// untouched and returns a *tensor.ShapeError.
func (s *SGD) Step(p *nn.Params, g *nn.Gradients) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("sgd: %w", err)
	}
	if err := g.CheckShape(p); err != nil {
		return fmt.Errorf("sgd: %w", err)
	}

	if s.lr == 0 {
		return nil
	}

	floats.AddScaled(p.WeightsInputHidden.Data(), -s.lr, g.WeightsInputHidden.Data())
	floats.AddScaled(p.BiasHidden, -s.lr, g.BiasHidden)
	floats.AddScaled(p.WeightsHiddenOutput, -s.lr, g.WeightsHiddenOutput)
	p.BiasOutput -= s.lr * g.BiasOutput
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

var _ Optimizer = (*SGD)(nil)
