package nn

import (
	"fmt"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// Gradients mirrors Params field for field, holding dL/dθ for each parameter.
type Gradients struct {
	WeightsInputHidden  *tensor.Matrix
	BiasHidden          tensor.Vector
	WeightsHiddenOutput tensor.Vector
	BiasOutput          float64
}

// NewGradients returns zero gradients shaped for features inputs and hidden units.
func NewGradients(features, hidden int) (*Gradients, error) {
	w1, err := tensor.NewMatrix(features, hidden)
	if err != nil {
		return nil, err
	}
	return &Gradients{
		WeightsInputHidden:  w1,
		BiasHidden:          tensor.NewVector(hidden),
		WeightsHiddenOutput: tensor.NewVector(hidden),
	}, nil
}

// AddInPlace accumulates other into g.
func (g *Gradients) AddInPlace(other *Gradients) error {
	if err := tensor.AddInPlace(g.WeightsInputHidden, other.WeightsInputHidden); err != nil {
		return fmt.Errorf("weights_input_hidden: %w", err)
	}
	if err := tensor.VecAddInPlace(g.BiasHidden, other.BiasHidden); err != nil {
		return fmt.Errorf("bias_hidden: %w", err)
	}
	if err := tensor.VecAddInPlace(g.WeightsHiddenOutput, other.WeightsHiddenOutput); err != nil {
		return fmt.Errorf("weights_hidden_output: %w", err)
	}
	g.BiasOutput += other.BiasOutput
	return nil
}

// ScalarDivide returns a new Gradients with every component divided by s.
func (g *Gradients) ScalarDivide(s float64) *Gradients {
	return &Gradients{
		WeightsInputHidden:  tensor.ScalarDivide(g.WeightsInputHidden, s),
		BiasHidden:          tensor.VecScalarDivide(g.BiasHidden, s),
		WeightsHiddenOutput: tensor.VecScalarDivide(g.WeightsHiddenOutput, s),
		BiasOutput:          g.BiasOutput / s,
	}
}

// Flatten returns the gradients in the same order as Params.Flatten.
func (g *Gradients) Flatten() []float64 {
	out := make([]float64, 0, len(g.WeightsInputHidden.Data())+2*len(g.BiasHidden)+1)
	out = append(out, g.WeightsInputHidden.Data()...)
	out = append(out, g.BiasHidden...)
	out = append(out, g.WeightsHiddenOutput...)
	return append(out, g.BiasOutput)
}

// CheckShape reports whether g matches the shapes of p.
func (g *Gradients) CheckShape(p *Params) error {
	if !g.WeightsInputHidden.Shape().Equal(p.WeightsInputHidden.Shape()) {
		return &tensor.ShapeError{Op: "Gradients", Left: p.WeightsInputHidden.Shape(), Right: g.WeightsInputHidden.Shape(), Rule: "weights_input_hidden shapes match"}
	}
	if len(g.BiasHidden) != len(p.BiasHidden) {
		return &tensor.ShapeError{Op: "Gradients", Left: p.BiasHidden.Shape(), Right: g.BiasHidden.Shape(), Rule: "bias_hidden shapes match"}
	}
	if len(g.WeightsHiddenOutput) != len(p.WeightsHiddenOutput) {
		return &tensor.ShapeError{Op: "Gradients", Left: p.WeightsHiddenOutput.Shape(), Right: g.WeightsHiddenOutput.Shape(), Rule: "weights_hidden_output shapes match"}
	}
	return nil
}
