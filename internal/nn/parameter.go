// Package nn implements the two-layer binary classifier.
//
// This package provides:
//   - Params: the four parameter tensors and their initializers
//   - Forward: ReLU hidden layer followed by a sigmoid output unit
//   - BinaryCrossEntropy: clamped mean log loss
//   - Backprop: batch-averaged gradients, computed per example in parallel
//   - Checkpoint: .ecgn persistence of parameters and training state
package nn

import (
	"fmt"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// State dict keys for the four parameter tensors.
const (
	KeyWeightsInputHidden  = "weights_input_hidden"
	KeyBiasHidden          = "bias_hidden"
	KeyWeightsHiddenOutput = "weights_hidden_output"
	KeyBiasOutput          = "bias_output"
)

// Params is the learnable state of the single-hidden-layer binary classifier.
//
// Shapes for F input features and H hidden units:
//
//	WeightsInputHidden  F×H
//	BiasHidden          H
//	WeightsHiddenOutput H
//	BiasOutput          scalar
//
// F and H never change after construction. Params are mutated in place only
// by an optimizer step.
type Params struct {
	WeightsInputHidden  *tensor.Matrix
	BiasHidden          tensor.Vector
	WeightsHiddenOutput tensor.Vector
	BiasOutput          float64
}

// NewParams allocates parameters for features inputs and hidden units and
// fills them with init. A nil init uses DefaultInit.
//
// Example:
//
//	params, err := nn.NewParams(500, 64, nn.DefaultInit)
func NewParams(features, hidden int, init Initializer) (*Params, error) {
	w1, err := tensor.NewMatrix(features, hidden)
	if err != nil {
		return nil, fmt.Errorf("weights_input_hidden: %w", err)
	}
	p := &Params{
		WeightsInputHidden:  w1,
		BiasHidden:          tensor.NewVector(hidden),
		WeightsHiddenOutput: tensor.NewVector(hidden),
	}
	if init == nil {
		init = DefaultInit
	}
	init.Init(p)
	return p, nil
}

// Features returns F, the number of inputs per segment.
func (p *Params) Features() int { return p.WeightsInputHidden.Rows() }

// Hidden returns H, the number of hidden units.
func (p *Params) Hidden() int { return p.WeightsInputHidden.Cols() }

// NumParams returns the total number of scalar parameters.
func (p *Params) NumParams() int {
	return p.Features()*p.Hidden() + 2*p.Hidden() + 1
}

// Validate checks that the four fields agree on F and H.
func (p *Params) Validate() error {
	if p == nil || p.WeightsInputHidden == nil {
		return fmt.Errorf("params: weights_input_hidden is nil: %w", tensor.ErrShapeMismatch)
	}
	h := p.Hidden()
	if len(p.BiasHidden) != h {
		return &tensor.ShapeError{Op: "Params", Left: p.WeightsInputHidden.Shape(), Right: p.BiasHidden.Shape(), Rule: "len(bias_hidden) == cols(weights_input_hidden)"}
	}
	if len(p.WeightsHiddenOutput) != h {
		return &tensor.ShapeError{Op: "Params", Left: p.WeightsInputHidden.Shape(), Right: p.WeightsHiddenOutput.Shape(), Rule: "len(weights_hidden_output) == cols(weights_input_hidden)"}
	}
	return nil
}

// Clone returns a deep copy.
func (p *Params) Clone() *Params {
	return &Params{
		WeightsInputHidden:  p.WeightsInputHidden.Clone(),
		BiasHidden:          p.BiasHidden.Clone(),
		WeightsHiddenOutput: p.WeightsHiddenOutput.Clone(),
		BiasOutput:          p.BiasOutput,
	}
}

// Flatten copies every parameter into one slice in canonical order:
// weights_input_hidden (row-major), bias_hidden, weights_hidden_output, bias_output.
func (p *Params) Flatten() []float64 {
	out := make([]float64, 0, p.NumParams())
	out = append(out, p.WeightsInputHidden.Data()...)
	out = append(out, p.BiasHidden...)
	out = append(out, p.WeightsHiddenOutput...)
	return append(out, p.BiasOutput)
}

// SetFlat overwrites every parameter from a slice in Flatten order.
func (p *Params) SetFlat(x []float64) error {
	if len(x) != p.NumParams() {
		return &tensor.ShapeError{Op: "SetFlat", Left: tensor.Shape{p.NumParams()}, Right: tensor.Shape{len(x)}, Rule: "len(x) == NumParams()"}
	}
	n := copy(p.WeightsInputHidden.Data(), x)
	n += copy(p.BiasHidden, x[n:])
	n += copy(p.WeightsHiddenOutput, x[n:])
	p.BiasOutput = x[n]
	return nil
}

// Tensor is a named, shaped view of one parameter used for persistence.
type Tensor struct {
	Shape tensor.Shape
	Data  []float64
}

// StateDict returns copies of all parameters keyed by name.
func (p *Params) StateDict() map[string]Tensor {
	return map[string]Tensor{
		KeyWeightsInputHidden:  {Shape: p.WeightsInputHidden.Shape(), Data: append([]float64(nil), p.WeightsInputHidden.Data()...)},
		KeyBiasHidden:          {Shape: p.BiasHidden.Shape(), Data: p.BiasHidden.Clone()},
		KeyWeightsHiddenOutput: {Shape: p.WeightsHiddenOutput.Shape(), Data: p.WeightsHiddenOutput.Clone()},
		KeyBiasOutput:          {Shape: tensor.Shape{1}, Data: []float64{p.BiasOutput}},
	}
}

// ParamsFromStateDict rebuilds parameters from a state dict, checking that
// every entry is present and shape-consistent.
func ParamsFromStateDict(state map[string]Tensor) (*Params, error) {
	get := func(key string) (Tensor, error) {
		t, ok := state[key]
		if !ok {
			return Tensor{}, fmt.Errorf("state dict: missing %q", key)
		}
		if err := t.Shape.Validate(); err != nil {
			return Tensor{}, fmt.Errorf("state dict: %s: %w", key, err)
		}
		if t.Shape.NumElements() != len(t.Data) {
			return Tensor{}, &tensor.ShapeError{Op: "ParamsFromStateDict", Left: t.Shape, Right: tensor.Shape{len(t.Data)}, Rule: key + " data matches shape"}
		}
		return t, nil
	}

	w1, err := get(KeyWeightsInputHidden)
	if err != nil {
		return nil, err
	}
	if len(w1.Shape) != 2 {
		return nil, &tensor.ShapeError{Op: "ParamsFromStateDict", Left: w1.Shape, Rule: "weights_input_hidden is 2-D"}
	}
	b1, err := get(KeyBiasHidden)
	if err != nil {
		return nil, err
	}
	w2, err := get(KeyWeightsHiddenOutput)
	if err != nil {
		return nil, err
	}
	if len(b1.Shape) != 1 {
		return nil, &tensor.ShapeError{Op: "ParamsFromStateDict", Left: b1.Shape, Rule: "bias_hidden is 1-D"}
	}
	if len(w2.Shape) != 1 {
		return nil, &tensor.ShapeError{Op: "ParamsFromStateDict", Left: w2.Shape, Rule: "weights_hidden_output is 1-D"}
	}
	b2, err := get(KeyBiasOutput)
	if err != nil {
		return nil, err
	}
	if len(b2.Data) != 1 {
		return nil, &tensor.ShapeError{Op: "ParamsFromStateDict", Left: b2.Shape, Rule: "bias_output is scalar"}
	}

	m, err := tensor.FromSlice(w1.Shape[0], w1.Shape[1], w1.Data)
	if err != nil {
		return nil, fmt.Errorf("weights_input_hidden: %w", err)
	}
	p := &Params{
		WeightsInputHidden:  m,
		BiasHidden:          tensor.Vector(b1.Data).Clone(),
		WeightsHiddenOutput: tensor.Vector(w2.Data).Clone(),
		BiasOutput:          b2.Data[0],
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
