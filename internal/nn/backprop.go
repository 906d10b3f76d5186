package nn

import (
	"fmt"

	"github.com/LoftinTitus/ECGNN/internal/parallel"
	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// Backprop computes batch-averaged gradients of BinaryCrossEntropy with
// respect to every parameter.
//
// For each example (segment, t):
//
//	output, hidden = Forward(segment, p)
//	gradOutput     = (-t/p + (1-t)/(1-p)) · p(1-p)       p = Clamp(output)
//	gradW2         = hidden · gradOutput
//	hiddenError    = (W2 · gradOutput) ⊙ ReLU'(hidden)
//	gradW1         = segmentᵀ · hiddenError              (F×1 · 1×H)
//	gradB1         = hiddenError
//	gradB2         = gradOutput
//
// Per-example work is spread over cfg's workers. The per-example results are
// then summed sequentially in segment order and divided by N, so the result
// is bit-identical for any worker count. p is only read.
func Backprop(segments []*tensor.Matrix, p *Params, labels tensor.Vector, cfg parallel.Config) (*Gradients, error) {
	if len(segments) != len(labels) {
		return nil, &tensor.ShapeError{Op: "Backprop", Left: tensor.Shape{len(segments)}, Right: labels.Shape(), Rule: "len(segments) == len(labels)"}
	}
	if len(segments) == 0 {
		return nil, ErrEmptyBatch
	}

	perExample, err := parallel.Map(len(segments), func(i int) (*Gradients, error) {
		g, err := exampleGradients(segments[i], p, labels[i])
		if err != nil {
			return nil, fmt.Errorf("backprop: segment %d: %w", i, err)
		}
		return g, nil
	}, cfg)
	if err != nil {
		return nil, err
	}

	sum, err := NewGradients(p.Features(), p.Hidden())
	if err != nil {
		return nil, err
	}
	for i, g := range perExample {
		if err := sum.AddInPlace(g); err != nil {
			return nil, fmt.Errorf("backprop: accumulate segment %d: %w", i, err)
		}
	}

	return sum.ScalarDivide(float64(len(segments))), nil
}

// exampleGradients computes the unaveraged gradients for a single example.
func exampleGradients(segment *tensor.Matrix, p *Params, label float64) (*Gradients, error) {
	output, hidden, err := Forward(segment, p)
	if err != nil {
		return nil, err
	}

	gradOutput := lossGradient(output, label)

	// The output is scalar, so the outer product hiddenᵀ·gradOutput collapses
	// to a scaled copy of hidden.
	gradW2 := tensor.VecScalarMultiply(hidden, gradOutput)

	hiddenErrorRaw := tensor.VecScalarMultiply(p.WeightsHiddenOutput, gradOutput)
	hiddenError, err := tensor.VecElementwiseMultiply(hiddenErrorRaw, applyReLUDerivative(hidden))
	if err != nil {
		return nil, err
	}

	gradW1, err := tensor.Multiply(tensor.Transpose(segment), tensor.RowMatrix(hiddenError))
	if err != nil {
		return nil, err
	}

	return &Gradients{
		WeightsInputHidden:  gradW1,
		BiasHidden:          hiddenError,
		WeightsHiddenOutput: gradW2,
		BiasOutput:          gradOutput,
	}, nil
}
