package nn

import (
	"fmt"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// Forward evaluates the network on one segment.
//
// The segment must be a 1×F matrix where F == p.Features(). The computation is:
//
//	hiddenRaw = segment · WeightsInputHidden + BiasHidden   (1×H)
//	hidden    = ReLU(hiddenRaw)
//	output    = Sigmoid(dot(hidden, WeightsHiddenOutput) + BiasOutput)
//
// The hidden activation is returned alongside the output because Backprop
// needs the exact values, including which units ReLU zeroed.
func Forward(segment *tensor.Matrix, p *Params) (float64, tensor.Vector, error) {
	if segment.Rows() != 1 {
		return 0, nil, &tensor.ShapeError{Op: "Forward", Left: segment.Shape(), Rule: "segment is 1×F"}
	}

	hiddenRawMatrix, err := tensor.Multiply(segment, p.WeightsInputHidden)
	if err != nil {
		return 0, nil, fmt.Errorf("forward: input to hidden: %w", err)
	}

	hiddenRaw, err := tensor.VecAdd(hiddenRawMatrix.Row(0), p.BiasHidden)
	if err != nil {
		return 0, nil, fmt.Errorf("forward: hidden bias: %w", err)
	}

	hidden := applyReLU(hiddenRaw)

	outputRaw, err := tensor.Dot(hidden, p.WeightsHiddenOutput)
	if err != nil {
		return 0, nil, fmt.Errorf("forward: hidden to output: %w", err)
	}

	return Sigmoid(outputRaw + p.BiasOutput), hidden, nil
}
