package nn

import (
	"math"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// Epsilon bounds predictions away from 0 and 1 before any logarithm or division.
const Epsilon = 1e-15

// Clamp limits p to [Epsilon, 1-Epsilon].
func Clamp(p float64) float64 {
	return math.Min(math.Max(p, Epsilon), 1.0-Epsilon)
}

// BinaryCrossEntropy computes the mean binary cross-entropy.
//
// Loss = -(1/N) Σ [t·ln(p) + (1-t)·ln(1-p)]
//
// Each prediction p is clamped with Clamp first, so the loss is finite even for
// predictions of exactly 0 or 1. Terms are summed in index order.
//
// Parameters:
//   - outputs: Predicted probabilities, one per example
//   - labels: Targets in {0, 1}, same length as outputs
//
// Returns ErrEmptyBatch for zero examples and a *tensor.ShapeError when the
// lengths differ.
func BinaryCrossEntropy(outputs, labels tensor.Vector) (float64, error) {
	if len(outputs) != len(labels) {
		return 0, &tensor.ShapeError{Op: "BinaryCrossEntropy", Left: outputs.Shape(), Right: labels.Shape(), Rule: "len(outputs) == len(labels)"}
	}
	if len(outputs) == 0 {
		return 0, ErrEmptyBatch
	}

	var total float64
	for i, y := range outputs {
		t := labels[i]
		p := Clamp(y)
		total += -(t*math.Log(p) + (1.0-t)*math.Log(1.0-p))
	}
	return total / float64(len(outputs)), nil
}

// lossGradient returns dL/dz for one example, where z is the output
// pre-activation: the clamped BCE derivative times the sigmoid derivative,
// both evaluated at the clamped prediction.
func lossGradient(output, label float64) float64 {
	p := Clamp(output)
	dLdp := -label/p + (1.0-label)/(1.0-p)
	return dLdp * SigmoidDerivative(p)
}
