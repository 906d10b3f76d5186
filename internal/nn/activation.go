package nn

import (
	"math"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// ReLU applies f(x) = max(0, x).
func ReLU(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// ReLUDerivative is 1 for x > 0 and 0 otherwise, including at exactly 0.
func ReLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Sigmoid applies f(x) = 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidDerivative returns s·(1-s) where s is an already computed sigmoid
// output, so the pre-activation is not needed.
func SigmoidDerivative(s float64) float64 {
	return s * (1.0 - s)
}

// applyReLU returns ReLU(v) element-wise.
func applyReLU(v tensor.Vector) tensor.Vector {
	out := make(tensor.Vector, len(v))
	for i, x := range v {
		out[i] = ReLU(x)
	}
	return out
}

// applyReLUDerivative returns ReLU'(v) element-wise.
func applyReLUDerivative(v tensor.Vector) tensor.Vector {
	out := make(tensor.Vector, len(v))
	for i, x := range v {
		out[i] = ReLUDerivative(x)
	}
	return out
}
