package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryCrossEntropy_WorkedExample(t *testing.T) {
	output, _, err := Forward(segment(t, 1.0, 2.0), scenarioAParams(t))
	require.NoError(t, err)

	loss, err := BinaryCrossEntropy(tensor.Vector{output}, tensor.Vector{1.0})
	require.NoError(t, err)
	assert.InDelta(t, 0.4740769, loss, 1e-7)
}

func TestBinaryCrossEntropy_Mean(t *testing.T) {
	loss, err := BinaryCrossEntropy(tensor.Vector{0.9, 0.2}, tensor.Vector{1, 0})
	require.NoError(t, err)
	want := (-math.Log(0.9) - math.Log(0.8)) / 2
	assert.InDelta(t, want, loss, 1e-15)
}

func TestBinaryCrossEntropy_ClampKeepsLossFinite(t *testing.T) {
	cases := []struct {
		name   string
		output float64
		label  float64
	}{
		{"certain and right (1)", 1.0, 1.0},
		{"certain and right (0)", 0.0, 0.0},
		{"certain and wrong (1)", 1.0, 0.0},
		{"certain and wrong (0)", 0.0, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loss, err := BinaryCrossEntropy(tensor.Vector{tc.output}, tensor.Vector{tc.label})
			require.NoError(t, err)
			assert.False(t, math.IsNaN(loss))
			assert.False(t, math.IsInf(loss, 0))
			assert.Greater(t, loss, 0.0, "the clamp floor keeps the loss strictly positive")
		})
	}

	perfect, err := BinaryCrossEntropy(tensor.Vector{1.0}, tensor.Vector{1.0})
	require.NoError(t, err)
	assert.Less(t, perfect, 1e-14)

	worst, err := BinaryCrossEntropy(tensor.Vector{0.0}, tensor.Vector{1.0})
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(Epsilon), worst, 1e-9)
}

func TestBinaryCrossEntropy_NonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	outputs := make(tensor.Vector, 500)
	labels := make(tensor.Vector, 500)
	for i := range outputs {
		outputs[i] = rng.Float64()
		labels[i] = float64(rng.Intn(2))
	}
	loss, err := BinaryCrossEntropy(outputs, labels)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, loss, 0.0)
}

func TestBinaryCrossEntropy_Errors(t *testing.T) {
	_, err := BinaryCrossEntropy(tensor.Vector{}, tensor.Vector{})
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = BinaryCrossEntropy(tensor.Vector{0.5}, tensor.Vector{1, 0})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, Epsilon, Clamp(0))
	assert.Equal(t, Epsilon, Clamp(-1))
	assert.Equal(t, 1.0-Epsilon, Clamp(1))
	assert.Equal(t, 0.3, Clamp(0.3))
}

func TestLossGradient_MatchesSigmoidBCEIdentity(t *testing.T) {
	// Away from the clamp, dL/dz for sigmoid + BCE reduces to p - t.
	for _, p := range []float64{0.01, 0.3, 0.5, 0.77, 0.99} {
		assert.InDelta(t, p-1, lossGradient(p, 1), 1e-12)
		assert.InDelta(t, p, lossGradient(p, 0), 1e-12)
	}

	// At the clamp the gradient is finite.
	for _, p := range []float64{0, 1} {
		for _, label := range []float64{0, 1} {
			g := lossGradient(p, label)
			assert.False(t, math.IsNaN(g) || math.IsInf(g, 0), "p=%v t=%v", p, label)
		}
	}
}
