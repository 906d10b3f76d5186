package train

import (
	"math/rand"
	"testing"

	"github.com/LoftinTitus/ECGNN/internal/nn"
	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name        string
		predictions tensor.Vector
		labels      tensor.Vector
		want        float64
	}{
		{"all correct", tensor.Vector{0.9, 0.1, 0.7}, tensor.Vector{1, 0, 1}, 1},
		{"all wrong", tensor.Vector{0.9, 0.1}, tensor.Vector{0, 1}, 0},
		{"half is class 0", tensor.Vector{0.5, 0.5000001}, tensor.Vector{0, 1}, 1},
		{"mixed", tensor.Vector{0.2, 0.8, 0.6, 0.4}, tensor.Vector{0, 0, 1, 1}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.predictions, tt.labels)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func TestAccuracy_PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	predictions := make(tensor.Vector, 101)
	labels := make(tensor.Vector, 101)
	for i := range predictions {
		predictions[i] = rng.Float64()
		labels[i] = float64(rng.Intn(2))
	}
	want, err := Accuracy(predictions, labels)
	require.NoError(t, err)

	for trial := 0; trial < 10; trial++ {
		perm := rng.Perm(len(predictions))
		p2 := make(tensor.Vector, len(perm))
		l2 := make(tensor.Vector, len(perm))
		for i, j := range perm {
			p2[i] = predictions[j]
			l2[i] = labels[j]
		}
		got, err := Accuracy(p2, l2)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAccuracy_Errors(t *testing.T) {
	_, err := Accuracy(tensor.Vector{}, tensor.Vector{})
	assert.ErrorIs(t, err, nn.ErrEmptyBatch)

	_, err = Accuracy(tensor.Vector{0.3}, tensor.Vector{0, 1})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, 0.0, Classify(0.5))
	assert.Equal(t, 1.0, Classify(0.51))
	assert.Equal(t, 0.0, Classify(0))
}
