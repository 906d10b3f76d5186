package nn

import (
	"math"
	"testing"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParams_DefaultInit(t *testing.T) {
	p, err := NewParams(250, 64, nil)
	require.NoError(t, err)

	assert.Equal(t, 250, p.Features())
	assert.Equal(t, 64, p.Hidden())
	assert.Equal(t, 250*64+64+64+1, p.NumParams())
	for i, v := range p.Flatten() {
		require.Equal(t, 0.01, v, "entry %d", i)
	}
}

func TestNewParams_InvalidDims(t *testing.T) {
	_, err := NewParams(0, 4, nil)
	assert.Error(t, err)
	_, err = NewParams(3, -1, nil)
	assert.Error(t, err)
}

func TestXavier_DeterministicAndBounded(t *testing.T) {
	a, err := NewParams(10, 6, Xavier{Seed: 3})
	require.NoError(t, err)
	b, err := NewParams(10, 6, Xavier{Seed: 3})
	require.NoError(t, err)
	c, err := NewParams(10, 6, Xavier{Seed: 4})
	require.NoError(t, err)

	assert.Equal(t, a.Flatten(), b.Flatten())
	assert.NotEqual(t, a.Flatten(), c.Flatten())

	bound := math.Sqrt(6.0 / 16.0)
	for _, v := range a.WeightsInputHidden.Data() {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}
	assert.Equal(t, tensor.NewVector(6), a.BiasHidden)
	assert.Zero(t, a.BiasOutput)
}

func TestParams_FlattenSetFlat(t *testing.T) {
	p, err := NewParams(2, 2, Constant{Value: 0})
	require.NoError(t, err)

	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.NoError(t, p.SetFlat(x))
	assert.Equal(t, x, p.Flatten())
	assert.Equal(t, 2.0, p.WeightsInputHidden.At(0, 1))
	assert.Equal(t, tensor.Vector{5, 6}, p.BiasHidden)
	assert.Equal(t, tensor.Vector{7, 8}, p.WeightsHiddenOutput)
	assert.Equal(t, 9.0, p.BiasOutput)

	assert.ErrorIs(t, p.SetFlat(x[:8]), tensor.ErrShapeMismatch)
}

func TestParams_CloneIsDeep(t *testing.T) {
	p, err := NewParams(3, 2, nil)
	require.NoError(t, err)
	c := p.Clone()

	c.WeightsInputHidden.Set(0, 0, 5)
	c.BiasHidden[0] = 5
	c.WeightsHiddenOutput[0] = 5
	c.BiasOutput = 5

	assert.Equal(t, 0.01, p.WeightsInputHidden.At(0, 0))
	assert.Equal(t, 0.01, p.BiasHidden[0])
	assert.Equal(t, 0.01, p.WeightsHiddenOutput[0])
	assert.Equal(t, 0.01, p.BiasOutput)
}

func TestParams_StateDictRoundTrip(t *testing.T) {
	p, err := NewParams(4, 3, Xavier{Seed: 12})
	require.NoError(t, err)
	p.BiasOutput = -0.75

	state := p.StateDict()
	require.Len(t, state, 4)
	assert.Equal(t, tensor.Shape{4, 3}, state[KeyWeightsInputHidden].Shape)
	assert.Equal(t, tensor.Shape{1}, state[KeyBiasOutput].Shape)

	restored, err := ParamsFromStateDict(state)
	require.NoError(t, err)
	assert.Equal(t, p.Flatten(), restored.Flatten())

	// The state dict holds copies.
	state[KeyBiasHidden].Data[0] = 100
	assert.NotEqual(t, 100.0, p.BiasHidden[0])
}

func TestParamsFromStateDict_Rejects(t *testing.T) {
	p, err := NewParams(2, 2, nil)
	require.NoError(t, err)

	missing := p.StateDict()
	delete(missing, KeyBiasOutput)
	_, err = ParamsFromStateDict(missing)
	assert.ErrorContains(t, err, KeyBiasOutput)

	inconsistent := p.StateDict()
	inconsistent[KeyBiasHidden] = Tensor{Shape: tensor.Shape{3}, Data: []float64{1, 2, 3}}
	_, err = ParamsFromStateDict(inconsistent)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	flat := p.StateDict()
	flat[KeyWeightsInputHidden] = Tensor{Shape: tensor.Shape{4}, Data: []float64{1, 2, 3, 4}}
	_, err = ParamsFromStateDict(flat)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	matrixBias := p.StateDict()
	matrixBias[KeyBiasHidden] = Tensor{Shape: tensor.Shape{1, 2}, Data: []float64{1, 2}}
	_, err = ParamsFromStateDict(matrixBias)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	matrixW2 := p.StateDict()
	matrixW2[KeyWeightsHiddenOutput] = Tensor{Shape: tensor.Shape{2, 1}, Data: []float64{1, 2}}
	_, err = ParamsFromStateDict(matrixW2)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	// The element count wraps around to 4 without an overflow check.
	overflow := p.StateDict()
	overflow[KeyWeightsInputHidden] = Tensor{Shape: tensor.Shape{math.MaxInt>>1 + 2, 4}, Data: []float64{1, 2, 3, 4}}
	_, err = ParamsFromStateDict(overflow)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestParams_Validate(t *testing.T) {
	p, err := NewParams(2, 3, nil)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	p.WeightsHiddenOutput = tensor.Vector{1}
	assert.ErrorIs(t, p.Validate(), tensor.ErrShapeMismatch)

	var nilParams *Params
	assert.ErrorIs(t, nilParams.Validate(), tensor.ErrShapeMismatch)
}
