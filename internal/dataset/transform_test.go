package dataset

import (
	"math"
	"testing"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardize(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	}
	scaled, err := Standardize(rows, DefaultColumns)
	require.NoError(t, err)
	require.Len(t, scaled, 3)

	for i, row := range scaled {
		require.Len(t, row, 3)
		assert.Equal(t, rows[i][0], row[0], "column 0 passes through")
	}

	z := math.Sqrt(1.5)
	assert.InDelta(t, -z, scaled[0][1], 1e-12)
	assert.InDelta(t, 0, scaled[1][1], 1e-12)
	assert.InDelta(t, z, scaled[2][2], 1e-12)
}

func TestStandardize_ZeroVariance(t *testing.T) {
	rows := [][]float64{{0, 5, 1}, {1, 5, 2}, {2, 5, 3}}
	scaled, err := Standardize(rows, DefaultColumns)
	require.NoError(t, err)
	for _, row := range scaled {
		assert.Equal(t, 0.0, row[1])
	}
}

func TestStandardize_Errors(t *testing.T) {
	_, err := Standardize([][]float64{{1, 2, 3}, {1, 2}}, DefaultColumns)
	assert.ErrorContains(t, err, "row 1")

	_, err = Standardize([][]float64{{1, 2}}, []int{-1})
	assert.Error(t, err)

	out, err := Standardize(nil, DefaultColumns)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSegment(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}, {4, 8, 12}, {5, 10, 15}}
	windows, err := Segment(rows, 2)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, [][]float64{{1, 2, 3}, {2, 4, 6}}, windows[0])
	assert.Equal(t, [][]float64{{3, 6, 9}, {4, 8, 12}}, windows[1])

	windows, err = Segment(rows[:1], 2)
	require.NoError(t, err)
	assert.Empty(t, windows)

	_, err = Segment(rows, 0)
	assert.Error(t, err)
}

func TestFlattenAndMatrices(t *testing.T) {
	windows := [][][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	}
	flat, err := FlattenAll(windows)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, flat[0])

	segments, err := Matrices(flat)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, tensor.Shape{1, 6}, segments[1].Shape())
	assert.Equal(t, 12.0, segments[1].At(0, 5))

	_, err = FlattenAll([][][]float64{{{1, 2}}, {{1}}})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestSplit(t *testing.T) {
	flat := [][]float64{{1}, {2}, {3}, {4}, {5}, {6}, {7}}
	segments, err := Matrices(flat)
	require.NoError(t, err)
	labels := tensor.Vector{1, 0, 1, 0, 1, 0, 1}

	train, test, err := Split(segments, labels, 0.8)
	require.NoError(t, err)
	assert.Equal(t, 5, train.Len())
	assert.Equal(t, 2, test.Len())
	assert.Equal(t, 6.0, test.Segments[0].At(0, 0))
	assert.Equal(t, tensor.Vector{0, 1}, test.Labels)

	_, _, err = Split(segments, labels[:3], 0.8)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, _, err = Split(segments, labels, 1.5)
	assert.Error(t, err)
}
