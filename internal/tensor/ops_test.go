package tensor

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func mustRows(t *testing.T, rows [][]float64) *Matrix {
	t.Helper()
	m, err := FromRows(rows)
	require.NoError(t, err)
	return m
}

func randomMatrix(rng *rand.Rand, rows, cols int) *Matrix {
	m := zeros(rows, cols)
	for i := range m.data {
		m.data[i] = rng.Float64()*2 - 1
	}
	return m
}

func dense(m *Matrix) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Clone().Data())
}

func TestMultiply(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	b := mustRows(t, [][]float64{{7, 8, 9, 10}, {11, 12, 13, 14}})

	c, err := Multiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4}, c.Shape())
	assert.Equal(t, [][]float64{
		{29, 32, 35, 38},
		{65, 72, 79, 86},
		{101, 112, 123, 134},
	}, c.ToRows())
}

func TestMultiply_ShapeMismatch(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}})
	b := mustRows(t, [][]float64{{1}, {2}})

	_, err := Multiply(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "Multiply", shapeErr.Op)
	assert.Equal(t, Shape{1, 3}, shapeErr.Left)
	assert.Equal(t, Shape{2, 1}, shapeErr.Right)
}

func TestMultiply_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n, k, m := 1+rng.Intn(6), 1+rng.Intn(6), 1+rng.Intn(6)
		a := randomMatrix(rng, n, k)
		b := randomMatrix(rng, k, m)

		got, err := Multiply(a, b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(dense(a), dense(b))
		assert.True(t, mat.EqualApprox(dense(got), &want, 1e-12), "trial %d", trial)
	}
}

// (AB)ᵀ == BᵀAᵀ for every conformant pair.
func TestTransposeOfProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n, k, m := 1+rng.Intn(5), 1+rng.Intn(5), 1+rng.Intn(5)
		a := randomMatrix(rng, n, k)
		b := randomMatrix(rng, k, m)

		ab, err := Multiply(a, b)
		require.NoError(t, err)
		left := Transpose(ab)

		right, err := Multiply(Transpose(b), Transpose(a))
		require.NoError(t, err)

		require.Equal(t, left.Shape(), right.Shape())
		for i, v := range left.Data() {
			assert.InDelta(t, v, right.Data()[i], 1e-12)
		}
	}
}

func TestTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at := Transpose(a)
	assert.Equal(t, Shape{3, 2}, at.Shape())
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.ToRows())
	assert.True(t, a.Equal(Transpose(at)))
}

func TestAddAndElementwiseMultiply(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 22}, {33, 44}}, sum.ToRows())

	prod, err := ElementwiseMultiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{10, 40}, {90, 160}}, prod.ToRows())

	// Inputs are untouched.
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())

	wrong := mustRows(t, [][]float64{{1, 2}})
	_, err = Add(a, wrong)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ElementwiseMultiply(a, wrong)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestScalarOps(t *testing.T) {
	a := mustRows(t, [][]float64{{2, 4}, {6, 8}})

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, ScalarMultiply(a, 0.5).ToRows())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, ScalarDivide(a, 2).ToRows())
	assert.Equal(t, Vector{1, 2}, VecScalarDivide(Vector{3, 6}, 3))
	assert.Equal(t, Vector{-3, -6}, VecScalarMultiply(Vector{3, 6}, -1))
}

func TestAddInPlace(t *testing.T) {
	dst := mustRows(t, [][]float64{{1, 1}, {1, 1}})
	src := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, AddInPlace(dst, src))
	require.NoError(t, AddInPlace(dst, src))
	assert.Equal(t, [][]float64{{3, 5}, {7, 9}}, dst.ToRows())

	err := AddInPlace(dst, mustRows(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, [][]float64{{3, 5}, {7, 9}}, dst.ToRows(), "failed accumulate must not touch dst")
}

func TestVectorOps(t *testing.T) {
	d, err := Dot(Vector{1, 2, 3}, Vector{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	_, err = Dot(Vector{1, 2}, Vector{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	sum, err := VecAdd(Vector{1, 2}, Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, Vector{4, 6}, sum)

	prod, err := VecElementwiseMultiply(Vector{1, 2}, Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, Vector{3, 8}, prod)

	acc := Vector{1, 1}
	require.NoError(t, VecAddInPlace(acc, Vector{2, 3}))
	assert.Equal(t, Vector{3, 4}, acc)

	_, err = VecAdd(Vector{1}, Vector{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = VecElementwiseMultiply(Vector{1}, Vector{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorIs(t, VecAddInPlace(acc, Vector{1}), ErrShapeMismatch)
}
