package tensor

import "gonum.org/v1/gonum/floats"

// Multiply computes the matrix product A·B.
//
// Requires cols(A) == rows(B). The result has shape rows(A)×cols(B).
//
// The loop runs in i-k-j order over the flat buffers so that the inner loop
// walks both B and the output contiguously. For a fixed (i, j) the partial
// products are summed in increasing k, so repeated runs give identical results.
//
// Example:
//
//	a, _ := tensor.FromRows([][]float64{{1, 2}})       // 1×2
//	b, _ := tensor.FromRows([][]float64{{0.1}, {0.2}}) // 2×1
//	c, _ := tensor.Multiply(a, b)                      // [[0.5]]
func Multiply(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, shapeError("Multiply", a.Shape(), b.Shape(), "cols(A) == rows(B)")
	}

	out := zeros(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		outRow := out.data[i*out.stride : i*out.stride+out.cols]
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.stride+k]
			bRow := b.data[k*b.stride : k*b.stride+b.cols]
			for j, bkj := range bRow {
				outRow[j] += aik * bkj
			}
		}
	}
	return out, nil
}

// Transpose returns Aᵀ.
func Transpose(a *Matrix) *Matrix {
	out := zeros(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*out.stride+i] = a.data[i*a.stride+j]
		}
	}
	return out
}

// Add computes A + B element-wise. Shapes must be identical.
func Add(a, b *Matrix) (*Matrix, error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, shapeError("Add", a.Shape(), b.Shape(), "identical shapes")
	}
	out := zeros(a.rows, a.cols)
	floats.AddTo(out.data, a.data, b.data)
	return out, nil
}

// ElementwiseMultiply computes the Hadamard product A ⊙ B. Shapes must be identical.
func ElementwiseMultiply(a, b *Matrix) (*Matrix, error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, shapeError("ElementwiseMultiply", a.Shape(), b.Shape(), "identical shapes")
	}
	out := zeros(a.rows, a.cols)
	floats.MulTo(out.data, a.data, b.data)
	return out, nil
}

// ScalarMultiply returns s·A.
func ScalarMultiply(a *Matrix, s float64) *Matrix {
	out := zeros(a.rows, a.cols)
	floats.ScaleTo(out.data, s, a.data)
	return out
}

// ScalarDivide returns A / s.
//
// Each element is divided by s directly rather than multiplied by 1/s, so the
// result matches a plain per-element division bit for bit.
func ScalarDivide(a *Matrix, s float64) *Matrix {
	out := zeros(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = v / s
	}
	return out
}

// AddInPlace accumulates src into dst (dst += src).
//
// This is the only matrix operation that mutates an operand; it exists for
// gradient accumulation. Shapes must be identical.
func AddInPlace(dst, src *Matrix) error {
	if !dst.Shape().Equal(src.Shape()) {
		return shapeError("AddInPlace", dst.Shape(), src.Shape(), "identical shapes")
	}
	floats.Add(dst.data, src.data)
	return nil
}

// Dot computes the inner product u·v. Lengths must be equal.
func Dot(u, v Vector) (float64, error) {
	if len(u) != len(v) {
		return 0, shapeError("Dot", u.Shape(), v.Shape(), "len(u) == len(v)")
	}
	return floats.Dot(u, v), nil
}

// VecAdd returns u + v.
func VecAdd(u, v Vector) (Vector, error) {
	if len(u) != len(v) {
		return nil, shapeError("VecAdd", u.Shape(), v.Shape(), "len(u) == len(v)")
	}
	return floats.AddTo(make(Vector, len(u)), u, v), nil
}

// VecElementwiseMultiply returns u ⊙ v.
func VecElementwiseMultiply(u, v Vector) (Vector, error) {
	if len(u) != len(v) {
		return nil, shapeError("VecElementwiseMultiply", u.Shape(), v.Shape(), "len(u) == len(v)")
	}
	return floats.MulTo(make(Vector, len(u)), u, v), nil
}

// VecScalarMultiply returns s·v.
func VecScalarMultiply(v Vector, s float64) Vector {
	return floats.ScaleTo(make(Vector, len(v)), s, v)
}

// VecScalarDivide returns v / s, dividing each element directly.
func VecScalarDivide(v Vector, s float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x / s
	}
	return out
}

// VecAddInPlace accumulates src into dst (dst += src).
func VecAddInPlace(dst, src Vector) error {
	if len(dst) != len(src) {
		return shapeError("VecAddInPlace", dst.Shape(), src.Shape(), "len(dst) == len(src)")
	}
	floats.Add(dst, src)
	return nil
}
