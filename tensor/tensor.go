// Copyright 2025 The ECGNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/LoftinTitus/ECGNN/internal/tensor"

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// Matrix is a dense row-major float64 matrix.
type Matrix = tensor.Matrix

// Vector is a dense float64 vector.
type Vector = tensor.Vector

// ShapeError describes which operation rejected which pair of shapes.
type ShapeError = tensor.ShapeError

// ErrShapeMismatch is matched by every shape fault.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// Construction

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) { return tensor.NewMatrix(rows, cols) }

// FromSlice copies data into a rows×cols matrix.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	return tensor.FromSlice(rows, cols, data)
}

// FromRows builds a matrix from equal-length rows.
//
// Example:
//
//	m, err := tensor.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
func FromRows(rows [][]float64) (*Matrix, error) { return tensor.FromRows(rows) }

// RowMatrix wraps a copy of v as a 1×len(v) matrix.
func RowMatrix(v Vector) *Matrix { return tensor.RowMatrix(v) }

// Full creates a rows×cols matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) { return tensor.Full(rows, cols, value) }

// NewVector creates a zero vector of length n.
func NewVector(n int) Vector { return tensor.NewVector(n) }

// FullVector creates a vector of length n with every element set to value.
func FullVector(n int, value float64) Vector { return tensor.FullVector(n, value) }

// Matrix operations

// Multiply returns the matrix product a·b.
func Multiply(a, b *Matrix) (*Matrix, error) { return tensor.Multiply(a, b) }

// Transpose returns aᵀ.
func Transpose(a *Matrix) *Matrix { return tensor.Transpose(a) }

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) { return tensor.Add(a, b) }

// ElementwiseMultiply returns the Hadamard product a ⊙ b.
func ElementwiseMultiply(a, b *Matrix) (*Matrix, error) { return tensor.ElementwiseMultiply(a, b) }

// ScalarMultiply returns a·s.
func ScalarMultiply(a *Matrix, s float64) *Matrix { return tensor.ScalarMultiply(a, s) }

// ScalarDivide returns a/s.
func ScalarDivide(a *Matrix, s float64) *Matrix { return tensor.ScalarDivide(a, s) }

// AddInPlace accumulates src into dst.
func AddInPlace(dst, src *Matrix) error { return tensor.AddInPlace(dst, src) }

// Vector operations

// Dot returns the inner product of u and v.
func Dot(u, v Vector) (float64, error) { return tensor.Dot(u, v) }

// VecAdd returns u + v.
func VecAdd(u, v Vector) (Vector, error) { return tensor.VecAdd(u, v) }

// VecElementwiseMultiply returns u ⊙ v.
func VecElementwiseMultiply(u, v Vector) (Vector, error) { return tensor.VecElementwiseMultiply(u, v) }

// VecScalarMultiply returns v·s.
func VecScalarMultiply(v Vector, s float64) Vector { return tensor.VecScalarMultiply(v, s) }

// VecScalarDivide returns v/s.
func VecScalarDivide(v Vector, s float64) Vector { return tensor.VecScalarDivide(v, s) }

// VecAddInPlace accumulates src into dst.
func VecAddInPlace(dst, src Vector) error { return tensor.VecAddInPlace(dst, src) }
