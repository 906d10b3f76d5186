// Package tensor provides dense float64 matrices and vectors with
// shape-checked linear algebra.
package tensor

import "fmt"

// Matrix is a dense row-major table of float64 values.
//
// All elements live in one contiguous buffer. Element (i, j) is stored at
// data[i*stride+j], so every row has the same length by construction.
type Matrix struct {
	rows   int
	cols   int
	stride int
	data   []float64
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return zeros(rows, cols), nil
}

// FromSlice wraps data as a rows×cols matrix. The slice is copied.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, shapeError("FromSlice", Shape{rows, cols}, Shape{len(data)}, "len(data) == rows*cols")
	}
	copy(m.data, data)
	return m, nil
}

// FromRows builds a matrix from a nested slice.
//
// Every row must have the same length; a ragged input is a shape fault.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("invalid shape: %w", Shape{0}.Validate())
	}
	cols := len(rows[0])
	m, err := NewMatrix(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, shapeError("FromRows", Shape{i, len(row)}, Shape{0, cols}, "equal row lengths")
		}
		copy(m.data[i*m.stride:], row)
	}
	return m, nil
}

// RowMatrix wraps a vector as a 1×n matrix. The values are copied.
func RowMatrix(v Vector) *Matrix {
	m := zeros(1, len(v))
	copy(m.data, v)
	return m
}

// Full creates a rows×cols matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = value
	}
	return m, nil
}

// zeros allocates without validating; callers guarantee positive dimensions.
func zeros(rows, cols int) *Matrix {
	strides := Shape{rows, cols}.ComputeStrides()
	return &Matrix{
		rows:   rows,
		cols:   cols,
		stride: strides[0],
		data:   make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns Shape{rows, cols}.
func (m *Matrix) Shape() Shape { return Shape{m.rows, m.cols} }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.stride+j]
}

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.stride+j] = v
}

// Row returns row i as a vector view; writes go through to the matrix.
func (m *Matrix) Row(i int) Vector {
	start := i * m.stride
	return Vector(m.data[start : start+m.cols : start+m.cols])
}

// Data returns the flat row-major backing buffer.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := zeros(m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Equal reports whether both matrices have the same shape and identical elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || !m.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// ToRows copies the matrix into a nested slice.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}
	return out
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%s)%v", m.Shape(), m.ToRows())
}
