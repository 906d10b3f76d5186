package tensor

// Vector is an ordered sequence of float64 values.
type Vector []float64

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// FullVector creates a vector of length n with every element set to value.
func FullVector(n int, value float64) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = value
	}
	return v
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// Shape returns Shape{len(v)}.
func (v Vector) Shape() Shape { return Shape{len(v)} }

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	return append(Vector(nil), v...)
}
