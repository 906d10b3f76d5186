package tensor

import (
	"fmt"
	"testing"
)

func benchMatrix(b *testing.B, rows, cols int) *Matrix {
	b.Helper()
	m, err := NewMatrix(rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	data := m.Data()
	for i := range data {
		data[i] = float64(i%17) * 0.01
	}
	return m
}

func BenchmarkShapeOperations(b *testing.B) {
	shape := Shape{500, 64}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.NumElements()
		}
	})

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.ComputeStrides()
		}
	})

	b.Run("Equal", func(b *testing.B) {
		other := Shape{500, 64}
		for i := 0; i < b.N; i++ {
			_ = shape.Equal(other)
		}
	})
}

func BenchmarkElementWise(b *testing.B) {
	for _, size := range []int{64, 512} {
		x := benchMatrix(b, size, size)
		y := benchMatrix(b, size, size)

		b.Run(fmt.Sprintf("Add-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Add(x, y)
			}
		})

		b.Run(fmt.Sprintf("ElementwiseMultiply-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = ElementwiseMultiply(x, y)
			}
		})

		b.Run(fmt.Sprintf("AddInPlace-%d", size), func(b *testing.B) {
			dst := x.Clone()
			for i := 0; i < b.N; i++ {
				_ = AddInPlace(dst, y)
			}
		})
	}
}

// BenchmarkMultiply covers the shapes the classifier actually produces:
// a 1×F segment times an F×H weight matrix, and the F×1 · 1×H outer product.
func BenchmarkMultiply(b *testing.B) {
	const features, hidden = 500, 64

	seg := benchMatrix(b, 1, features)
	w := benchMatrix(b, features, hidden)
	b.Run("Forward-1x500x64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Multiply(seg, w)
		}
	})

	col := Transpose(seg)
	delta := benchMatrix(b, 1, hidden)
	b.Run("Outer-500x1x64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Multiply(col, delta)
		}
	})

	for _, size := range []int{32, 128} {
		x := benchMatrix(b, size, size)
		y := benchMatrix(b, size, size)
		b.Run(fmt.Sprintf("Square-%dx%d", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Multiply(x, y)
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	m := benchMatrix(b, 500, 64)
	for i := 0; i < b.N; i++ {
		_ = Transpose(m)
	}
}

func BenchmarkMatrixAccess(b *testing.B) {
	m := benchMatrix(b, 100, 100)

	b.Run("At", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = m.At(50, 50)
		}
	})

	b.Run("Set", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m.Set(50, 50, 1.0)
		}
	})

	b.Run("Row", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = m.Row(50)
		}
	})
}
