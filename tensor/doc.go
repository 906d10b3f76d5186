// Copyright 2025 The ECGNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 matrices and vectors the classifier
// is built on.
//
// # Overview
//
// A Matrix stores its elements in one contiguous row-major buffer, so every row
// has the same length by construction. Vectors are plain []float64 values.
// Every operation checks shapes first and returns a *ShapeError (matching
// ErrShapeMismatch with errors.Is) instead of producing a partial result.
//
// # Basic Usage
//
//	import "github.com/LoftinTitus/ECGNN/tensor"
//
//	func main() {
//	    a, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
//	    b := tensor.Transpose(a)
//
//	    c, err := tensor.Multiply(a, b)
//	    if errors.Is(err, tensor.ErrShapeMismatch) {
//	        // handle
//	    }
//	    fmt.Println(c)
//	}
//
// Operations never modify their inputs, except those whose names end in InPlace.
package tensor
