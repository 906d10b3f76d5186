package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is matched by every shape fault raised by this package.
//
// A shape fault signals a programming error in the caller: the operation is
// abandoned and must not be retried with the same operands.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError describes which operation rejected which operands.
type ShapeError struct {
	Op    string // Operation name (e.g., "Multiply", "Dot")
	Left  Shape  // Shape of the first operand
	Right Shape  // Shape of the second operand (nil for unary checks)
	Rule  string // Constraint that failed (e.g., "cols(A) == rows(B)")
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Right == nil {
		return fmt.Sprintf("%s: %s: %s violates %s", e.Op, ErrShapeMismatch, e.Left, e.Rule)
	}
	return fmt.Sprintf("%s: %s: %s vs %s violates %s", e.Op, ErrShapeMismatch, e.Left, e.Right, e.Rule)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func shapeError(op string, left, right Shape, rule string) error {
	return &ShapeError{Op: op, Left: left, Right: right, Rule: rule}
}
