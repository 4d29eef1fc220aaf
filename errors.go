package vecops

import "fmt"

// Operation names reported inside error values.
const (
	opAdd       = "add"
	opSub       = "sub"
	opScale     = "scale"
	opDot       = "dot"
	opMatVecMul = "matvecmul"
	opTranspose = "transpose"
	opShape     = "shape"
)

// ShapeMismatchError reports incompatible operand dimensions: unequal vector
// lengths, a non-rectangular matrix, or a matrix whose row count does not
// match the vector it is applied to.
type ShapeMismatchError struct {
	// Op is the operation that detected the mismatch.
	Op string
	// Want is the expected dimension.
	Want int
	// Got is the observed dimension.
	Got int
	// Row is the index of the offending row when a matrix is not
	// rectangular, or -1 when the mismatch is between whole operands.
	Row int
}

// Error returns a formatted message naming the operation and the
// conflicting dimensions.
func (e ShapeMismatchError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%s: shape mismatch: row %d has length %d, want %d", e.Op, e.Row, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: shape mismatch: got length %d, want %d", e.Op, e.Got, e.Want)
}

// OverflowError reports an arithmetic step whose exact result does not fit in
// an int64. It captures the two operands of the step that overflowed, which
// for an accumulated dot product may be a partial sum rather than two input
// elements.
type OverflowError struct {
	// Op is the operation during which the overflow occurred.
	Op string
	// A and B are the operands of the arithmetic step that overflowed.
	A, B int64
}

// Error returns a formatted message naming the operation and the operands
// that overflowed.
func (e OverflowError) Error() string {
	return fmt.Sprintf("%s: int64 overflow on %d and %d", e.Op, e.A, e.B)
}
