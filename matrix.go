package vecops

// Matrix is an ordered sequence of row-vectors. A Matrix is rectangular when
// every row has the same length; operations validate this at call time and a
// zero-row matrix is trivially rectangular with zero columns.
type Matrix [][]int64

// Shape returns the row and column counts of m.
//
// Returns:
//   - rows, cols: the dimensions of m. A zero-row matrix has shape (0, 0).
//   - error: a ShapeMismatchError naming the first row whose length differs
//     from the first row's, when m is not rectangular.
func Shape(m Matrix) (rows, cols int, err error) {
	return shape(opShape, m)
}

func shape(op string, m Matrix) (rows, cols int, err error) {
	rows = len(m)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, ShapeMismatchError{Op: op, Want: cols, Got: len(row), Row: i}
		}
	}
	return rows, cols, nil
}

// MatVecMul multiplies the transpose of m by v: result[j] = Σ_i m[i][j] * v[i].
// The result has one element per column of m, and the row count of m must
// equal len(v).
//
// A zero-row matrix applied to a zero-length vector yields a zero-length
// result. A matrix with zero columns yields a zero-length result for any
// vector of matching length.
//
// Returns:
//   - Vector: a new vector of length cols(m), or nil on error.
//   - error: a ShapeMismatchError when m is not rectangular or when its row
//     count differs from len(v), or an OverflowError when a product or an
//     accumulation leaves the int64 range.
func MatVecMul(m Matrix, v Vector) (Vector, error) {
	rows, cols, err := shape(opMatVecMul, m)
	if err != nil {
		return nil, err
	}
	if rows != len(v) {
		return nil, ShapeMismatchError{Op: opMatVecMul, Want: rows, Got: len(v), Row: -1}
	}
	out := make(Vector, cols)
	for i, row := range m {
		for j, x := range row {
			prod, ok := mulInt64(x, v[i])
			if !ok {
				return nil, OverflowError{Op: opMatVecMul, A: x, B: v[i]}
			}
			sum, ok := addInt64(out[j], prod)
			if !ok {
				return nil, OverflowError{Op: opMatVecMul, A: out[j], B: prod}
			}
			out[j] = sum
		}
	}
	return out, nil
}

// Transpose returns a new matrix with the rows and columns of m swapped.
// Transposing a zero-row matrix yields a zero-row matrix.
//
// Returns:
//   - Matrix: a new cols(m)×rows(m) matrix, or nil on error.
//   - error: a ShapeMismatchError when m is not rectangular.
func Transpose(m Matrix) (Matrix, error) {
	rows, cols, err := shape(opTranspose, m)
	if err != nil {
		return nil, err
	}
	out := make(Matrix, cols)
	for j := range out {
		out[j] = make([]int64, rows)
	}
	for i, row := range m {
		for j, x := range row {
			out[j][i] = x
		}
	}
	return out, nil
}
