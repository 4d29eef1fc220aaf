package vecops

// Vector is an ordered, finite sequence of signed 64-bit integers. Zero-length
// vectors are valid operands everywhere.
type Vector []int64

// Add returns the elementwise sum of a and b as a new vector.
//
// Returns:
//   - Vector: a new vector of the same length, or nil on error.
//   - error: a ShapeMismatchError when the lengths differ, or an
//     OverflowError when any elementwise sum leaves the int64 range.
func Add(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, ShapeMismatchError{Op: opAdd, Want: len(a), Got: len(b), Row: -1}
	}
	out := make(Vector, len(a))
	for i := range a {
		sum, ok := addInt64(a[i], b[i])
		if !ok {
			return nil, OverflowError{Op: opAdd, A: a[i], B: b[i]}
		}
		out[i] = sum
	}
	return out, nil
}

// Sub returns the elementwise difference a-b as a new vector.
//
// Returns:
//   - Vector: a new vector of the same length, or nil on error.
//   - error: a ShapeMismatchError when the lengths differ, or an
//     OverflowError when any elementwise difference leaves the int64 range.
func Sub(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, ShapeMismatchError{Op: opSub, Want: len(a), Got: len(b), Row: -1}
	}
	out := make(Vector, len(a))
	for i := range a {
		diff, ok := subInt64(a[i], b[i])
		if !ok {
			return nil, OverflowError{Op: opSub, A: a[i], B: b[i]}
		}
		out[i] = diff
	}
	return out, nil
}

// Scale returns a new vector with every element of a multiplied by k.
//
// Returns:
//   - Vector: a new vector of the same length, or nil on error.
//   - error: an OverflowError when any product leaves the int64 range.
func Scale(a Vector, k int64) (Vector, error) {
	out := make(Vector, len(a))
	for i, x := range a {
		prod, ok := mulInt64(x, k)
		if !ok {
			return nil, OverflowError{Op: opScale, A: x, B: k}
		}
		out[i] = prod
	}
	return out, nil
}

// Dot returns the dot product of a and b: the sum of elementwise products.
// The dot product of two zero-length vectors is 0 (the empty sum).
//
// Returns:
//   - int64: the dot product, or 0 on error.
//   - error: a ShapeMismatchError when the lengths differ, or an
//     OverflowError when a product or the running sum leaves the int64 range.
func Dot(a, b Vector) (int64, error) {
	if len(a) != len(b) {
		return 0, ShapeMismatchError{Op: opDot, Want: len(a), Got: len(b), Row: -1}
	}
	return dot(opDot, a, b)
}

// dot accumulates the elementwise products of two equal-length slices,
// reporting overflow under the given operation name.
func dot(op string, a, b []int64) (int64, error) {
	var sum int64
	for i := range a {
		prod, ok := mulInt64(a[i], b[i])
		if !ok {
			return 0, OverflowError{Op: op, A: a[i], B: b[i]}
		}
		next, ok := addInt64(sum, prod)
		if !ok {
			return 0, OverflowError{Op: op, A: sum, B: prod}
		}
		sum = next
	}
	return sum, nil
}
