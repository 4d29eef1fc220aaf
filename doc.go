// Package vecops provides elementary integer linear-algebra primitives:
// vector addition, vector subtraction, scalar scaling, dot products and
// matrix-vector multiplication.
//
// All operations are pure functions over [Vector] and [Matrix] values. Inputs
// are never mutated; every operation allocates and returns a fresh result.
// Because no state is shared between calls, every function in this package is
// safe for concurrent use.
//
// Arithmetic is performed on int64 with a checked-fail overflow policy: an
// operation whose exact mathematical result does not fit in an int64 returns
// an [OverflowError] instead of silently wrapping around. Incompatible operand
// dimensions are reported as a [ShapeMismatchError] carrying the observed
// dimensions, so callers can diagnose precisely which precondition failed.
package vecops
