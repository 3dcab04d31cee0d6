// SPDX-License-Identifier: MIT
// Convenience constructors and helpers built on the core kernels.
//
// Nothing here owns an algorithm: every helper forwards to a kernel and keeps
// its loop order, numeric policy and validation.
//
// AI-Hints:
//   - NewIdentity and NewZeros spell out the shape at the call site.
//   - PrependOnes turns a predictor matrix into an intercept design.
//   - Gram computes XᵗX without building Xᵗ at the call site.

package matrix

import "math"

// ---------- Constructors & Utilities ----------

// NewZeros returns the rows×cols zero matrix (NewDense under a clearer name).
// Complexity: O(r*c) zero-init.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for inverses and projector identities (I − H).
func NewIdentity(n int) (*Dense[float64], error) {
	I, err := NewDense[float64](n, n)
	if err != nil {
		return nil, err
	}
	I.FillAsIdentity()

	return I, nil
}

// PrependOnes returns a float64 copy of m with an all-ones column inserted at
// position 0, the conventional intercept column of a regression design.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func PrependOnes[T Number](m *Dense[T]) (*Dense[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	ones := make([]float64, m.r)
	for i := range ones {
		ones[i] = 1
	}
	out := AsFloat64(m)
	if err := out.InsertColumn(0, &Vector[float64]{data: ones}); err != nil {
		return nil, err
	}

	return out, nil
}

// Gram returns XᵗX as a new float64 matrix (cols×cols, symmetric).
// Errors: ErrNilMatrix.
// Complexity: O(r*c²).
func Gram[T Number](x *Dense[T]) (*Dense[float64], error) {
	xf := AsFloat64(x)
	if err := ValidateNotNil(xf); err != nil {
		return nil, err
	}

	return Mul(xf.Transpose(), xf)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - Non-finite tolerances are rejected with ErrNaNInf.
func AllClose[T Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff, bv float64
	for idx := range a.data {
		bv = toFloat64(b.data[idx])
		diff = math.Abs(toFloat64(a.data[idx]) - bv)
		if diff > atol+rtol*math.Abs(bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
