// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Dense matrices,
// including element-wise addition, subtraction, matrix multiplication,
// matrix-vector products and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Decompositions live in dedicated kernel files (impl_lu.go, impl_qr.go).
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opMatVec      = "MulVec"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opLU          = "LU"
	opLUSolve     = "LU.Solve"
	opQR          = "QR"
	opSolveUpper  = "SolveUpper"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (sign=+1) or a − b (sign=−1).
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result with a's policy.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Number](a, b *Dense[T], negate bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data)), validateNaNInf: a.validateNaNInf}
	if negate {
		for idx := range a.data {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range a.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (non-nil, a.Cols == b.Rows).
//   - Stage 2: row-major i→k→j accumulation into the flat result buffer.
//
// Behavior highlights:
//   - Skipping zero A[i,k] avoids useless multiplies (identity/projector-heavy pipelines).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Rows of the result are independent; the outer i loop is embarrassingly parallel
//     should a caller ever need it.
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense[T]{r: aRows, c: bCols, data: make([]T, aRows*bCols), validateNaNInf: a.validateNaNInf}
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = m·v for a column vector v.
//
// Contract: m, v non-nil; v.Len() == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MulVec[T Number](m *Dense[T], v *Vector[T]) (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if v == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(v.data, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.r)
	var i, j, base int
	var acc T
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * v.data[j]
		}
		y[i] = acc
	}

	return &Vector[T]{data: y}, nil
}

// Scale returns a new float64 matrix whose elements are alpha·m[i,j].
// The result is float64 regardless of T so that fractional scalars (e.g. 1/n) are exact.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (alpha not finite).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
func Scale[T Number](m *Dense[T], alpha float64) (*Dense[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	res := &Dense[float64]{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	for idx, v := range m.data {
		res.data[idx] = toFloat64(v) * alpha
	}

	return res, nil
}

// AsFloat64 returns a float64 copy of m. For a *Dense[float64] input this is
// equivalent to Clone. Returns nil for a nil input.
// Complexity: O(r*c).
func AsFloat64[T Number](m *Dense[T]) *Dense[float64] {
	if m == nil {
		return nil
	}
	out := &Dense[float64]{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	for idx, v := range m.data {
		out.data[idx] = toFloat64(v)
	}

	return out
}

// VectorAsFloat64 returns a float64 copy of v, or nil for a nil input.
func VectorAsFloat64[T Number](v *Vector[T]) *Vector[float64] {
	if v == nil {
		return nil
	}

	return ScaleVec(v, 1)
}
