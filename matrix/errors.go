// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag via matrixErrorf; callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> numerical failures
// (singular, rank deficient).

var (
	// ErrBadShape is returned when a literal 2-D input is ragged (rows of unequal length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive,
	// or that an operation would leave a matrix with zero rows or columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or element) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or Dot on
	// vectors of different length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (construction, Set, Fill).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix or vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when an exactly-zero pivot remains after the
	// partial-pivoting row search in LU, i.e. the matrix has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrRankDeficient is returned by QR when a column is (numerically) a linear
	// combination of the columns before it: its residual norm after
	// orthogonalization falls under the rank tolerance.
	ErrRankDeficient = errors.New("matrix: rank deficient (linearly dependent columns)")

	// ErrDivideByZero is returned when a vector is divided by an exact zero scalar.
	ErrDivideByZero = errors.New("matrix: division by zero")
)
