// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// QRFactors is the thin QR factorization X = Q·R of an m×n matrix (m ≥ n):
// Q is m×n with orthonormal columns, R is n×n upper triangular.
type QRFactors struct {
	Q *Dense[float64]
	R *Dense[float64]
}

// QR factors x with the modified Gram–Schmidt process.
//
// Implementation:
//   - Stage 1: validate non-nil and rows ≥ cols; resolve the rank tolerance.
//   - Stage 2: for each column j, start from u = X[:,j] and subtract its projection
//     on every earlier unit vector e_p, taking the projection from the partially
//     reduced u (the "modified" variant). R[p,j] records each projection.
//   - Stage 3: if ‖u‖ ≤ tol·‖X[:,j]‖ the column is dependent → ErrRankDeficient;
//     otherwise e_j = u/‖u‖ becomes Q[:,j].
//   - Stage 4: R[j,j] = X[:,j]·e_j for every j.
//
// Behavior highlights:
//   - A zero column is rank deficient regardless of tol.
//   - The input is never mutated.
//
// Inputs:
//   - x: design-like matrix with Rows() ≥ Cols().
//   - opts: WithRankTolerance(tol) overrides DefaultRankTolerance.
//
// Returns:
//   - *QRFactors with Q (m×n) and R (n×n).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows < cols), ErrRankDeficient (column index in message).
//
// Determinism:
//   - Fixed column order j = 0..n−1 and p = 0..j−1.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n + n²).
//
// AI-Hints:
//   - Solve least squares as R·β = Qᵗ·y by back substitution; never form R⁻¹.
//   - Raise the tolerance (e.g. 1e-8) to reject nearly collinear predictors earlier.
func QR[T Number](x *Dense[T], opts ...Option) (*QRFactors, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	if err := ValidateTall(x); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	o := gatherOptions(opts...)

	m, n := x.r, x.c
	q := &Dense[float64]{r: m, c: n, data: make([]float64, m*n), validateNaNInf: x.validateNaNInf}
	r := &Dense[float64]{r: n, c: n, data: make([]float64, n*n), validateNaNInf: x.validateNaNInf}

	// Column-major scratch: cols[j] is X[:,j], basis[j] is e_j.
	cols := make([][]float64, n)
	basis := make([][]float64, n)
	u := make([]float64, m)
	var (
		i, j, p           int
		dot, uNorm, aNorm float64
	)
	for j = 0; j < n; j++ {
		cols[j] = make([]float64, m)
		for i = 0; i < m; i++ {
			cols[j][i] = toFloat64(x.data[i*n+j])
		}
	}

	for j = 0; j < n; j++ {
		copy(u, cols[j])
		for p = 0; p < j; p++ {
			dot = dotFlat(u, basis[p])
			r.data[p*n+j] = dot
			for i = 0; i < m; i++ {
				u[i] -= dot * basis[p][i]
			}
		}

		aNorm = math.Sqrt(dotFlat(cols[j], cols[j]))
		uNorm = math.Sqrt(dotFlat(u, u))
		if aNorm == NormZero || uNorm <= o.rankTol*aNorm {
			return nil, matrixErrorf(opQR, fmt.Errorf("column %d: %w", j, ErrRankDeficient))
		}

		basis[j] = make([]float64, m)
		for i = 0; i < m; i++ {
			basis[j][i] = u[i] / uNorm
			q.data[i*n+j] = basis[j][i]
		}
	}

	for j = 0; j < n; j++ {
		r.data[j*n+j] = dotFlat(cols[j], basis[j])
	}

	return &QRFactors{Q: q, R: r}, nil
}

// SolveUpper solves the upper-triangular system R·x = b by back substitution.
// Only the diagonal and upper triangle of R are read.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular (zero diagonal).
// Complexity: O(n²).
func SolveUpper(r *Dense[float64], b *Vector[float64]) (*Vector[float64], error) {
	if err := ValidateSquareNonNil(r); err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}
	if b == nil {
		return nil, matrixErrorf(opSolveUpper, ErrNilMatrix)
	}
	n := r.r
	if err := ValidateVecLen(b.data, n); err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}

	x := make([]float64, n)
	var i, j int
	var sum, diag float64
	for i = n - 1; i >= 0; i-- {
		sum = b.data[i]
		for j = i + 1; j < n; j++ {
			sum -= r.data[i*n+j] * x[j]
		}
		diag = r.data[i*n+i]
		if diag == ZeroPivot {
			return nil, matrixErrorf(opSolveUpper, fmt.Errorf("diagonal %d: %w", i, ErrSingular))
		}
		x[i] = sum / diag
	}

	return &Vector[float64]{data: x}, nil
}
