// SPDX-License-Identifier: MIT

// Package matrix - LU decomposition with partial pivoting (Crout layout),
// plus the inverse and determinant built on it.
//
// Purpose:
//   - Factor a square matrix once as P·M = L·U and reuse the factors for
//     triangular solves, the inverse and the determinant.
//   - Keep L and U packed in a single n×n buffer (LUM): strictly lower part holds the
//     multipliers of the unit lower factor, diagonal and upper part hold U.
//
// Determinism:
//   - Pivot search scans rows top-down and keeps the first maximum (strict '>'),
//     so ties never reorder rows.
//
// Complexity quicksheet:
//   - LU: O(n³); Solve: O(n²); Inverse: O(n³); Determinant: O(n³) (dominated by LU).

package matrix

import (
	"fmt"
	"math"
)

// LUFactors is the packed result of LU with partial pivoting.
//   - LUM holds L (unit diagonal implied, multipliers below) and U (diagonal and above).
//   - Perm[i] is the original row index that ended up at row i.
//   - Toggle is +1 for an even number of row swaps, −1 for an odd number.
//
// Invariant: Toggle·∏ LUM[i,i] = det(M).
type LUFactors struct {
	LUM    *Dense[float64]
	Perm   []int
	Toggle int
}

// croutFactor runs the elimination and reports whether an exact zero pivot was seen.
// It never fails on singular input so that Determinant can return 0 instead of an error.
//
// Implementation:
//   - Stage 1: copy m into a float64 buffer; Perm = identity; Toggle = +1.
//   - Stage 2: for j = 0..n−2 pick the max-|·| row among j..n−1, swap it into place
//     (flipping Toggle), then store multipliers and update the trailing submatrix.
//   - Stage 3: scan the diagonal for exact zeros (the last pivot is never searched).
//
// Complexity:
//   - Time O(n³), Space O(n²) for LUM plus O(n) for Perm.
func croutFactor[T Number](m *Dense[T]) (*LUFactors, bool) {
	n := m.r
	lum := AsFloat64(m)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	toggle := 1

	a := lum.data
	var (
		i, j, k, piv   int
		maxAbs, absIJ  float64
		pivotVal, mult float64
		rowI, rowJ     int
	)
	for j = 0; j < n-1; j++ {
		// Partial pivoting: first row with the largest |a[i,j]| wins.
		maxAbs = math.Abs(a[j*n+j])
		piv = j
		for i = j + 1; i < n; i++ {
			absIJ = math.Abs(a[i*n+j])
			if absIJ > maxAbs {
				maxAbs = absIJ
				piv = i
			}
		}
		if piv != j {
			swapRowsFlat(a, n, piv, j)
			perm[piv], perm[j] = perm[j], perm[piv]
			toggle = -toggle
		}

		pivotVal = a[j*n+j]
		if pivotVal == ZeroPivot {
			continue // whole sub-column is zero; singularity is reported in Stage 3
		}
		rowJ = j * n
		for i = j + 1; i < n; i++ {
			rowI = i * n
			mult = a[rowI+j] / pivotVal
			a[rowI+j] = mult
			for k = j + 1; k < n; k++ {
				a[rowI+k] -= mult * a[rowJ+k]
			}
		}
	}

	singular := false
	for i = 0; i < n; i++ {
		if a[i*n+i] == ZeroPivot {
			singular = true
			break
		}
	}

	return &LUFactors{LUM: lum, Perm: perm, Toggle: toggle}, singular
}

// LU factors a square matrix with partial pivoting: P·M = L·U.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: croutFactor (packed Crout layout, row swaps tracked in Perm/Toggle).
//   - Stage 3: any exactly-zero diagonal entry of U → ErrSingular.
//
// Behavior highlights:
//   - The input is never mutated; LUM is a fresh float64 buffer.
//   - Singularity test is exact (== 0), matching the pivot rule; near-singular
//     matrices factor successfully and show up as huge inverse entries instead.
//
// Inputs:
//   - m: square matrix of any Number element type.
//
// Returns:
//   - *LUFactors: packed factors, permutation and swap parity.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation), ErrSingular (zero pivot).
//
// Determinism:
//   - Fixed j→i→k loop order; tie-breaking keeps the upper row.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Factor once and call Solve repeatedly for many right-hand sides.
//   - Need only det(M)? Call Determinant; it tolerates singular input.
func LU[T Number](m *Dense[T]) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	f, singular := croutFactor(m)
	if singular {
		return nil, matrixErrorf(opLU, ErrSingular)
	}

	return f, nil
}

// Solve returns x with M·x = b using the packed factors.
//
// Implementation:
//   - Stage 1: x[i] = b[Perm[i]] (apply the row permutation).
//   - Stage 2: forward substitution with the unit lower factor.
//   - Stage 3: backward substitution with U.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != n).
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LUFactors) Solve(b *Vector[float64]) (*Vector[float64], error) {
	if b == nil {
		return nil, matrixErrorf(opLUSolve, ErrNilMatrix)
	}
	n := f.LUM.r
	if err := ValidateVecLen(b.data, n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	x := make([]float64, n)
	f.solveInto(b.data, x)

	return &Vector[float64]{data: x}, nil
}

// solveInto is the unchecked kernel behind Solve and Inverse; len(b) == len(x) == n.
func (f *LUFactors) solveInto(b, x []float64) {
	n := f.LUM.r
	a := f.LUM.data
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		x[i] = b[f.Perm[i]]
	}
	// L·z = P·b (unit diagonal, so no division).
	for i = 1; i < n; i++ {
		sum = x[i]
		for j = 0; j < i; j++ {
			sum -= a[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// U·x = z.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= a[i*n+j] * x[j]
		}
		x[i] = sum / a[i*n+i]
	}
}

// Determinant returns Toggle·∏ LUM[i,i].
// Complexity: O(n).
func (f *LUFactors) Determinant() float64 {
	n := f.LUM.r
	det := float64(f.Toggle)
	for i := 0; i < n; i++ {
		det *= f.LUM.data[i*n+i]
	}

	return det
}

// Inverse returns M⁻¹ as a new float64 matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil + one LU factorization.
//   - Stage 2: for each column c solve M·x = e_c with the shared factors
//     (the permutation is applied to the basis vector inside the solve).
//   - Stage 3: write x as column c of the result.
//
// Behavior highlights:
//   - One O(n³) factorization plus n O(n²) solves; no repeated elimination.
//   - The receiver is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (all wrapped with "Inverse").
//
// Determinism:
//   - Fixed column order; bit-identical results for identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - For a single system M·x = b prefer LU(m) + Solve(b); forming the inverse costs n solves.
func (m *Dense[T]) Inverse() (*Dense[float64], error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	inv := &Dense[float64]{r: n, c: n, data: make([]float64, n*n), validateNaNInf: m.validateNaNInf}
	e := make([]float64, n)
	x := make([]float64, n)
	var c, i int
	for c = 0; c < n; c++ {
		for i = range e {
			e[i] = 0
		}
		e[c] = 1
		f.solveInto(e, x)
		for i = 0; i < n; i++ {
			inv.data[i*n+c] = x[i]
		}
	}

	return inv, nil
}

// Determinant returns det(m) through LU with partial pivoting.
// Singular matrices yield exactly 0 with a nil error.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func (m *Dense[T]) Determinant() (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	f, singular := croutFactor(m)
	if singular {
		return 0, nil
	}

	return f.Determinant(), nil
}

// String implements fmt.Stringer for debugging.
func (f *LUFactors) String() string {
	return fmt.Sprintf("LU{perm=%v toggle=%+d}\n%s", f.Perm, f.Toggle, f.LUM)
}
