// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer the in-place column surgery (RemoveColumn/InsertColumn) that stepwise
//     selection performs on design matrices.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast flat-slice loops in hot kernels (see impl_linear_algebra.go).
//   - Use Clone before mutating a caller-owned matrix; every mutator here works in place.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Transpose: O(r*c);
//     RemoveColumn/InsertColumn: O(r*c) single compaction pass.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"           // method tag used in error wrappers
	ctxSet          = "Set"          // method tag used in error wrappers
	ctxRow          = "Row"          // method tag used in error wrappers
	ctxColumn       = "Column"       // method tag used in error wrappers
	ctxSetRow       = "SetRow"       // method tag used in error wrappers
	ctxSetColumn    = "SetColumn"    // method tag used in error wrappers
	ctxSwapRows     = "SwapRows"     // method tag used in error wrappers
	ctxRemoveColumn = "RemoveColumn" // method tag used in error wrappers
	ctxInsertColumn = "InsertColumn" // method tag used in error wrappers
	ctxFill         = "Fill"         // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer to wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over a primitive numeric element type.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Fill (policy default from options.go).
//
// The zero value is an empty 0×0 matrix; every constructor produces r,c ≥ 1.
type Dense[T Number] struct {
	r, c           int  // row and column counts
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]T, rows*cols)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom builds a matrix from a rectangular literal 2-D array.
// The input is copied; later changes to rows do not affect the matrix.
//
// Implementation:
//   - Stage 1: reject nil/empty input (ErrInvalidDimensions) and ragged rows (ErrBadShape).
//   - Stage 2: copy row by row; under the NaN/Inf policy reject non-finite cells (ErrNaNInf).
//
// Inputs:
//   - rows: literal data, rows[i][j] is element (i,j).
//   - opts: WithNoValidateNaNInf relaxes the finite-value check.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, ErrNaNInf (wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the boundary where caller data enters the package; validate here once.
func NewDenseFrom[T Number](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	r, c := len(rows), len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c), validateNaNInf: o.validateNaNInf}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if m.validateNaNInf && isNonFinite(toFloat64(rows[i][j])) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// NewFilled returns an r×c matrix with every element set to v.
// Errors: ErrInvalidDimensions, ErrNaNInf.
func NewFilled[T Number](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(v); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Behavior highlights:
//   - Error is wrapped with the caller's method context and coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: numeric policy check (NaN/Inf) when enabled.
//   - Stage 3: write into data slice.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (both wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && isNonFinite(toFloat64(v)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix; the copy shares no storage with m.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Row returns a copy of row i as a Vector.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) (*Vector[T], error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return &Vector[T]{data: out}, nil
}

// Column returns a copy of column j as a Vector.
// Errors: ErrOutOfRange.
// Complexity: O(r) with stride c.
func (m *Dense[T]) Column(j int) (*Vector[T], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return &Vector[T]{data: out}, nil
}

// SetRow overwrites row i with the values of v (len(v) must equal Cols()).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(c).
func (m *Dense[T]) SetRow(i int, v *Vector[T]) error {
	if v == nil {
		return denseErrorf(ctxSetRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if v.Len() != m.c {
		return denseErrorf(ctxSetRow, i, 0, ErrDimensionMismatch)
	}
	if err := m.checkFinite(ctxSetRow, v.data); err != nil {
		return err
	}
	copy(m.data[i*m.c:(i+1)*m.c], v.data)

	return nil
}

// SetColumn overwrites column j with the values of v (len(v) must equal Rows()).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r).
func (m *Dense[T]) SetColumn(j int, v *Vector[T]) error {
	if v == nil {
		return denseErrorf(ctxSetColumn, 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetColumn, 0, j, ErrOutOfRange)
	}
	if v.Len() != m.r {
		return denseErrorf(ctxSetColumn, 0, j, ErrDimensionMismatch)
	}
	if err := m.checkFinite(ctxSetColumn, v.data); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v.data[i]
	}

	return nil
}

// SwapRows exchanges rows i1 and i2 in place. Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) SwapRows(i1, i2 int) error {
	if i1 < 0 || i1 >= m.r || i2 < 0 || i2 >= m.r {
		return denseErrorf(ctxSwapRows, i1, i2, ErrOutOfRange)
	}
	if i1 == i2 {
		return nil
	}
	swapRowsFlat(m.data, m.c, i1, i2)

	return nil
}

// swapRowsFlat exchanges two rows of a row-major buffer with row length c.
func swapRowsFlat[T Number](data []T, c, i1, i2 int) {
	a, b := i1*c, i2*c
	for k := 0; k < c; k++ {
		data[a+k], data[b+k] = data[b+k], data[a+k]
	}
}

// RemoveColumn deletes column j in place, shifting columns > j one position left.
//
// Implementation:
//   - Stage 1: validate j and refuse to drop the only column (a matrix keeps c ≥ 1).
//   - Stage 2: single forward compaction pass over the flat buffer; rows stay in order.
//
// Behavior highlights:
//   - Values of untouched columns are copied bit-for-bit; row order is preserved.
//   - The backing slice is reused (length shrinks to r*(c-1)).
//
// Errors:
//   - ErrOutOfRange (j invalid), ErrInvalidDimensions (Cols()==1).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Stepwise selection calls this on its private clone of the design matrix;
//     never call it on a matrix another goroutine can observe.
func (m *Dense[T]) RemoveColumn(j int) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxRemoveColumn, 0, j, ErrOutOfRange)
	}
	if m.c == 1 {
		return denseErrorf(ctxRemoveColumn, 0, j, ErrInvalidDimensions)
	}

	nc := m.c - 1
	var i, k, dst int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for k = 0; k < m.c; k++ {
			if k == j {
				continue
			}
			m.data[dst] = m.data[base+k] // dst never overtakes base+k
			dst++
		}
	}
	m.data = m.data[:m.r*nc]
	m.c = nc

	return nil
}

// InsertColumn inserts v as a new column at position j (0 ≤ j ≤ Cols()),
// shifting columns ≥ j one position right.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch (len(v) != Rows()), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*(c+1)) for the grown buffer.
func (m *Dense[T]) InsertColumn(j int, v *Vector[T]) error {
	if v == nil {
		return denseErrorf(ctxInsertColumn, 0, j, ErrNilMatrix)
	}
	if j < 0 || j > m.c {
		return denseErrorf(ctxInsertColumn, 0, j, ErrOutOfRange)
	}
	if v.Len() != m.r {
		return denseErrorf(ctxInsertColumn, 0, j, ErrDimensionMismatch)
	}
	if err := m.checkFinite(ctxInsertColumn, v.data); err != nil {
		return err
	}

	nc := m.c + 1
	out := make([]T, m.r*nc)
	var i, k int
	for i = 0; i < m.r; i++ {
		src, dst := i*m.c, i*nc
		for k = 0; k < j; k++ {
			out[dst+k] = m.data[src+k]
		}
		out[dst+j] = v.data[i]
		for k = j; k < m.c; k++ {
			out[dst+k+1] = m.data[src+k]
		}
	}
	m.data = out
	m.c = nc

	return nil
}

// Fill sets every element to v.
// Errors: ErrNaNInf when v is not finite under the numeric policy.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) error {
	if m.validateNaNInf && isNonFinite(toFloat64(v)) {
		return denseErrorf(ctxFill, 0, 0, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return nil
}

// FillAsIdentity overwrites m with the Kronecker-delta pattern:
// 1 where i == j, 0 elsewhere. Rectangular shapes are allowed.
// Complexity: O(r*c).
func (m *Dense[T]) FillAsIdentity() {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if i == j {
				m.data[i*m.c+j] = 1
			} else {
				m.data[i*m.c+j] = 0
			}
		}
	}
}

// Transpose returns a new c×r matrix with result[j,i] = m[i,j].
// The receiver is never mutated.
//
// Implementation:
//   - Stage 1: allocate the flipped buffer.
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i], fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - If you only need Aᵀ*x, prefer a transposed MatVec loop instead of forming Aᵀ.
func (m *Dense[T]) Transpose() *Dense[T] {
	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data)), validateNaNInf: m.validateNaNInf}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// checkFinite applies the NaN/Inf policy to a batch of incoming values.
func (m *Dense[T]) checkFinite(method string, vals []T) error {
	if !m.validateNaNInf {
		return nil
	}
	for k, v := range vals {
		if isNonFinite(toFloat64(v)) {
			return denseErrorf(method, k, k, ErrNaNInf)
		}
	}

	return nil
}
