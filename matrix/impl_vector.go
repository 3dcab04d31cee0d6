// SPDX-License-Identifier: MIT

// Package matrix - Vector storage & arithmetic.
//
// Purpose:
//   - Fixed-length 1-D buffer used for responses, coefficients and matrix columns.
//   - Immutable by convention: Set is the only mutator; arithmetic returns new vectors.
//   - Norm and Dot are the building blocks of Gram–Schmidt (see impl_qr.go).
//
// Complexity quicksheet:
//   - NewVector: O(n); At/Set: O(1); Norm/Dot/Sub/Scale: O(n).

package matrix

import (
	"fmt"
	"math"
)

const (
	opDot    = "Dot"
	opSubVec = "SubVec"
	opDivVec = "DivVec"
)

// Vector is a fixed-length sequence of numbers.
type Vector[T Number] struct {
	data []T
}

// vectorErrorf wraps err with "Vector.<method>(i)" context.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// NewVector returns a zero vector of length n.
// Errors: ErrInvalidDimensions when n ≤ 0.
func NewVector[T Number](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// NewVectorFrom copies vals into a new vector.
// Errors: ErrInvalidDimensions for nil/empty input, ErrNaNInf for non-finite elements.
func NewVectorFrom[T Number](vals []T) (*Vector[T], error) {
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	for i, v := range vals {
		if isNonFinite(toFloat64(v)) {
			return nil, vectorErrorf(ctxSet, i, ErrNaNInf)
		}
	}
	out := make([]T, len(vals))
	copy(out, vals)

	return &Vector[T]{data: out}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns element i. Errors: ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns element i. Errors: ErrOutOfRange, ErrNaNInf.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	if isNonFinite(toFloat64(x)) {
		return vectorErrorf(ctxSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: v.Values()}
}

// String implements fmt.Stringer.
func (v *Vector[T]) String() string { return fmt.Sprintf("%v", v.data) }

// Norm returns the Euclidean norm sqrt(Σ v_i²), accumulated in float64.
// Complexity: O(n).
func (v *Vector[T]) Norm() float64 {
	var sum, x float64
	for _, e := range v.data {
		x = toFloat64(e)
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Dot returns Σ a_i·b_i in float64.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func Dot[T Number](a, b *Vector[T]) (float64, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	return dotFlat(a.data, b.data), nil
}

// dotFlat is the unchecked inner product used by kernels that already validated lengths.
func dotFlat[T Number](a, b []T) float64 {
	var sum float64
	for i := range a {
		sum += toFloat64(a[i]) * toFloat64(b[i])
	}

	return sum
}

// SubVec returns a − b elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func SubVec[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opSubVec, ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return nil, matrixErrorf(opSubVec, ErrDimensionMismatch)
	}
	out := make([]T, len(a.data))
	for i := range a.data {
		out[i] = a.data[i] - b.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// ScaleVec returns s·v as a float64 vector.
func ScaleVec[T Number](v *Vector[T], s float64) *Vector[float64] {
	out := make([]float64, len(v.data))
	for i, e := range v.data {
		out[i] = toFloat64(e) * s
	}

	return &Vector[float64]{data: out}
}

// DivVec returns v/s as a float64 vector.
// Errors: ErrDivideByZero when s == 0, ErrNaNInf when s is not finite.
func DivVec[T Number](v *Vector[T], s float64) (*Vector[float64], error) {
	if s == 0 {
		return nil, matrixErrorf(opDivVec, ErrDivideByZero)
	}
	if isNonFinite(s) {
		return nil, matrixErrorf(opDivVec, ErrNaNInf)
	}

	return ScaleVec(v, 1/s), nil
}
