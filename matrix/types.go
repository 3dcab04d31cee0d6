// SPDX-License-Identifier: MIT

// Package matrix: element types shared by Dense and Vector.
// This file intentionally contains ONLY the numeric element constraint and
// the small conversion helpers built on it. Errors and options live in
// dedicated files (errors.go, options.go) per the global conventions.
package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Dense or Vector may hold.
// Primitive integer and floating-point kinds are accepted; anything else is
// rejected by the compiler, so no runtime element-type check exists.
//
// Decompositions, inverses and norms always compute in float64; integer
// containers are widened via AsFloat64 / toFloat64 before any division.
type Number interface {
	constraints.Integer | constraints.Float
}

// toFloat64 widens a single element. Complexity: O(1).
func toFloat64[T Number](v T) float64 { return float64(v) }

// isNonFinite reports whether x is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
