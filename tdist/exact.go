// SPDX-License-Identifier: MIT

package tdist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Exact evaluates the continuous Student-t distribution through gonum.
// Unlike Table it accepts any significance level in (0,1) and does not floor p-values.
type Exact struct{}

// NewExact returns the gonum-backed distribution.
func NewExact() Exact { return Exact{} }

var _ Distribution = Exact{}

func studentsT(df int) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
}

// CriticalValue returns Quantile(1 − a/2).
// Errors: ErrInvalidDegreesOfFreedom, ErrUnsupportedAlpha (a outside (0,1)).
func (Exact) CriticalValue(df int, a Alpha) (float64, error) {
	if err := checkArgs("Exact.CriticalValue", df, 0); err != nil {
		return 0, err
	}
	if !a.Valid() {
		return 0, fmt.Errorf("Exact.CriticalValue: %v: %w", a, ErrUnsupportedAlpha)
	}

	return studentsT(df).Quantile(1 - float64(a)/2), nil
}

// PValue returns 2·Survival(|t|).
// Errors: ErrInvalidDegreesOfFreedom, ErrInvalidStatistic.
func (Exact) PValue(df int, t float64) (float64, error) {
	if err := checkArgs("Exact.PValue", df, t); err != nil {
		return 0, err
	}

	return 2 * studentsT(df).Survival(math.Abs(t)), nil
}
