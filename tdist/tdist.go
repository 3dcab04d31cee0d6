// SPDX-License-Identifier: MIT

// Package tdist supplies Student-t critical values and two-sided p-values
// to the regression engine.
//
// Two implementations of Distribution are provided:
//
//   - Table: the classic printed table (df 1..30, 40, 50, 60, 80, 100, 120 and
//     the normal limit), interpolated linearly. It is the default and keeps
//     results reproducible against hand calculations.
//   - Exact: the continuous distribution from gonum's distuv.StudentsT.
//
// Both reject df ≤ 0 with ErrInvalidDegreesOfFreedom and NaN statistics with
// ErrInvalidStatistic. Both are immutable and safe for concurrent use.
package tdist

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDegreesOfFreedom is returned when df ≤ 0.
	ErrInvalidDegreesOfFreedom = errors.New("tdist: degrees of freedom must be > 0")

	// ErrInvalidStatistic is returned for a NaN t statistic.
	ErrInvalidStatistic = errors.New("tdist: t statistic is NaN")

	// ErrUnsupportedAlpha is returned when a significance level is outside (0,1),
	// or, for Table, is not one of the tabulated levels.
	ErrUnsupportedAlpha = errors.New("tdist: unsupported significance level")
)

// Alpha is a two-sided significance level.
type Alpha float64

// Tabulated two-sided levels, widest to narrowest.
const (
	Alpha50  Alpha = 0.50
	Alpha20  Alpha = 0.20
	Alpha10  Alpha = 0.10
	Alpha05  Alpha = 0.05
	Alpha02  Alpha = 0.02
	Alpha01  Alpha = 0.01
	Alpha002 Alpha = 0.002
	Alpha001 Alpha = 0.001
)

// Levels lists the tabulated levels in table column order.
var Levels = [...]Alpha{Alpha50, Alpha20, Alpha10, Alpha05, Alpha02, Alpha01, Alpha002, Alpha001}

// Valid reports whether a lies strictly inside (0,1).
func (a Alpha) Valid() bool {
	return !math.IsNaN(float64(a)) && a > 0 && a < 1
}

// String implements fmt.Stringer.
func (a Alpha) String() string { return fmt.Sprintf("α=%g", float64(a)) }

// Distribution is the contract the regression engine consumes.
type Distribution interface {
	// CriticalValue returns t* with P(|T| > t*) = a for T ~ t(df).
	CriticalValue(df int, a Alpha) (float64, error)
	// PValue returns the two-sided p-value P(|T| ≥ |t|) for T ~ t(df).
	PValue(df int, t float64) (float64, error)
}

// checkArgs applies the shared df / statistic guards.
func checkArgs(op string, df int, t float64) error {
	if df <= 0 {
		return fmt.Errorf("%s: df=%d: %w", op, df, ErrInvalidDegreesOfFreedom)
	}
	if math.IsNaN(t) {
		return fmt.Errorf("%s: %w", op, ErrInvalidStatistic)
	}

	return nil
}
