// SPDX-License-Identifier: MIT

// Package regression fits ordinary-least-squares models and tests each
// coefficient with a two-sided Student-t test.
//
// The engine solves least squares through QR (R·β = Qᵗ·y by back substitution)
// and uses the LU inverse of XᵗX only for the coefficient covariance matrix.
// X is used exactly as given: prepend a ones column (matrix.PrependOnes) to
// fit an intercept.
package regression

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvreg/matrix"
	"github.com/katalvlaran/lvreg/tdist"
	"go.uber.org/zap"
)

var (
	// ErrEmptyDesign is returned for a nil design, a design without rows or
	// columns, or a nil response.
	ErrEmptyDesign = errors.New("regression: empty design")

	// ErrSingularDesign is returned when XᵗX cannot be inverted.
	ErrSingularDesign = errors.New("regression: singular design (XᵗX not invertible)")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrRankDeficient is matrix.ErrRankDeficient, re-exported.
	ErrRankDeficient = matrix.ErrRankDeficient

	// ErrInvalidDegreesOfFreedom is tdist.ErrInvalidDegreesOfFreedom, re-exported.
	ErrInvalidDegreesOfFreedom = tdist.ErrInvalidDegreesOfFreedom
)

const (
	opFit          = "Fit"
	opPredict      = "Predict"
	opSignificance = "SignificanceTest"
	opSummarize    = "Summarize"
)

func regressionErrorf(op string, err error) error {
	return fmt.Errorf("regression.%s: %w", op, err)
}

// Engine fits and tests linear models. It holds configuration only and is safe
// for concurrent use.
type Engine struct {
	alpha   float64
	dist    tdist.Distribution
	rankTol float64
	log     *zap.Logger
}

// New builds an Engine from options (see WithAlpha, WithDistribution,
// WithRankTolerance, WithLogger).
func New(opts ...Option) *Engine {
	o := gatherOptions(opts...)

	return &Engine{alpha: o.alpha, dist: o.dist, rankTol: o.rankTol, log: o.logger}
}

// Alpha returns the configured significance level.
func (e *Engine) Alpha() float64 { return e.alpha }

// checkDesign validates X and y for every entry point.
func checkDesign(x *matrix.Dense[float64], y *matrix.Vector[float64]) error {
	if x == nil || y == nil || x.Rows() == 0 || x.Cols() == 0 || y.Len() == 0 {
		return ErrEmptyDesign
	}
	if y.Len() != x.Rows() {
		return fmt.Errorf("len(y)=%d, rows=%d: %w", y.Len(), x.Rows(), ErrDimensionMismatch)
	}

	return nil
}

// Fit returns the least-squares coefficients β minimizing ‖y − X·β‖².
//
// Implementation:
//   - Stage 1: validate X and y (ErrEmptyDesign, ErrDimensionMismatch).
//   - Stage 2: X = Q·R by modified Gram–Schmidt.
//   - Stage 3: β = back substitution of R·β = Qᵗ·y.
//
// Errors:
//   - ErrEmptyDesign, ErrDimensionMismatch (also when rows < cols),
//     ErrRankDeficient (a column depends on the ones before it).
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func (e *Engine) Fit(x *matrix.Dense[float64], y *matrix.Vector[float64]) (*matrix.Vector[float64], error) {
	if err := checkDesign(x, y); err != nil {
		return nil, regressionErrorf(opFit, err)
	}

	f, err := matrix.QR(x, matrix.WithRankTolerance(e.rankTol))
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	qty, err := matrix.MulVec(f.Q.Transpose(), y)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	beta, err := matrix.SolveUpper(f.R, qty)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}

	e.log.Debug("regression fit",
		zap.Int("rows", x.Rows()),
		zap.Int("cols", x.Cols()),
		zap.Float64s("beta", beta.Values()),
	)

	return beta, nil
}

// Predict returns ŷ = X·β. It never mutates its inputs.
// Errors: ErrEmptyDesign (nil inputs), ErrDimensionMismatch (len(β) != cols).
func (e *Engine) Predict(x *matrix.Dense[float64], beta *matrix.Vector[float64]) (*matrix.Vector[float64], error) {
	if x == nil || beta == nil {
		return nil, regressionErrorf(opPredict, ErrEmptyDesign)
	}
	yHat, err := matrix.MulVec(x, beta)
	if err != nil {
		return nil, regressionErrorf(opPredict, err)
	}

	return yHat, nil
}
