// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvreg/matrix"
	"github.com/katalvlaran/lvreg/tdist"
	"go.uber.org/zap"
)

// SignificanceResult is the t-test outcome for one coefficient.
// Lower/Upper bound the (1−α) confidence interval β ± t*·StdErr; they are NaN
// when the distribution cannot produce a critical value for α.
type SignificanceResult struct {
	Index       int
	Beta        float64
	StdErr      float64
	TStatistic  float64
	PValue      float64
	Significant bool
	Lower       float64
	Upper       float64
}

// projection holds the pieces shared by SignificanceTest and Summarize.
type projection struct {
	gramInv *matrix.Dense[float64] // (XᵗX)⁻¹
	hy      []float64              // H·y
	df      int                    // rows − cols
	sse     float64                // yᵗ(I−H)y
}

// project computes (XᵗX)⁻¹, H·y = X(XᵗX)⁻¹Xᵗy and SSe = yᵗ(I−H)y.
// SSe is evaluated as ‖y − H·y‖², which equals yᵗ(I−H)y because H is a
// symmetric idempotent projector, and is non-negative by construction.
//
// Collinearity is detected by the same QR rank test Fit uses: a numerically
// collinear XᵗX rarely yields an exactly-zero LU pivot.
func project(x *matrix.Dense[float64], y *matrix.Vector[float64], rankTol float64) (*projection, error) {
	rows, cols := x.Shape()
	df := rows - cols
	if df <= 0 {
		return nil, fmt.Errorf("rows=%d cols=%d: %w", rows, cols, ErrInvalidDegreesOfFreedom)
	}
	if _, err := matrix.QR(x, matrix.WithRankTolerance(rankTol)); err != nil {
		if errors.Is(err, matrix.ErrRankDeficient) {
			return nil, fmt.Errorf("%w: %w", ErrSingularDesign, err)
		}
		return nil, err
	}

	gram, err := matrix.Gram(x)
	if err != nil {
		return nil, err
	}
	inv, err := gram.Inverse()
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingularDesign, err)
		}
		return nil, err
	}

	xt := x.Transpose()
	xty, err := matrix.MulVec(xt, y)
	if err != nil {
		return nil, err
	}
	coef, err := matrix.MulVec(inv, xty)
	if err != nil {
		return nil, err
	}
	hyVec, err := matrix.MulVec(x, coef)
	if err != nil {
		return nil, err
	}
	resid, err := matrix.SubVec(y, hyVec)
	if err != nil {
		return nil, err
	}
	sse, _ := matrix.Dot(resid, resid)

	return &projection{gramInv: inv, hy: hyVec.Values(), df: df, sse: math.Max(sse, 0)}, nil
}

// SignificanceTest runs a two-sided t-test on every coefficient of β.
//
// Implementation:
//   - Stage 1: validate shapes; df = rows − cols must be positive.
//   - Stage 2: (XᵗX)⁻¹ by LU; SSe = yᵗ(I−H)y with H = X(XᵗX)⁻¹Xᵗ; MSe = SSe/df.
//   - Stage 3: C = (XᵗX)⁻¹·MSe; t_i = β_i/√C[i,i]; p_i from the distribution.
//
// Behavior highlights:
//   - Zero standard error: t = ±Inf, or t = 0 and p = 1 when β_i is also 0.
//   - Significant means p < α.
//
// Errors:
//   - ErrEmptyDesign, ErrDimensionMismatch (y or β length),
//     ErrInvalidDegreesOfFreedom (rows ≤ cols), ErrSingularDesign (collinear
//     columns under the rank tolerance, or XᵗX singular),
//     distribution errors (e.g. tdist.ErrInvalidStatistic).
//
// Complexity:
//   - Time O(m·n² + n³), Space O(n² + m).
func (e *Engine) SignificanceTest(x *matrix.Dense[float64], y, beta *matrix.Vector[float64]) ([]SignificanceResult, error) {
	if err := checkDesign(x, y); err != nil {
		return nil, regressionErrorf(opSignificance, err)
	}
	if beta == nil || beta.Len() != x.Cols() {
		return nil, regressionErrorf(opSignificance, fmt.Errorf("len(beta) != cols=%d: %w", x.Cols(), ErrDimensionMismatch))
	}

	pr, err := project(x, y, e.rankTol)
	if err != nil {
		return nil, regressionErrorf(opSignificance, err)
	}
	mse := pr.sse / float64(pr.df)

	crit, err := e.dist.CriticalValue(pr.df, tdist.Alpha(e.alpha))
	if err != nil {
		if !errors.Is(err, tdist.ErrUnsupportedAlpha) {
			return nil, regressionErrorf(opSignificance, err)
		}
		crit = math.NaN()
	}

	b := beta.Values()
	out := make([]SignificanceResult, len(b))
	var (
		i         int
		cii, se   float64
		tStat, pv float64
	)
	for i = range b {
		cii, _ = pr.gramInv.At(i, i)
		se = math.Sqrt(math.Max(cii*mse, 0))

		switch {
		case se > 0:
			tStat = b[i] / se
		case b[i] == 0:
			tStat = 0
		default:
			tStat = math.Copysign(math.Inf(1), b[i])
		}

		if se == 0 && b[i] == 0 {
			pv = 1
		} else if pv, err = e.dist.PValue(pr.df, tStat); err != nil {
			return nil, regressionErrorf(opSignificance, fmt.Errorf("coefficient %d: %w", i, err))
		}

		out[i] = SignificanceResult{
			Index:       i,
			Beta:        b[i],
			StdErr:      se,
			TStatistic:  tStat,
			PValue:      pv,
			Significant: pv < e.alpha,
			Lower:       b[i] - crit*se,
			Upper:       b[i] + crit*se,
		}
	}

	e.log.Debug("significance test",
		zap.Int("df", pr.df),
		zap.Float64("sse", pr.sse),
		zap.Float64("mse", mse),
		zap.Float64("alpha", e.alpha),
	)

	return out, nil
}
