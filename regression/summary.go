// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvreg/matrix"
)

// Summary collects the analysis-of-variance figures of a fitted model.
//
// SSR = yᵗ(H − J/n)y, SSE = yᵗ(I − H)y, SST = SSR + SSE. The centred
// decomposition only holds when X contains an all-ones column: without one,
// Intercept is false and SSR, SST, RSquared, AdjRSquared and FStatistic are NaN.
// Predictors counts the non-intercept columns. RSquared is NaN when SST is
// zero; FStatistic is NaN without predictors.
type Summary struct {
	Observations   int
	Predictors     int
	Intercept      bool
	DF             int
	SSR            float64
	SSE            float64
	SST            float64
	MSE            float64
	RSquared       float64
	AdjRSquared    float64
	FStatistic     float64
	ResidualStdErr float64
}

// Summarize computes the ANOVA decomposition and goodness-of-fit measures for X, y.
// β must have one entry per column; the projections themselves are taken from
// (XᵗX)⁻¹ so the figures describe the least-squares fit.
//
// Errors: the same as SignificanceTest.
// Complexity: Time O(m·n² + n³).
func (e *Engine) Summarize(x *matrix.Dense[float64], y, beta *matrix.Vector[float64]) (Summary, error) {
	if err := checkDesign(x, y); err != nil {
		return Summary{}, regressionErrorf(opSummarize, err)
	}
	if beta == nil || beta.Len() != x.Cols() {
		return Summary{}, regressionErrorf(opSummarize, fmt.Errorf("len(beta) != cols=%d: %w", x.Cols(), ErrDimensionMismatch))
	}

	pr, err := project(x, y, e.rankTol)
	if err != nil {
		return Summary{}, regressionErrorf(opSummarize, err)
	}

	rows, cols := x.Shape()
	mse := pr.sse / float64(pr.df)
	s := Summary{
		Observations:   rows,
		Predictors:     cols,
		DF:             pr.df,
		SSR:            math.NaN(),
		SSE:            pr.sse,
		SST:            math.NaN(),
		MSE:            mse,
		RSquared:       math.NaN(),
		AdjRSquared:    math.NaN(),
		FStatistic:     math.NaN(),
		ResidualStdErr: math.Sqrt(mse),
	}
	if !hasOnesColumn(x) {
		return s, nil
	}

	yv := y.Values()
	var yHy, sumY float64
	for i, v := range yv {
		yHy += v * pr.hy[i]
		sumY += v
	}
	n := float64(rows)
	ssr := math.Max(yHy-sumY*sumY/n, 0)
	sst := ssr + pr.sse
	k := cols - 1

	s.Intercept = true
	s.Predictors = k
	s.SSR, s.SST = ssr, sst
	if sst > 0 {
		s.RSquared = ssr / sst
		s.AdjRSquared = 1 - (1-s.RSquared)*(n-1)/float64(pr.df)
	}
	if k > 0 {
		s.FStatistic = (ssr / float64(k)) / mse
	}

	return s, nil
}

// hasOnesColumn reports whether some column of x is exactly all ones.
func hasOnesColumn(x *matrix.Dense[float64]) bool {
	rows, cols := x.Shape()
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if v, _ := x.At(i, j); v != 1 {
				break
			}
		}
		if i == rows {
			return true
		}
	}

	return false
}
