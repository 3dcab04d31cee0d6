// SPDX-License-Identifier: MIT
package regression_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvreg/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_ReducedTrend(t *testing.T) {
	t.Parallel()
	x, y := trendDesign(t)
	reduced := x.Clone()
	require.NoError(t, reduced.RemoveColumn(2))

	eng := regression.New()
	beta, err := eng.Fit(reduced, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3.04, 1.9927272727}, beta.Values(), 1e-9)

	s, err := eng.Summarize(reduced, y, beta)
	require.NoError(t, err)

	assert.Equal(t, 10, s.Observations)
	assert.True(t, s.Intercept)
	assert.Equal(t, 1, s.Predictors)
	assert.Equal(t, 8, s.DF)
	assert.InDelta(t, 327.60436363636336, s.SSR, 1e-8)
	assert.InDelta(t, 0.5956363636, s.SSE, 1e-9)
	assert.InDelta(t, 328.2, s.SST, 1e-8)
	assert.InDelta(t, 0.07445454545454554, s.MSE, 1e-10)
	assert.InDelta(t, 0.9981851420973907, s.RSquared, 1e-10)
	assert.InDelta(t, 0.9979582848595646, s.AdjRSquared, 1e-10)
	assert.InDelta(t, 4400.058608058599, s.FStatistic, 1e-5)
	assert.InDelta(t, math.Sqrt(s.MSE), s.ResidualStdErr, 1e-15)

	res, err := eng.SignificanceTest(reduced, y, beta)
	require.NoError(t, err)
	assert.InDelta(t, 16.308897, res[0].TStatistic, 1e-5)
	assert.InDelta(t, 66.332938, res[1].TStatistic, 1e-5)
	assert.True(t, res[0].Significant && res[1].Significant)
}

// A constant response has SST = 0, so R² is undefined.
func TestSummarize_ConstantResponse(t *testing.T) {
	t.Parallel()
	x := mustDense(t, [][]float64{{1, 1}, {1, 2}, {1, 3}, {1, 4}})
	y := mustVec(t, 5, 5, 5, 5)
	eng := regression.New()

	beta, err := eng.Fit(x, y)
	require.NoError(t, err)
	s, err := eng.Summarize(x, y, beta)
	require.NoError(t, err)

	assert.InDelta(t, 0, s.SST, 1e-9)
	assert.True(t, math.IsNaN(s.RSquared))
	assert.True(t, math.IsNaN(s.AdjRSquared))
}

func TestSummarize_InterceptOnly(t *testing.T) {
	t.Parallel()
	x := mustDense(t, [][]float64{{1}, {1}, {1}})
	y := mustVec(t, 1, 2, 6)
	eng := regression.New()

	beta, err := eng.Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 3, beta.Values()[0], 1e-12)

	s, err := eng.Summarize(x, y, beta)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Predictors)
	assert.InDelta(t, 14, s.SSE, 1e-10)
	assert.InDelta(t, 0, s.SSR, 1e-10)
	assert.True(t, math.IsNaN(s.FStatistic))
}

// Without an all-ones column the centred decomposition is undefined.
func TestSummarize_NoIntercept(t *testing.T) {
	t.Parallel()
	x, y := trendDesign(t)
	noInt := x.Clone()
	require.NoError(t, noInt.RemoveColumn(0))
	eng := regression.New()

	beta, err := eng.Fit(noInt, y)
	require.NoError(t, err)
	s, err := eng.Summarize(noInt, y, beta)
	require.NoError(t, err)

	assert.False(t, s.Intercept)
	assert.Equal(t, 2, s.Predictors)
	assert.Equal(t, 8, s.DF)
	assert.Greater(t, s.SSE, 0.0)
	assert.InDelta(t, s.SSE/8, s.MSE, 1e-12)
	assert.True(t, math.IsNaN(s.SSR))
	assert.True(t, math.IsNaN(s.SST))
	assert.True(t, math.IsNaN(s.RSquared))
	assert.True(t, math.IsNaN(s.AdjRSquared))
	assert.True(t, math.IsNaN(s.FStatistic))
}

// The ones column need not come first.
func TestSummarize_InterceptNotFirst(t *testing.T) {
	t.Parallel()
	x := mustDense(t, [][]float64{{1, 1}, {2, 1}, {3, 1}, {4, 1}})
	y := mustVec(t, 3, 5, 7, 10)
	eng := regression.New()

	beta, err := eng.Fit(x, y)
	require.NoError(t, err)
	s, err := eng.Summarize(x, y, beta)
	require.NoError(t, err)
	assert.True(t, s.Intercept)
	assert.Equal(t, 1, s.Predictors)
	assert.InDelta(t, 1, s.RSquared, 0.05)
}

func TestSummarize_Errors(t *testing.T) {
	t.Parallel()
	x, y := trendDesign(t)
	eng := regression.New()

	_, err := eng.Summarize(x, y, mustVec(t, 1))
	require.ErrorIs(t, err, regression.ErrDimensionMismatch)

	_, err = eng.Summarize(nil, y, mustVec(t, 1))
	require.ErrorIs(t, err, regression.ErrEmptyDesign)

	sq := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	_, err = eng.Summarize(sq, mustVec(t, 1, 2), mustVec(t, 1, 2))
	require.ErrorIs(t, err, regression.ErrInvalidDegreesOfFreedom)
}
