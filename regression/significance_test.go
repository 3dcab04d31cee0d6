// SPDX-License-Identifier: MIT
package regression_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvreg/matrix"
	"github.com/katalvlaran/lvreg/regression"
	"github.com/katalvlaran/lvreg/tdist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSignificanceTest_Trend(t *testing.T) {
	t.Parallel()
	x, y := trendDesign(t)
	eng := regression.New()

	beta, err := eng.Fit(x, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3.0373786408, 1.9932038835, 0.0393203883}, beta.Values(), 1e-9)

	res, err := eng.SignificanceTest(x, y, beta)
	require.NoError(t, err)
	require.Len(t, res, 3)

	wantT := []float64{15.436574, 62.846004, 0.431635}
	for i, r := range res {
		assert.Equal(t, i, r.Index)
		assert.InDelta(t, wantT[i], r.TStatistic, 1e-5, "t[%d]", i)
		assert.InDelta(t, r.Beta/r.TStatistic, r.StdErr, 1e-12)
	}

	// Intercept and slope are beyond the table's narrowest column.
	assert.Equal(t, 0.001, res[0].PValue)
	assert.Equal(t, 0.001, res[1].PValue)
	assert.True(t, res[0].Significant)
	assert.True(t, res[1].Significant)

	// Noise column: interpolated in the first table segment at df = 7.
	assert.InDelta(t, 1-0.5*res[2].TStatistic/0.711, res[2].PValue, 1e-12)
	assert.False(t, res[2].Significant)

	// 95% interval uses t*(7, 0.05) = 2.365.
	assert.InDelta(t, res[1].Beta-2.365*res[1].StdErr, res[1].Lower, 1e-12)
	assert.InDelta(t, res[1].Beta+2.365*res[1].StdErr, res[1].Upper, 1e-12)
	assert.Less(t, res[2].Lower, 0.0)
	assert.Greater(t, res[2].Upper, 0.0)
}

func TestSignificanceTest_ExactDistribution(t *testing.T) {
	t.Parallel()
	x, y := trendDesign(t)
	eng := regression.New(regression.WithDistribution(tdist.NewExact()), regression.WithAlpha(0.03))

	beta, err := eng.Fit(x, y)
	require.NoError(t, err)
	res, err := eng.SignificanceTest(x, y, beta)
	require.NoError(t, err)

	assert.Less(t, res[1].PValue, 1e-9)
	assert.InDelta(t, 0.68, res[2].PValue, 0.02)
	// Exact supports α = 0.03, so intervals are finite.
	assert.False(t, math.IsNaN(res[2].Lower))
}

func TestSignificanceTest_UntabulatedAlpha_NaNInterval(t *testing.T) {
	t.Parallel()
	x, y := trendDesign(t)
	eng := regression.New(regression.WithAlpha(0.03))

	beta, err := eng.Fit(x, y)
	require.NoError(t, err)
	res, err := eng.SignificanceTest(x, y, beta)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(res[0].Lower))
	assert.True(t, math.IsNaN(res[0].Upper))
	assert.True(t, res[0].Significant)
}

// Gram = I and y in the column space give SSE = 0 exactly.
func TestSignificanceTest_ZeroStdErr(t *testing.T) {
	t.Parallel()
	x := mustDense(t, [][]float64{{1, 0}, {0, 1}, {0, 0}})
	y := mustVec(t, 2, 0, 0)
	eng := regression.New()

	beta, err := eng.Fit(x, y)
	require.NoError(t, err)
	res, err := eng.SignificanceTest(x, y, beta)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res[0].StdErr)
	assert.True(t, math.IsInf(res[0].TStatistic, 1))
	assert.Equal(t, 0.001, res[0].PValue)
	assert.True(t, res[0].Significant)

	assert.Equal(t, 0.0, res[1].TStatistic)
	assert.Equal(t, 1.0, res[1].PValue)
	assert.False(t, res[1].Significant)
}

func TestSignificanceTest_Errors(t *testing.T) {
	t.Parallel()
	eng := regression.New()

	// Square design leaves no residual degrees of freedom.
	sq := mustDense(t, fixture5x3[:3])
	_, err := eng.SignificanceTest(sq, mustVec(t, 1, 2, 3), mustVec(t, 0, 0, 0))
	require.ErrorIs(t, err, regression.ErrInvalidDegreesOfFreedom)
	require.ErrorIs(t, err, tdist.ErrInvalidDegreesOfFreedom)

	dup := mustDense(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})
	_, err = eng.SignificanceTest(dup, mustVec(t, 1, 2, 3), mustVec(t, 0.5, 0.5))
	require.ErrorIs(t, err, regression.ErrSingularDesign)
	require.ErrorIs(t, err, matrix.ErrRankDeficient)

	x, y := trendDesign(t)
	_, err = eng.SignificanceTest(x, y, mustVec(t, 1, 2))
	require.ErrorIs(t, err, regression.ErrDimensionMismatch)

	_, err = eng.SignificanceTest(&matrix.Dense[float64]{}, y, mustVec(t, 1))
	require.ErrorIs(t, err, regression.ErrEmptyDesign)
}

// Column 2 is exactly 3× column 1 but the entries are not integers, so LU on
// XᵗX meets a tiny rather than an exactly-zero pivot.
func TestSignificanceTest_NonIntegerCollinear(t *testing.T) {
	t.Parallel()
	rows := make([][]float64, 8)
	yv := make([]float64, 8)
	for i := range rows {
		a := 0.1 * float64(i+1)
		rows[i] = []float64{1, a, 3 * a}
		yv[i] = 2 + a + 0.01*float64(i%3)
	}
	x := mustDense(t, rows)
	y := mustVec(t, yv...)
	eng := regression.New()

	_, err := eng.Fit(x, y)
	require.ErrorIs(t, err, regression.ErrRankDeficient)

	_, err = eng.SignificanceTest(x, y, mustVec(t, 2, 0.5, 0.5))
	require.ErrorIs(t, err, regression.ErrSingularDesign)

	_, err = eng.Summarize(x, y, mustVec(t, 2, 0.5, 0.5))
	require.ErrorIs(t, err, regression.ErrSingularDesign)
}

func TestEngine_LogsAtDebug(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	eng := regression.New(regression.WithLogger(zap.New(core)))
	x, y := trendDesign(t)

	beta, err := eng.Fit(x, y)
	require.NoError(t, err)
	_, err = eng.SignificanceTest(x, y, beta)
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("regression fit").Len())
	entries := logs.FilterMessage("significance test").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].ContextMap()["df"])
}
