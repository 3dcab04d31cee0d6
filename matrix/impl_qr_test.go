// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvreg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tallFixture is a 5×3 full-rank design used across QR and regression tests.
var tallFixture = [][]float64{
	{12, -51, 4},
	{6, 167, -68},
	{-4, 24, -41},
	{15, 90, -4},
	{-44, 11, 13},
}

func TestQR_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.QR[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// More columns than rows.
	_, err = matrix.QR(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Zero column.
	_, err = matrix.QR(MustFrom(t, [][]float64{{1, 0}, {2, 0}, {3, 0}}))
	require.ErrorIs(t, err, matrix.ErrRankDeficient)

	// Column 2 = column 0 + column 1.
	_, err = matrix.QR(MustFrom(t, [][]float64{{1, 2, 3}, {0, 1, 1}, {4, -1, 3}, {2, 2, 4}}))
	require.ErrorIs(t, err, matrix.ErrRankDeficient)
	assert.Contains(t, err.Error(), "column 2")
}

// Classic 3×3 example; Gram–Schmidt yields a positive diagonal in R.
func TestQR_Classic3x3_Known(t *testing.T) {
	t.Parallel()

	A := MustFrom(t, tallFixture[:3])
	f, err := matrix.QR(A)
	require.NoError(t, err)

	wantR := MustFrom(t, [][]float64{{14, 21, -14}, {0, 175, -70}, {0, 0, 35}})
	CompareClose(t, f.R, wantR, 0, 1e-10)

	wantQ := MustFrom(t, [][]float64{
		{6.0 / 7, -69.0 / 175, -58.0 / 175},
		{3.0 / 7, 158.0 / 175, 6.0 / 175},
		{-2.0 / 7, 6.0 / 35, -33.0 / 35},
	})
	CompareClose(t, f.Q, wantQ, 0, 1e-12)
}

func TestQR_Properties_Tall5x3(t *testing.T) {
	t.Parallel()

	A := MustFrom(t, tallFixture)
	f, err := matrix.QR(A)
	require.NoError(t, err)

	require.Equal(t, 5, f.Q.Rows())
	require.Equal(t, 3, f.Q.Cols())
	require.Equal(t, 3, f.R.Rows())
	propOrthonormal(t, f.Q, 1e-9)
	propUpperTriangular(t, f.R, 0)
	propReconstructionQR(t, A, f.Q, f.R, 1e-9)
}

func TestQR_Properties_Random8x5(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 8, 5)
	RandomFill(t, A, 99)
	f, err := matrix.QR(A)
	require.NoError(t, err)
	propOrthonormal(t, f.Q, 1e-9)
	propReconstructionQR(t, A, f.Q, f.R, 1e-9)
}

func TestQR_IntegerInput_NoMutation(t *testing.T) {
	t.Parallel()

	A, err := matrix.NewDenseFrom([][]int{{1, 1}, {1, 2}, {1, 3}})
	require.NoError(t, err)
	f, err := matrix.QR(A)
	require.NoError(t, err)
	propReconstructionQR(t, matrix.AsFloat64(A), f.Q, f.R, 1e-12)
	assert.Equal(t, 3, MustAt(t, A, 2, 1))
}

func TestQR_RankTolerance(t *testing.T) {
	t.Parallel()

	// Second column's residual is 0.1 against a norm of ~1.005.
	A := MustFrom(t, [][]float64{{1, 1}, {0, 0.1}})

	_, err := matrix.QR(A)
	require.NoError(t, err)

	_, err = matrix.QR(A, matrix.WithRankTolerance(0.5))
	require.ErrorIs(t, err, matrix.ErrRankDeficient)
}

func TestSolveUpper(t *testing.T) {
	t.Parallel()

	R := MustFrom(t, [][]float64{{2, 1, -1}, {0, 3, 2}, {0, 0, 4}})
	x, err := matrix.SolveUpper(R, MustVec(t, 1, 8, 8))
	require.NoError(t, err)
	// x3 = 2, x2 = (8-4)/3, x1 = (1 - 4/3 + 2)/2
	assert.InDeltaSlice(t, []float64{5.0 / 6, 4.0 / 3, 2}, x.Values(), 1e-15)

	_, err = matrix.SolveUpper(MustFrom(t, [][]float64{{1, 1}, {0, 0}}), MustVec(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.SolveUpper(R, MustVec(t, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
