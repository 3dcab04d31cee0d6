// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvreg/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense[float64] {
		m, err := matrix.NewDense[float64](r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"zero value", &matrix.Dense[float64]{}, dense(2, 2), matrix.ErrInvalidDimensions},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquareAndTall covers the square and tall shape guards.
func TestValidateSquareAndTall(t *testing.T) {
	t.Parallel()

	sq := MustDense(t, 3, 3)
	wide := MustDense(t, 2, 3)
	tall := MustDense(t, 3, 2)

	require.NoError(t, matrix.ValidateSquareNonNil(sq))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(wide), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil[float64](nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateTall(sq))
	require.NoError(t, matrix.ValidateTall(tall))
	require.ErrorIs(t, matrix.ValidateTall(wide), matrix.ErrDimensionMismatch)
}

func TestValidateMulCompatibleAndVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen[float64](nil, 0), matrix.ErrNilMatrix)
}
