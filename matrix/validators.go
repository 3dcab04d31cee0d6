// SPDX-License-Identifier: MIT
// Shape and nil guards shared by every kernel in the package.
//
// Each validator returns a sentinel wrapped with its own name, so a failure
// reads like "MulVec: ValidateVecLen: matrix: dimension mismatch" and still
// matches errors.Is(err, ErrDimensionMismatch).
//
// AI-Hints:
//  - LU, Inverse and Determinant start with ValidateSquareNonNil.
//  - QR starts with ValidateTall: a thin factorization needs rows ≥ cols.
//  - Matrix·vector products check the vector with ValidateVecLen.
//  - Composite validators run the nil checks before any shape check.

package matrix

import (
	"fmt"
)

const (
	tagNotNil       = "ValidateNotNil"
	tagSameShape    = "ValidateSameShape"
	tagSquare       = "ValidateSquare"
	tagTall         = "ValidateTall"
	tagVecLen       = "ValidateVecLen"
	tagBinarySame   = "ValidateBinarySameShape"
	tagSquareNonNil = "ValidateSquareNonNil"
	tagMulCompat    = "ValidateMulCompatible"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil matrix (ErrNilMatrix) and the zero value
// Dense{} (ErrInvalidDimensions), which no constructor returns.
func ValidateNotNil[T Number](m *Dense[T]) error {
	switch {
	case m == nil:
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	case m.r == 0 || m.c == 0:
		return validatorErrorf(tagNotNil, ErrInvalidDimensions)
	}

	return nil
}

// validateBoth runs ValidateNotNil on both operands under tag.
func validateBoth[T Number](tag string, a, b *Dense[T]) error {
	for _, m := range [2]*Dense[T]{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf(tag, err)
		}
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b are r×c alike.
// Both must be non-nil.
func ValidateSameShape[T Number](a, b *Dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(tagSameShape,
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare reports ErrNonSquare when Rows != Cols. m must be non-nil.
func ValidateSquare[T Number](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf(tagSquare, ErrNonSquare)
	}

	return nil
}

// ValidateTall checks Rows ≥ Cols, the precondition of thin QR.
// Errors: ErrDimensionMismatch when the matrix has more columns than rows.
func ValidateTall[T Number](m *Dense[T]) error {
	if m.r < m.c {
		return validatorErrorf(tagTall, fmt.Errorf("rows=%d < cols=%d: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen checks that the raw vector x is non-nil (ErrNilMatrix) and
// has exactly n elements (ErrDimensionMismatch).
func ValidateVecLen[T Number](x []T, n int) error {
	if x == nil {
		return validatorErrorf(tagVecLen, ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf(tagVecLen, fmt.Errorf("len=%d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape guards element-wise binary kernels (Add, Sub, AllClose).
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func ValidateBinarySameShape[T Number](a, b *Dense[T]) error {
	if err := validateBoth(tagBinarySame, a, b); err != nil {
		return err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf(tagBinarySame, err)
	}

	return nil
}

// ValidateSquareNonNil guards LU, Inverse and Determinant.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
func ValidateSquareNonNil[T Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tagSquareNonNil, err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tagSquareNonNil, err)
	}

	return nil
}

// ValidateMulCompatible requires non-nil operands with a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := validateBoth(tagMulCompat, a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(tagMulCompat,
			fmt.Errorf("a.cols=%d, b.rows=%d: %w", a.c, b.r, ErrDimensionMismatch))
	}

	return nil
}
