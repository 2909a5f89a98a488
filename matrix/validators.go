// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Offer the three pure content predicates (IsSquare, IsSymmetric, IsIdentity).
//
// Determinism & Performance:
//  - All checks are pure, deterministic and never mutate their argument.
//  - Predicates run O(n²); Validate* run O(1).
//
// Note:
//  - Validate* return wrapped sentinels so call sites can wrap uniformly.
//  - Is* report false for ragged or empty input instead of failing.
//  - Is* compare with exact equality (no floating-point tolerance), so a matrix
//    that differs by rounding noise is reported as not symmetric / not identity.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is a nil interface or wraps a nil concrete pointer.
func isNil(m Matrix) bool {
	switch t := m.(type) {
	case nil:
		return true
	case *Dense:
		return t == nil
	case *Sparse:
		return t == nil
	default:
		return false
	}
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense / *Sparse).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d != %d", a.Rows(), b.Rows()), ErrShapeMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: cols %d != %d", a.Cols(), b.Cols()), ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrShapeMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrShapeMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d × %dx%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrShapeMismatch)
	}

	return nil
}

// IsSquare reports whether grid is non-empty and every row's length equals
// the number of rows. Ragged or empty input yields false.
// Complexity: O(n).
func IsSquare(grid [][]float64) bool {
	n := len(grid)
	if n == 0 {
		return false
	}
	for _, row := range grid {
		if len(row) != n {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether grid is square and grid[i][j] == grid[j][i]
// for all i ≤ j (exact equality).
// Complexity: O(n²) on the upper triangle only.
func IsSymmetric(grid [][]float64) bool {
	if !IsSquare(grid) {
		return false
	}
	n := len(grid)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if grid[i][j] != grid[j][i] {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether grid is square with ones on the diagonal and
// zeros elsewhere (exact equality).
// Complexity: O(n²).
func IsIdentity(grid [][]float64) bool {
	if !IsSquare(grid) {
		return false
	}
	for i, row := range grid {
		for j, v := range row {
			if i == j {
				if v != 1 {
					return false
				}
			} else if v != 0 {
				return false
			}
		}
	}

	return true
}
