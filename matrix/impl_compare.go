// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerance-based comparison of two matrices, complementing the exact
//     Equal used by the validators.
//
// Determinism & Performance:
//   - Flat 0..n-1 loop when both operands expose a row-major buffer,
//     i→j At loop otherwise. Early exit on the first violation.

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds for every element.
// Tolerances are taken by absolute value.
//
// Errors:
//   - ErrNaNInf when rtol or atol is not finite.
//   - ErrNilMatrix, ErrShapeMismatch (from ValidateBinarySameShape).
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	within := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	if fa, okA := flatOf(a); okA {
		if fb, okB := flatOf(b); okB {
			for idx := range fa {
				if !within(fa[idx], fb[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
