// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// ---------- Constructors & Utilities ----------

// ColumnVector returns an n×1 Dense holding xs (copied).
// Handy for regression targets and MatVec-style products through Mul.
// Complexity: O(n).
func ColumnVector(xs []float64) *Dense {
	buf := make([]float64, len(xs))
	copy(buf, xs)
	if len(xs) == 0 {
		return &Dense{}
	}

	return &Dense{r: len(xs), c: 1, data: buf}
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.Rows())
}

// ---------- Aliases (discoverability) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ---------- Content predicates over any representation ----------

// Square reports IsSquare on m's dense view (false for nil).
func Square(m Matrix) bool { return !isNil(m) && IsSquare(m.DenseView()) }

// Symmetric reports IsSymmetric on m's dense view (false for nil).
func Symmetric(m Matrix) bool { return !isNil(m) && IsSymmetric(m.DenseView()) }

// IsIdentityMatrix reports IsIdentity on m's dense view (false for nil).
func IsIdentityMatrix(m Matrix) bool { return !isNil(m) && IsIdentity(m.DenseView()) }
