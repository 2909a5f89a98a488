// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matriks/matrix"
)

func TestGridPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                     string
		grid                     [][]float64
		square, symmetric, ident bool
	}{
		{"empty", nil, false, false, false},
		{"ragged", [][]float64{{1, 2}, {3}}, false, false, false},
		{"wide", [][]float64{{1, 0, 0}, {0, 1, 0}}, false, false, false},
		{"identity", [][]float64{{1, 0}, {0, 1}}, true, true, true},
		{"symmetric", [][]float64{{2, 7}, {7, 3}}, true, true, false},
		{"asymmetric", [][]float64{{1, 2}, {3, 4}}, true, false, false},
		{"almost symmetric", [][]float64{{1, math.Nextafter(0.3, 1)}, {0.3, 1}}, true, false, false},
		{"almost identity", [][]float64{{math.Nextafter(1, 2), 0}, {0, 1}}, true, true, false},
		{"scalar one", [][]float64{{1}}, true, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.square, matrix.IsSquare(tc.grid))
			require.Equal(t, tc.symmetric, matrix.IsSymmetric(tc.grid))
			require.Equal(t, tc.ident, matrix.IsIdentity(tc.grid))
		})
	}
}

// TestPredicatesDoNotMutate checks the argument is left untouched.
func TestPredicatesDoNotMutate(t *testing.T) {
	t.Parallel()
	g := [][]float64{{1, 2}, {2, 1}}
	matrix.IsSquare(g)
	matrix.IsSymmetric(g)
	matrix.IsIdentity(g)
	require.Equal(t, [][]float64{{1, 2}, {2, 1}}, g)
}

// TestMatrixPredicates runs the same checks through the Matrix contract.
func TestMatrixPredicates(t *testing.T) {
	t.Parallel()
	I := mustSparse(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.True(t, matrix.Square(I))
	require.True(t, matrix.Symmetric(I))
	require.True(t, matrix.IsIdentityMatrix(I))

	var nilDense *matrix.Dense
	require.False(t, matrix.Square(nilDense))
	require.False(t, matrix.IsIdentityMatrix(nil))
}

func TestValidators(t *testing.T) {
	t.Parallel()
	A := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	B := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(A))
	require.ErrorIs(t, matrix.ValidateSameShape(A, B), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(A), matrix.ErrShapeMismatch)
	require.NoError(t, matrix.ValidateSquareNonNil(B))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(A, nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateMulCompatible(B, A))
	require.ErrorIs(t, matrix.ValidateMulCompatible(A, B), matrix.ErrShapeMismatch)
}
