// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matriks/matrix"
)

func TestAllClose(t *testing.T) {
	t.Parallel()
	a := [][]float64{{1, 2}, {0, 4}}
	near := [][]float64{{1 + 1e-12, 2}, {0, 4 - 1e-12}}
	far := [][]float64{{1, 2}, {0, 4.1}}

	for na, A := range operands(t, a) {
		for nb, B := range operands(t, near) {
			ok, err := matrix.AllClose(A, B, 0, 1e-9)
			require.NoError(t, err, "%s/%s", na, nb)
			require.True(t, ok, "%s/%s", na, nb)
		}
		for nb, B := range operands(t, far) {
			ok, err := matrix.AllClose(A, B, 0, 1e-9)
			require.NoError(t, err, "%s/%s", na, nb)
			require.False(t, ok, "%s/%s", na, nb)

			// 0.1 ≤ 0.05·4.1 once the relative term is allowed.
			ok, err = matrix.AllClose(A, B, -0.05, 0)
			require.NoError(t, err)
			require.True(t, ok, "%s/%s", na, nb)
		}
	}
}

func TestAllCloseErrors(t *testing.T) {
	t.Parallel()
	A := mustDense(t, [][]float64{{1}})
	B := mustDense(t, [][]float64{{1, 2}})

	_, err := matrix.AllClose(A, B, 0, 1e-9)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.AllClose(nil, A, 0, 1e-9)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllClose(A, A, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(A, A, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
