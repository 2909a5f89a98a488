// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matriks/matrix"
	"github.com/katalvlaran/matriks/matrix/ops"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// TestInverseRoundTrip: A·A⁻¹ == I within 1e-9.
func TestInverseRoundTrip(t *testing.T) {
	t.Parallel()
	grids := [][][]float64{
		{{4, 7}, {2, 6}},
		{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}},
		{{2, 0, 0}, {0, 0.5, 0}, {0, 0, -4}},
	}
	for _, g := range grids {
		A := mustDense(t, g)
		inv, err := ops.Inverse(A)
		require.NoError(t, err)

		P, err := matrix.Mul(A, inv)
		require.NoError(t, err)
		I, err := matrix.Identity(len(g))
		require.NoError(t, err)
		if diff := cmp.Diff(I.DenseView(), P.DenseView(), approx); diff != "" {
			t.Fatalf("A·A⁻¹ != I for %v (-want +got):\n%s", g, diff)
		}
		ok, err := matrix.AllClose(P, I, 0, 1e-9)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestInverse2x2Values(t *testing.T) {
	t.Parallel()
	inv, err := ops.Inverse(mustDense(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
	require.Empty(t, cmp.Diff(want, inv.DenseView(), approx))
}

func TestInverseErrors(t *testing.T) {
	t.Parallel()
	_, err := ops.Inverse(mustDense(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotErrorIs(t, err, matrix.ErrUnsupportedSize)

	_, err = ops.Inverse(mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	I4, err := matrix.Identity(4)
	require.NoError(t, err)
	_, err = ops.Inverse(I4)
	require.ErrorIs(t, err, matrix.ErrUnsupportedSize)

	_, err = ops.Inverse(mustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
