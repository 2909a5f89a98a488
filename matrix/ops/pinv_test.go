// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matriks/matrix"
	"github.com/katalvlaran/matriks/matrix/ops"
)

// TestPseudoInverseMatchesInverse: for a nonsingular square matrix pinv == inv.
func TestPseudoInverseMatchesInverse(t *testing.T) {
	t.Parallel()
	A := mustDense(t, [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}})
	inv, err := ops.Inverse(A)
	require.NoError(t, err)
	pinv, err := ops.PseudoInverse(A)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(inv.DenseView(), pinv.DenseView(), approx))
}

// TestPseudoInversePenrose checks A·A⁺·A == A on singular and tall input.
func TestPseudoInversePenrose(t *testing.T) {
	t.Parallel()
	grids := [][][]float64{
		{{1, 2}, {2, 4}},
		{{1, 0}, {0, 1}, {1, 1}},
		{{1, 2, 3, 4}},
		{{0, 0}, {0, 0}},
	}
	for _, g := range grids {
		A := mustDense(t, g)
		P, err := ops.PseudoInverse(A)
		require.NoError(t, err)
		require.Equal(t, A.Cols(), P.Rows())
		require.Equal(t, A.Rows(), P.Cols())

		AP, err := matrix.Mul(A, P)
		require.NoError(t, err)
		APA, err := matrix.Mul(AP, A)
		require.NoError(t, err)
		if diff := cmp.Diff(g, APA.DenseView(), approx); diff != "" {
			t.Fatalf("A·A⁺·A != A for %v (-want +got):\n%s", g, diff)
		}
	}
}

// TestPseudoInverseKnownValues: rank-one input A = x·yᵀ has A⁺ = Aᵀ/‖A‖².
func TestPseudoInverseKnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{"singular square", [][]float64{{1, 2}, {2, 4}}, [][]float64{{0.04, 0.08}, {0.08, 0.16}}},
		{"row vector", [][]float64{{1, 2, 3, 4}}, [][]float64{{1.0 / 30}, {2.0 / 30}, {3.0 / 30}, {4.0 / 30}}},
		{"zero", [][]float64{{0, 0, 0}, {0, 0, 0}}, [][]float64{{0, 0}, {0, 0}, {0, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			P, err := ops.PseudoInverse(mustDense(t, tc.in))
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(tc.want, P.DenseView(), approx))
		})
	}
}

func TestPseudoInverseEdges(t *testing.T) {
	t.Parallel()
	P, err := ops.PseudoInverse(mustDense(t, nil))
	require.NoError(t, err)
	require.Equal(t, 0, P.Rows())

	_, err = ops.PseudoInverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
