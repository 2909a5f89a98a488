// SPDX-License-Identifier: MIT

package regression_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matriks/matrix"
	"github.com/katalvlaran/matriks/regression"
)

func TestSimpleLinearExactFit(t *testing.T) {
	t.Parallel()
	m, err := regression.SimpleLinear([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	require.InDelta(t, 0, m.Intercept, 1e-12)
	require.InDelta(t, 2, m.Slope, 1e-12)
}

func TestSimpleLinear(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		xs, ys         []float64
		intercept, slp float64
	}{
		{"offset line", []float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 1, 2},
		{"negative slope", []float64{1, 2, 3}, []float64{3, 2, 1}, 4, -1},
		{"noisy", []float64{1, 2, 3, 4}, []float64{1, 3, 2, 4}, 0.5, 0.8},
		{"single point", []float64{5}, []float64{7}, 7, 0},
		{"constant x", []float64{2, 2, 2}, []float64{1, 2, 6}, 3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := regression.SimpleLinear(tc.xs, tc.ys)
			require.NoError(t, err)
			require.InDelta(t, tc.intercept, m.Intercept, 1e-12)
			require.InDelta(t, tc.slp, m.Slope, 1e-12)
		})
	}
}

func TestSimpleLinearErrors(t *testing.T) {
	t.Parallel()
	_, err := regression.SimpleLinear([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = regression.SimpleLinear(nil, nil)
	require.ErrorIs(t, err, regression.ErrEmptyInput)
}

func TestPredict(t *testing.T) {
	t.Parallel()
	require.Equal(t, []float64{8}, slices.Collect(regression.Predict([]float64{4}, 0, 2)))

	xs := []float64{0, 1, 2}
	seq := regression.Predict(xs, 1, 3)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Equal(t, []float64{1, 4, 7}, first)
	require.Equal(t, first, second, "sequence must be restartable")

	var n int
	for range seq {
		n++
		break
	}
	require.Equal(t, 1, n)

	require.Empty(t, slices.Collect(regression.Predict(nil, 1, 1)))
}

func TestSimpleModelPredict(t *testing.T) {
	t.Parallel()
	m := regression.Simple{Intercept: -1, Slope: 0.5}
	require.Equal(t, []float64{-1, 0, 1}, slices.Collect(m.Predict([]float64{0, 2, 4})))
	require.Equal(t, "y = -1 + 0.5·x", m.String())
}
