// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matriks/matrix"
)

// TestNewDenseRagged ensures NewDense rejects rows of unequal length.
func TestNewDenseRagged(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // alias
}

// TestNewDenseEmpty checks that an empty grid is a legal 0×0 matrix.
func TestNewDenseEmpty(t *testing.T) {
	t.Parallel()
	for _, g := range [][][]float64{nil, {}} {
		m, err := matrix.NewDense(g)
		require.NoError(t, err)
		require.Equal(t, 0, m.Rows())
		require.Equal(t, 0, m.Cols())
		require.Empty(t, m.DenseView())
	}
}

// TestNewDenseCopiesInput verifies the matrix does not alias the caller's grid.
func TestNewDenseCopiesInput(t *testing.T) {
	t.Parallel()
	g := [][]float64{{1, 2}, {3, 4}}
	m := mustDense(t, g)
	g[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	view := m.DenseView()
	view[1][1] = -1
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestDenseAtOutOfRange ensures At returns ErrOutOfRange on invalid access.
func TestDenseAtOutOfRange(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(c[0], c[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", c[0], c[1])
	}
}

// TestFromGrid promotes integer grids.
func TestFromGrid(t *testing.T) {
	t.Parallel()
	m, err := matrix.FromGrid([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.DenseView())

	_, err = matrix.FromGrid([][]int32{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestFromAny covers typed, untyped and decoded-JSON input as well as rejects.
func TestFromAny(t *testing.T) {
	t.Parallel()
	var decoded any
	dec := json.NewDecoder(strings.NewReader(`[[1, 2.5], [3, 4]]`))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&decoded))

	tests := []struct {
		name string
		in   any
		want [][]float64
		err  error
	}{
		{"float grid", [][]float64{{1, 2}}, [][]float64{{1, 2}}, nil},
		{"int grid", [][]int{{1}, {2}}, [][]float64{{1}, {2}}, nil},
		{"any grid", [][]any{{1, 2.0}, {int64(3), float32(4)}}, [][]float64{{1, 2}, {3, 4}}, nil},
		{"json", decoded, [][]float64{{1, 2.5}, {3, 4}}, nil},
		{"scalar", 42, nil, matrix.ErrTypeMismatch},
		{"string cell", []any{[]any{1, "x"}}, nil, matrix.ErrTypeMismatch},
		{"flat row", []any{1, 2}, nil, matrix.ErrTypeMismatch},
		{"ragged", []any{[]any{1, 2}, []any{3}}, nil, matrix.ErrShapeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromAny(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, m.DenseView())
		})
	}
}

// TestNewZerosAndIdentity checks shapes, the 0-row rule and negative dimensions.
func TestNewZerosAndIdentity(t *testing.T) {
	t.Parallel()
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.DenseView())

	z, err = matrix.NewZeros(0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, z.Cols())

	_, err = matrix.NewZeros(-1, 2)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	I, err := matrix.Identity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I.DenseView())
}

// TestRowColInduced exercises the copy-out accessors.
func TestRowColInduced(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	r, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, r)

	c, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, c)

	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	sub, err := m.Induced([]int{1, 0}, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 4}, {3, 1}}, sub.DenseView())

	_, err = m.Induced([]int{2}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDenseDoEarlyStop verifies row-major order and early termination.
func TestDenseDoEarlyStop(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestDenseString pins the debug rendering.
func TestDenseString(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

// TestShapeInvariant: the dense view always has Rows rows of Cols cells.
func TestShapeInvariant(t *testing.T) {
	t.Parallel()
	grids := [][][]float64{
		{{1}},
		{{1, 2, 3}},
		{{1}, {2}, {3}},
		randomGrid(4, 7, 1, 3),
	}
	for _, g := range grids {
		for _, m := range []matrix.Matrix{mustDense(t, g), mustSparse(t, g)} {
			view := m.DenseView()
			require.Len(t, view, m.Rows())
			for _, row := range view {
				require.Len(t, row, m.Cols())
			}
		}
	}
}
