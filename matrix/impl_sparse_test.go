// SPDX-License-Identifier: MIT

package matrix_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matriks/matrix"
)

// TestSparseDenseEquivalence: Sparse(G) and Dense(G) expose the same grid.
func TestSparseDenseEquivalence(t *testing.T) {
	t.Parallel()
	grids := [][][]float64{
		{{0, 0}, {0, 0}},
		{{1, 0, 0}, {0, 0, 2}},
		{{0}, {0}, {5}},
		randomGrid(6, 5, 7, 2),
	}
	for _, g := range grids {
		s := mustSparse(t, g)
		d := mustDense(t, g)
		require.Equal(t, d.DenseView(), s.DenseView())
		require.Equal(t, d.Rows(), s.Rows())
		require.Equal(t, d.Cols(), s.Cols())
	}
}

// TestNewSparseDropsZeros checks that only non-zero cells are stored.
func TestNewSparseDropsZeros(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, [][]float64{{0, 3}, {0, 0}, {4, 0}})
	require.Equal(t, 2, s.NNZ())
	require.Equal(t, map[matrix.Coord]float64{{Row: 0, Col: 1}: 3, {Row: 2, Col: 0}: 4}, s.Entries())

	_, err := matrix.NewSparse([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestNewSparseFromMap covers shape inference, explicit shapes and rejects.
func TestNewSparseFromMap(t *testing.T) {
	t.Parallel()
	entries := map[matrix.Coord]float64{
		{Row: 0, Col: 0}: 1,
		{Row: 1, Col: 2}: 0, // pins the shape, not stored
	}
	s, err := matrix.NewSparseFromMap(entries)
	require.NoError(t, err)
	require.Equal(t, 2, s.Rows())
	require.Equal(t, 3, s.Cols())
	require.Equal(t, 1, s.NNZ())

	s, err = matrix.NewSparseFromMap(map[matrix.Coord]float64{{Row: 0, Col: 0}: 7}, matrix.WithShape(3, 4))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, s.DenseView())

	_, err = matrix.NewSparseFromMap(map[matrix.Coord]float64{{Row: 3, Col: 0}: 1}, matrix.WithShape(3, 4))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewSparseFromMap(map[matrix.Coord]float64{{Row: -1, Col: 0}: 1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	s, err = matrix.NewSparseFromMap(nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Rows())
	require.Equal(t, 0, s.Cols())

	require.Panics(t, func() { matrix.WithShape(-1, 2) })
}

// TestSparseAt reads stored, implicit and out-of-range cells.
func TestSparseAt(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, [][]float64{{0, 2}, {3, 0}})

	v, err := s.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = s.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = s.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSparseEntriesIsCopy ensures callers cannot mutate the stored map.
func TestSparseEntriesIsCopy(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, [][]float64{{1, 0}, {0, 1}})
	e := s.Entries()
	e[matrix.Coord{Row: 0, Col: 1}] = 9
	require.Equal(t, 2, s.NNZ())

	v, err := s.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestSparseNonZeroOrder verifies deterministic row-major iteration.
func TestSparseNonZeroOrder(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, [][]float64{{0, 1, 2}, {3, 0, 0}, {0, 0, 4}})
	var got []float64
	s.NonZero(func(_ matrix.Coord, v float64) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []float64{1, 2, 3, 4}, got)
}

// TestSparseConcurrentViews builds the cache from many goroutines at once.
func TestSparseConcurrentViews(t *testing.T) {
	t.Parallel()
	g := randomGrid(20, 20, 3, 2)
	s := mustSparse(t, g)

	var wg sync.WaitGroup
	views := make([][][]float64, 8)
	for k := range views {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			views[k] = s.DenseView()
		}(k)
	}
	wg.Wait()

	for _, v := range views {
		require.Equal(t, g, v)
	}
}

// TestSparseString pins the header line.
func TestSparseString(t *testing.T) {
	t.Parallel()
	s := mustSparse(t, [][]float64{{0, 1}})
	require.Equal(t, "Sparse(rows=1, cols=2, nnz=1)\n[0, 1]\n", s.String())
}
