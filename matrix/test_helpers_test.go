// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep all data finite so exact comparisons stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/matriks/matrix"
)

// tol is the absolute tolerance for floating-point grid comparisons.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type switches,
// forcing kernels onto the At-based fallback path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from grid or fails the test.
func mustDense(tb testing.TB, grid [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(grid)
	if err != nil {
		tb.Fatalf("NewDense(%v): %v", grid, err)
	}

	return m
}

// mustSparse builds a *Sparse from grid or fails the test.
func mustSparse(tb testing.TB, grid [][]float64) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.NewSparse(grid)
	if err != nil {
		tb.Fatalf("NewSparse(%v): %v", grid, err)
	}

	return m
}

// randomGrid returns an r×c grid of U(-1,1) values; zeroEvery > 0 zeroes
// every zeroEvery-th cell to give the sparse path something to skip.
func randomGrid(r, c int, seed int64, zeroEvery int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	g := make([][]float64, r)
	for i := range g {
		g[i] = make([]float64, c)
		for j := range g[i] {
			if zeroEvery > 0 && (i*c+j)%zeroEvery == 0 {
				continue
			}
			g[i][j] = rng.Float64()*2 - 1
		}
	}

	return g
}

// approxGrid is the go-cmp option comparing grids within tol.
var approxGrid = cmpopts.EquateApprox(0, tol)

// requireGrid fails when got's dense view differs from want beyond tol.
func requireGrid(tb testing.TB, want [][]float64, got matrix.Matrix) {
	tb.Helper()
	if diff := cmp.Diff(want, got.DenseView(), approxGrid, cmpopts.EquateEmpty()); diff != "" {
		tb.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}
