// SPDX-License-Identifier: MIT

// Package ops provides small-matrix closed forms and the pseudo-inverse
// for the matriks/matrix package.
// Determinant and Inverse are defined only for 2×2 and 3×3 input; any other
// size fails with matrix.ErrUnsupportedSize, which is a capability boundary
// reported distinctly from matrix.ErrSingular.
package ops

import (
	"fmt"

	"github.com/katalvlaran/matriks/matrix"
)

const (
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opPinv        = "PseudoInverse"
)

// Determinant returns det(m) for a 2×2 or 3×3 matrix.
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and square (IsSquare on the dense view).
//	Stage 2 (Capability): n must be 2 or 3, else ErrUnsupportedSize.
//	Stage 3 (Execute): ad − bc for n=2; cofactor expansion along row 0 for n=3.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrUnsupportedSize.
// Complexity: O(1) arithmetic plus an O(n²) dense view.
func Determinant(m matrix.Matrix) (float64, error) {
	g, err := squareGrid(opDeterminant, m)
	if err != nil {
		return 0, err
	}

	switch len(g) {
	case 2:
		return det2(g), nil
	case 3:
		return det3(g), nil
	default:
		return 0, fmt.Errorf("%s: %dx%d: %w", opDeterminant, len(g), len(g), matrix.ErrUnsupportedSize)
	}
}

// squareGrid validates m and returns its dense view.
// A 0×0 matrix is not square (IsSquare reports false for empty input).
func squareGrid(op string, m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	g := m.DenseView()
	if !matrix.IsSquare(g) {
		return nil, fmt.Errorf("%s: %dx%d is not square: %w", op, m.Rows(), m.Cols(), matrix.ErrShapeMismatch)
	}

	return g, nil
}

// det2 is the direct 2×2 formula ad − bc.
func det2(g [][]float64) float64 {
	return g[0][0]*g[1][1] - g[0][1]*g[1][0]
}

// det3 expands along the first row.
func det3(g [][]float64) float64 {
	return g[0][0]*(g[1][1]*g[2][2]-g[1][2]*g[2][1]) -
		g[0][1]*(g[1][0]*g[2][2]-g[1][2]*g[2][0]) +
		g[0][2]*(g[1][0]*g[2][1]-g[1][1]*g[2][0])
}

// minor returns g with row i and column j removed.
func minor(g [][]float64, i, j int) [][]float64 {
	out := make([][]float64, 0, len(g)-1)
	for r, row := range g {
		if r == i {
			continue
		}
		mr := make([]float64, 0, len(row)-1)
		for c, v := range row {
			if c != j {
				mr = append(mr, v)
			}
		}
		out = append(out, mr)
	}

	return out
}
