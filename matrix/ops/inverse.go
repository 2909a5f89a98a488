// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/matriks/matrix"
)

// ZeroDet is the exact value that marks a matrix as singular.
// No epsilon is applied: near-singular input passes and may amplify rounding error.
const ZeroDet = 0.0

// Inverse returns m⁻¹ for a 2×2 or 3×3 matrix.
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and square; n ∈ {2,3} else ErrUnsupportedSize.
//	Stage 2 (Determinant): det == 0 exactly → ErrSingular.
//	Stage 3 (Execute): n=2 closed-form adjugate; n=3 cofactor matrix, transposed
//	                   through matrix.Transpose into the adjugate.
//	Stage 4 (Finalize): divide every adjugate entry by det.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrUnsupportedSize, ErrSingular.
// Complexity: O(1) arithmetic for the supported sizes.
func Inverse(m matrix.Matrix) (*matrix.Dense, error) {
	g, err := squareGrid(opInverse, m)
	if err != nil {
		return nil, err
	}
	n := len(g)
	if n != 2 && n != 3 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opInverse, n, n, matrix.ErrUnsupportedSize)
	}

	det, err := Determinant(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	if det == ZeroDet {
		return nil, fmt.Errorf("%s: %w", opInverse, matrix.ErrSingular)
	}

	var adj [][]float64
	if n == 2 {
		a, b := g[0][0], g[0][1]
		c, d := g[1][0], g[1][1]
		adj = [][]float64{{d, -b}, {-c, a}}
	} else {
		adj, err = adjugate3(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opInverse, err)
		}
	}

	for i := range adj {
		for j := range adj[i] {
			adj[i][j] /= det
		}
	}
	inv, err := matrix.NewDense(adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}

	return inv, nil
}

// adjugate3 builds the signed cofactor matrix of a 3×3 grid and transposes it.
// Each cofactor is (-1)^(i+j) · det of the 2×2 minor without row i, column j.
func adjugate3(g [][]float64) ([][]float64, error) {
	cof := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		cof[i] = make([]float64, 3)
		for j := 0; j < 3; j++ {
			sign := 1.0
			if (i+j)%2 == 1 {
				sign = -1.0
			}
			cof[i][j] = sign * det2(minor(g, i, j))
		}
	}

	c, err := matrix.NewDense(cof)
	if err != nil {
		return nil, err
	}
	adj, err := matrix.Transpose(c)
	if err != nil {
		return nil, err
	}

	return adj.DenseView(), nil
}
