// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matriks/matrix"
	"gonum.org/v1/gonum/mat"
)

// ErrFactorization is returned when the SVD backing PseudoInverse does not converge.
var ErrFactorization = errors.New("ops: SVD factorization failed")

// PinvRcond is the relative singular-value cutoff factor; singular values
// σ ≤ PinvRcond·max(r,c)·σmax are treated as zero.
const PinvRcond = 1e-15

// PseudoInverse returns the Moore–Penrose pseudo-inverse m⁺ (shape c×r).
// It has no dimension limit and is defined for singular and non-square input.
// Blueprint:
//
//	Stage 1 (Validate): m non-nil; a zero-area input yields a zero-area c×r result.
//	Stage 2 (Factorize): thin SVD m = U·Σ·Vᵀ via gonum.
//	Stage 3 (Execute): m⁺ = V·Σ⁺·Uᵀ, inverting only σ above the rank cutoff.
//
// Errors: ErrNilMatrix, ErrFactorization.
// Complexity: O(min(r,c)·r·c) for the SVD.
func PseudoInverse(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opPinv, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return matrix.NewZeros(c, r)
	}

	a := toGonum(m)
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%s: %w", opPinv, ErrFactorization)
	}
	sigma := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u) // r×k
	svd.VTo(&v) // c×k

	cutoff := PinvRcond * float64(max(r, c)) * sigma[0]
	inv := make([]float64, len(sigma))
	for l, s := range sigma {
		if s > cutoff {
			inv[l] = 1 / s
		}
	}

	// V·Σ⁺ scales column l of V by inv[l]; then (V·Σ⁺)·Uᵀ is c×r.
	v.Apply(func(_, l int, x float64) float64 { return x * inv[l] }, &v)
	var p mat.Dense
	p.Mul(&v, u.T())

	out := make([][]float64, c)
	for i := range out {
		out[i] = mat.Row(nil, i, &p)
		for j, x := range out[i] {
			if x == 0 {
				out[i][j] = 0 // normalize -0
			}
		}
	}

	return matrix.NewDense(out)
}

// toGonum copies any Matrix into a gonum *mat.Dense (r, c > 0).
func toGonum(m matrix.Matrix) *mat.Dense {
	r, c := m.Rows(), m.Cols()
	flat := make([]float64, 0, r*c)
	for _, row := range m.DenseView() {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}
