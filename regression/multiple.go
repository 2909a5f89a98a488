// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"

	"github.com/katalvlaran/matriks/matrix"
	"github.com/katalvlaran/matriks/matrix/ops"
)

// Multiple is a fitted multiple-linear-regression model.
// With an intercept, Beta[0] is the bias and Beta[1:] the feature weights.
type Multiple struct {
	Beta      []float64
	Strategy  Strategy
	Intercept bool
}

// MultipleLinear fits Y ≈ X·β by least squares.
// Implementation:
//   - Stage 1 (Validate): X, Y non-nil; at least one observation (ErrEmptyInput);
//     X.Rows == Y.Rows and Y is a single column (ErrShapeMismatch).
//   - Stage 2 (Design): prepend a column of ones unless WithNoIntercept.
//   - Stage 3 (Solve): PseudoInverse → β = pinv(D)·Y;
//     NormalEquation → β = (DᵀD)⁻¹DᵀY via Transpose, Mul and ops.Inverse.
//
// Errors:
//   - ErrShapeMismatch, ErrEmptyInput.
//   - NormalEquation only: ErrCapacity (also matches matrix.ErrUnsupportedSize) when
//     the coefficient count is not 2 or 3, matrix.ErrSingular when DᵀD is singular.
//
// Complexity: O(n·p²) for the products plus the SVD for PseudoInverse.
func MultipleLinear(X, Y matrix.Matrix, opts ...Option) (*Multiple, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: X: %w", opMultiple, err)
	}
	if err := matrix.ValidateNotNil(Y); err != nil {
		return nil, fmt.Errorf("%s: Y: %w", opMultiple, err)
	}
	if X.Rows() == 0 && Y.Rows() == 0 {
		return nil, fmt.Errorf("%s: %w", opMultiple, ErrEmptyInput)
	}
	if X.Rows() != Y.Rows() || Y.Cols() != 1 {
		return nil, fmt.Errorf("%s: X is %dx%d, Y is %dx%d: %w",
			opMultiple, X.Rows(), X.Cols(), Y.Rows(), Y.Cols(), matrix.ErrShapeMismatch)
	}

	D, err := design(X, o.intercept)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiple, err)
	}

	var beta *matrix.Dense
	switch o.strategy {
	case NormalEquation:
		beta, err = solveNormal(D, Y)
	default:
		beta, err = solvePinv(D, Y)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opMultiple, o.strategy, err)
	}

	coef, err := beta.Col(0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiple, err)
	}

	return &Multiple{Beta: coef, Strategy: o.strategy, Intercept: o.intercept}, nil
}

// MultipleLinearVec is MultipleLinear with the targets given as a plain slice.
func MultipleLinearVec(X matrix.Matrix, ys []float64, opts ...Option) (*Multiple, error) {
	return MultipleLinear(X, matrix.ColumnVector(ys), opts...)
}

// design returns [1 | X] when intercept is set, otherwise a dense copy of X.
func design(X matrix.Matrix, intercept bool) (*matrix.Dense, error) {
	g := X.DenseView()
	if !intercept {
		return matrix.NewDense(g)
	}
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = append([]float64{1}, row...)
	}

	return matrix.NewDense(out)
}

// solveNormal computes (DᵀD)⁻¹DᵀY.
func solveNormal(D *matrix.Dense, Y matrix.Matrix) (*matrix.Dense, error) {
	if k := D.Cols(); k != 2 && k != 3 {
		return nil, fmt.Errorf("%d coefficients: %w: %w", k, ErrCapacity, matrix.ErrUnsupportedSize)
	}
	Dt, err := matrix.Transpose(D)
	if err != nil {
		return nil, err
	}
	DtD, err := matrix.Mul(Dt, D)
	if err != nil {
		return nil, err
	}
	inv, err := ops.Inverse(DtD)
	if err != nil {
		return nil, err
	}
	DtY, err := matrix.Mul(Dt, Y)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(inv, DtY)
}

// solvePinv computes pinv(D)·Y.
func solvePinv(D *matrix.Dense, Y matrix.Matrix) (*matrix.Dense, error) {
	P, err := ops.PseudoInverse(D)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(P, Y)
}

// Predict returns the fitted values for the feature rows of X.
// X must have len(Beta)-1 columns with an intercept, len(Beta) without.
func (m *Multiple) Predict(X matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("Multiple.Predict: %w", err)
	}
	D, err := design(X, m.Intercept)
	if err != nil {
		return nil, fmt.Errorf("Multiple.Predict: %w", err)
	}
	if X.Rows() == 0 {
		return []float64{}, nil
	}

	return matrix.MatVec(D, m.Beta)
}
