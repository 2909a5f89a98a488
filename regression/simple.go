// SPDX-License-Identifier: MIT

// Package regression fits least-squares linear models over matriks matrices.
//
// Purpose:
//   - SimpleLinear: one feature, closed-form slope/intercept.
//   - MultipleLinear: many features, either through the normal equations
//     (bounded by the 2×2/3×3 inverse of matrix/ops) or through the SVD
//     pseudo-inverse (no dimension limit, the default).
//
// Degenerate-input policy:
//   - SimpleLinear with all x identical returns slope 0 (a flat line through ȳ)
//     rather than failing.
package regression

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/matriks/matrix"
	"gonum.org/v1/gonum/stat"
)

const (
	opSimple   = "SimpleLinear"
	opMultiple = "MultipleLinear"
)

var (
	// ErrEmptyInput is returned when a fit is requested over zero observations.
	ErrEmptyInput = errors.New("regression: no observations")

	// ErrCapacity is returned by the normal-equation strategy when the number of
	// coefficients is outside what the closed-form inverse supports (2 or 3).
	// It also matches matrix.ErrUnsupportedSize.
	ErrCapacity = errors.New("regression: normal equations exceed closed-form inverse capacity")

	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
	ErrUnknownStrategy = errors.New("regression: unknown strategy")
)

// Simple is the model y = Intercept + Slope·x.
type Simple struct {
	Intercept float64
	Slope     float64
}

// SimpleLinear fits y = a + b·x by ordinary least squares.
// Implementation:
//   - Stage 1: len(xs) == len(ys) (ErrShapeMismatch) and non-empty (ErrEmptyInput).
//   - Stage 2: b = Σ(x−x̄)(y−ȳ) / Σ(x−x̄)²; b = 0 when the denominator is exactly 0.
//   - Stage 3: a = ȳ − b·x̄.
//
// Complexity: O(n).
func SimpleLinear(xs, ys []float64) (Simple, error) {
	if len(xs) != len(ys) {
		return Simple{}, fmt.Errorf("%s: len(xs)=%d len(ys)=%d: %w",
			opSimple, len(xs), len(ys), matrix.ErrShapeMismatch)
	}
	if len(xs) == 0 {
		return Simple{}, fmt.Errorf("%s: %w", opSimple, ErrEmptyInput)
	}

	mx := stat.Mean(xs, nil)
	my := stat.Mean(ys, nil)

	var num, den, dx float64
	for i := range xs {
		dx = xs[i] - mx
		num += dx * (ys[i] - my)
		den += dx * dx
	}

	var slope float64
	if den != 0 {
		slope = num / den
	}

	return Simple{Intercept: my - slope*mx, Slope: slope}, nil
}

// Predict yields a + b·x for each x in xs.
// The sequence is lazy, finite and restartable: every range over it walks xs again.
func Predict(xs []float64, a, b float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range xs {
			if !yield(a + b*x) {
				return
			}
		}
	}
}

// Predict yields the model's prediction for each x in xs.
func (s Simple) Predict(xs []float64) iter.Seq[float64] {
	return Predict(xs, s.Intercept, s.Slope)
}

// String renders the fitted line.
func (s Simple) String() string {
	return fmt.Sprintf("y = %g + %g·x", s.Intercept, s.Slope)
}
