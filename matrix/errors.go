// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and matrix/ops. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with an operation tag (matrixErrorf) at the detection site; callers still
// use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> construction (type/shape) -> operand shape -> size capability -> singular.

var (
	// ErrTypeMismatch is returned when constructor input is not a grid of numbers
	// (e.g. FromAny given a string, or a row that is not a list).
	ErrTypeMismatch = errors.New("matrix: input is not a grid of numbers")

	// ErrShapeMismatch indicates ragged construction input or incompatible
	// operand dimensions (Add/Sub different shapes, Mul where a.Cols != b.Rows,
	// a square operand required but not given).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnsupportedSize marks the closed-form capability boundary of
	// Determinant/Inverse: only 2×2 and 3×3 are defined. It is reported
	// distinctly from ErrSingular.
	ErrUnsupportedSize = errors.New("matrix: unsupported size (only 2x2 and 3x3)")

	// ErrSingular is returned when the determinant is exactly zero at inverse time.
	// The comparison is exact; near-singular input is not detected.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf reports a NaN or ±Inf where a finite number is required
	// (e.g. an AllClose tolerance).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrDimensionMismatch is the historical name of ErrShapeMismatch.
// errors.Is(err, ErrDimensionMismatch) stays true for every shape failure.
var ErrDimensionMismatch = ErrShapeMismatch
