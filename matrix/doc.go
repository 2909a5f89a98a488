// Package matrix offers the numeric matrix abstraction of matriks.
//
// The matrix package provides:
//
//   - Matrix, the read contract (Rows, Cols, At, DenseView) shared by every
//     representation.
//   - Dense, a row-major grid storing every cell.
//   - Sparse, a coordinate map storing only non-zero cells, with a dense form
//     materialized once on first read.
//   - Validators: ValidateX helpers returning sentinels, and the pure
//     predicates IsSquare, IsSymmetric and IsIdentity.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec. They accept any
//     Matrix and always return a fresh *Dense.
//
// Every matrix is immutable after construction, so concurrent read-only use
// needs no locking. Determinant, Inverse and PseudoInverse live in matrix/ops.
package matrix
