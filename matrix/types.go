// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse representations.
// This file contains ONLY the read contract and small helper types. Errors
// live in errors.go, sparse construction options in impl_sparse.go.
package matrix

// Matrix is the read contract every representation satisfies.
// Kernels (Add, Sub, Mul, Transpose) and validators are written once against
// this interface and never against a concrete type.
//
// There is intentionally no Set: a Matrix is immutable after construction and
// every operation allocates a fresh result.
//
// Complexity notes: Rows/Cols/At are O(1) (At is an O(1) map lookup for *Sparse);
// DenseView is O(r*c).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// DenseView returns a freshly allocated Rows()×Cols() grid.
	// Callers own the returned slices; mutating them never affects the matrix.
	DenseView() [][]float64
}

// Number is the set of element types accepted by the generic constructors.
// Integers are promoted to float64 on construction.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Coord addresses one cell of a sparse matrix.
// Using ints keeps the key compact and hash-friendly.
type Coord struct {
	Row int // zero-based row index
	Col int // zero-based column index
}
