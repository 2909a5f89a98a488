// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep the value immutable after construction: writes go through the private set
//     and only kernels that own a freshly allocated result call it.
//   - Support copy-based submatrix extraction (Induced).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Use Induced(rows, cols) to materialize a submatrix (copy) for independent lifetime/shape.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At: O(1); DenseView: O(r*c); Induced: O(r'*c').

package matrix

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxNew    = "New"     // ctor tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0; r==0 implies c==0 for grid input)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense builds a Dense from a rectangular grid.
// Implementation:
//   - Stage 1: read cols from the first row (0 when the grid is empty).
//   - Stage 2: verify every row has exactly cols elements; else ErrShapeMismatch.
//   - Stage 3: copy rows into a single flat buffer.
//
// Behavior highlights:
//   - The grid is copied; later mutation of the argument never affects the matrix.
//   - An empty (or nil) grid yields a legal 0×0 matrix.
//
// Errors:
//   - ErrShapeMismatch when rows have unequal lengths (reported with the row index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(grid [][]float64) (*Dense, error) {
	rows := len(grid)
	if rows == 0 {
		return &Dense{}, nil
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("Dense.%s: row %d has %d elements, want %d: %w",
				ctxNew, i, len(row), cols, ErrShapeMismatch)
		}
	}

	buf := make([]float64, 0, rows*cols)
	for _, row := range grid {
		buf = append(buf, row...)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromGrid is the generic form of NewDense: integer grids are promoted to float64.
// Complexity: O(r*c).
func FromGrid[T Number](grid [][]T) (*Dense, error) {
	conv := make([][]float64, len(grid))
	for i, row := range grid {
		conv[i] = make([]float64, len(row))
		for j, v := range row {
			conv[i][j] = float64(v)
		}
	}

	return NewDense(conv)
}

// FromAny builds a Dense from loosely typed input, typically the result of
// decoding a JSON array of arrays into an interface value.
//
// Accepted shapes: [][]float64, [][]int, [][]any and []any whose rows are []any.
// Elements may be any Go integer/float kind or json.Number.
//
// Errors:
//   - ErrTypeMismatch when v (or one of its rows/elements) is not numeric grid material.
//   - ErrShapeMismatch when rows have unequal lengths.
func FromAny(v any) (*Dense, error) {
	switch g := v.(type) {
	case *Dense:
		return g.clone(), nil
	case [][]float64:
		return NewDense(g)
	case [][]int:
		return FromGrid(g)
	case [][]any:
		rows := make([]any, len(g))
		for i := range g {
			rows[i] = g[i]
		}
		return fromAnyRows(rows)
	case []any:
		return fromAnyRows(g)
	default:
		return nil, fmt.Errorf("Dense.%s: %T: %w", ctxNew, v, ErrTypeMismatch)
	}
}

// fromAnyRows converts a slice of untyped rows cell by cell.
func fromAnyRows(rows []any) (*Dense, error) {
	grid := make([][]float64, len(rows))
	for i, raw := range rows {
		row, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("Dense.%s: row %d is %T: %w", ctxNew, i, raw, ErrTypeMismatch)
		}
		grid[i] = make([]float64, len(row))
		for j, cell := range row {
			f, err := toFloat(cell)
			if err != nil {
				return nil, denseErrorf(ctxNew, i, j, err)
			}
			grid[i][j] = f
		}
	}

	return NewDense(grid)
}

// toFloat promotes a scalar of any numeric kind to float64.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%q: %w", n.String(), ErrTypeMismatch)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%T: %w", v, ErrTypeMismatch)
	}
}

// NewZeros returns a zero-initialized rows×cols Dense.
// Zero-sized shapes are legal (rows == 0 forces cols to 0); negative
// dimensions fail with ErrShapeMismatch.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxNew, rows, cols, ErrShapeMismatch)
	}
	if rows == 0 {
		cols = 0
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	I, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// set writes v at (row, col). Only kernels that own a freshly allocated result
// call it, which keeps every Dense immutable from the outside.
func (m *Dense) set(row, col int, v float64) {
	m.data[row*m.c+col] = v
}

// DenseView returns a freshly allocated copy of the grid.
// Complexity: O(r*c).
func (m *Dense) DenseView() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Row returns a copy of row i, or ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j, or ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.Col(%d): %w", j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// clone returns a deep copy; used where a *Dense must not share storage.
func (m *Dense) clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Induced returns a new Dense consisting of the selected rows and columns (copy).
// Implementation:
//   - Stage 1: zero-area selection yields a legal 0-area Dense.
//   - Stage 2: validate every index, then copy with direct offset math.
//
// Errors:
//   - ErrOutOfRange for any index outside the base shape.
//
// Complexity:
//   - Time O(len(rowsIdx)*len(colsIdx)).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	if rp == 0 || cp == 0 {
		return NewZeros(rp, cp)
	}

	res := &Dense{r: rp, c: cp, data: make([]float64, rp*cp)}
	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Iteration stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for easy debugging: one "[a, b, c]" line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
