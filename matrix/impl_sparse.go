// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (dictionary of keys) with lazy dense materialization.
//
// Purpose:
//   - Store only non-zero cells in a map keyed by Coord; omitted cells read as 0.
//   - Satisfy the same Matrix read contract as *Dense so kernels stay representation-agnostic.
//   - Build the row-major dense form at most once (sync.Once) and reuse it for every
//     DenseView call and every kernel fast-path.
//
// Invariants:
//   - every key satisfies 0 ≤ Row < r and 0 ≤ Col < c;
//   - stored values are never 0 (zeros are dropped on construction);
//   - there is no mutation API, so the cached dense form never goes stale.
//
// Complexity quicksheet:
//   - NewSparse: O(r*c) scan; NewSparseFromMap: O(nnz); At: O(1) expected;
//     first DenseView: O(r*c + nnz), later ones O(r*c) copy.

package matrix

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
)

const ctxSparse = "Sparse"

// Sparse is a coordinate-map matrix. The zero value is a valid 0×0 matrix.
// A Sparse must not be copied after first use (it embeds a sync.Once).
type Sparse struct {
	r, c    int               // dimensions (explicit or inferred)
	entries map[Coord]float64 // non-zero cells only

	once sync.Once // guards flat
	flat []float64 // lazily built row-major materialization (len == r*c)
}

var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// SparseOption configures NewSparseFromMap.
type SparseOption func(*sparseConfig)

type sparseConfig struct {
	rows, cols int
	explicit   bool
}

const panicShapeInvalid = "matrix: WithShape: rows and cols must be non-negative"

// WithShape fixes the dimensions of a sparse matrix built from a coordinate map.
// Without it the shape is inferred as (max row + 1, max col + 1).
// Panics on negative dimensions (programmer error).
func WithShape(rows, cols int) SparseOption {
	if rows < 0 || cols < 0 {
		panic(panicShapeInvalid)
	}

	return func(c *sparseConfig) {
		c.rows, c.cols, c.explicit = rows, cols, true
	}
}

// NewSparse builds a Sparse from a dense grid, discarding zero cells.
// Errors: ErrShapeMismatch when rows have unequal lengths.
// Complexity: O(r*c).
func NewSparse(grid [][]float64) (*Sparse, error) {
	s := &Sparse{entries: make(map[Coord]float64)}
	s.r = len(grid)
	if s.r == 0 {
		return s, nil
	}
	s.c = len(grid[0])
	for i, row := range grid {
		if len(row) != s.c {
			return nil, fmt.Errorf("%s.%s: row %d has %d elements, want %d: %w",
				ctxSparse, ctxNew, i, len(row), s.c, ErrShapeMismatch)
		}
		for j, v := range row {
			if v != 0 {
				s.entries[Coord{Row: i, Col: j}] = v
			}
		}
	}

	return s, nil
}

// NewSparseFromMap builds a Sparse directly from a coordinate map.
// Implementation:
//   - Stage 1: reject negative coordinates (ErrOutOfRange).
//   - Stage 2: with WithShape, reject coordinates outside the shape (ErrOutOfRange);
//     otherwise infer the shape from the largest coordinate present.
//   - Stage 3: copy non-zero values; zero-valued entries are dropped.
//
// Notes:
//   - Inference considers every supplied key, including zero-valued ones, so an
//     explicit zero can pin the shape without being stored.
//
// Complexity: O(len(entries)).
func NewSparseFromMap(entries map[Coord]float64, opts ...SparseOption) (*Sparse, error) {
	var cfg sparseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	maxR, maxC := -1, -1
	for k := range entries {
		if k.Row < 0 || k.Col < 0 {
			return nil, fmt.Errorf("%s.%s(%d,%d): %w", ctxSparse, ctxNew, k.Row, k.Col, ErrOutOfRange)
		}
		if cfg.explicit && (k.Row >= cfg.rows || k.Col >= cfg.cols) {
			return nil, fmt.Errorf("%s.%s(%d,%d): outside %dx%d: %w",
				ctxSparse, ctxNew, k.Row, k.Col, cfg.rows, cfg.cols, ErrOutOfRange)
		}
		maxR = max(maxR, k.Row)
		maxC = max(maxC, k.Col)
	}

	s := &Sparse{entries: make(map[Coord]float64, len(entries))}
	if cfg.explicit {
		s.r, s.c = cfg.rows, cfg.cols
		if s.r == 0 {
			s.c = 0
		}
	} else {
		s.r, s.c = maxR+1, maxC+1
	}
	for k, v := range entries {
		if v != 0 {
			s.entries[k] = v
		}
	}

	return s, nil
}

// Rows returns the row count. Complexity: O(1).
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count. Complexity: O(1).
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored (non-zero) cells.
func (s *Sparse) NNZ() int { return len(s.entries) }

// At returns the value at (row, col); omitted cells read as 0.
// Returns ErrOutOfRange outside the shape.
func (s *Sparse) At(row, col int) (float64, error) {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return 0, fmt.Errorf("%s.%s(%d,%d): %w", ctxSparse, ctxAt, row, col, ErrOutOfRange)
	}

	return s.entries[Coord{Row: row, Col: col}], nil
}

// dense returns the cached row-major buffer, building it on first use.
// Kernels read it directly; it must never be written after the build.
func (s *Sparse) dense() []float64 {
	s.once.Do(func() {
		buf := make([]float64, s.r*s.c)
		for k, v := range s.entries {
			buf[k.Row*s.c+k.Col] = v
		}
		s.flat = buf
	})

	return s.flat
}

// DenseView returns a freshly allocated copy of the materialized grid.
// The materialization itself is computed once and cached.
func (s *Sparse) DenseView() [][]float64 {
	flat := s.dense()
	out := make([][]float64, s.r)
	for i := 0; i < s.r; i++ {
		row := make([]float64, s.c)
		copy(row, flat[i*s.c:(i+1)*s.c])
		out[i] = row
	}

	return out
}

// Entries returns a copy of the coordinate map.
func (s *Sparse) Entries() map[Coord]float64 {
	out := make(map[Coord]float64, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}

	return out
}

// NonZero visits stored cells in row-major order (deterministic, unlike map order).
// Iteration stops early when f returns false.
// Complexity: O(nnz log nnz).
func (s *Sparse) NonZero(f func(c Coord, v float64) bool) {
	keys := make([]Coord, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Coord) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	for _, k := range keys {
		if !f(k, s.entries[k]) {
			return
		}
	}
}

// String renders the matrix like Dense.String, preceded by a summary line.
func (s *Sparse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse(rows=%d, cols=%d, nnz=%d)\n", s.r, s.c, len(s.entries))
	flat := s.dense()
	for i := 0; i < s.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < s.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", flat[i*s.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
