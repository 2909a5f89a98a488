// SPDX-License-Identifier: MIT

package csvload

import (
	"fmt"
	"io"

	"github.com/katalvlaran/matriks/matrix"
	"github.com/samber/lo"
)

// Table is a loaded matrix together with the provenance of its columns.
type Table struct {
	// Matrix is *matrix.Dense or *matrix.Sparse depending on the zero ratio.
	Matrix matrix.Matrix
	// Columns holds the header name (or "col<i>") of every retained column.
	Columns []string
	// Sources holds the position in the file of every retained column.
	Sources []int
}

// Load reads the CSV file at path into a matrix.
// Errors are *StageError; a missing file wraps ErrFileNotFound.
func Load(path string, opts ...Option) (matrix.Matrix, error) {
	t, err := LoadTable(path, opts...)
	if err != nil {
		return nil, err
	}

	return t.Matrix, nil
}

// LoadTable is Load keeping the retained column names and positions.
func LoadTable(path string, opts ...Option) (*Table, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, stageErrorf(StageParse, err)
	}
	defer f.Close()

	return ReadTable(f, opts...)
}

// Read runs the pipeline over CSV text from r.
func Read(r io.Reader, opts ...Option) (matrix.Matrix, error) {
	t, err := ReadTable(r, opts...)
	if err != nil {
		return nil, err
	}

	return t.Matrix, nil
}

// ReadTable runs the ingestion state machine over r.
// Blueprint:
//
//	Stage 1 (Parse): split records, trim cells, capture the header, drop blank
//	  rows, pad short rows with blanks.
//	Stage 2 (Select): resolve index/name selectors (ErrNameResolution).
//	Stage 3 (Classify): keep numeric columns; drop or fail (ErrNonNumericColumn).
//	Stage 4 (Convert): parse numbers and impute blanks (ErrUnknownStrategy).
//	Stage 5 (Normalize): none, min-max or z-score per column (ErrUnknownStrategy).
//	Stage 6 (Materialize): Sparse when forced or when the zero ratio reaches the
//	  threshold, Dense otherwise.
//
// A file with no data rows yields a 0×0 Dense (or an empty Sparse when forced).
func ReadTable(r io.Reader, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)

	t, err := parse(r, o)
	if err != nil {
		return nil, stageErrorf(StageParse, err)
	}
	if len(t.rows) == 0 {
		m, err := materialize(nil, 0, o)
		if err != nil {
			return nil, stageErrorf(StageMaterialize, err)
		}

		return &Table{Matrix: m, Columns: []string{}, Sources: []int{}}, nil
	}

	cols, err := selectColumns(t, o.selectors)
	if err != nil {
		return nil, stageErrorf(StageSelect, err)
	}

	if cols, err = classify(cols, o.dropNonNumeric); err != nil {
		return nil, stageErrorf(StageClassify, err)
	}

	if cols, err = convert(cols, o.impute); err != nil {
		return nil, stageErrorf(StageConvert, err)
	}

	if err = normalize(cols, o.normalize); err != nil {
		return nil, stageErrorf(StageNormalize, err)
	}

	m, err := materialize(cols, len(t.rows), o)
	if err != nil {
		return nil, stageErrorf(StageMaterialize, err)
	}

	return &Table{
		Matrix:  m,
		Columns: lo.Map(cols, func(c *column, _ int) string { return c.name }),
		Sources: lo.Map(cols, func(c *column, _ int) int { return c.source }),
	}, nil
}

// materialize transposes the columns into rows and picks the representation.
// With no columns left the result is 0×0.
func materialize(cols []*column, nrows int, o Options) (matrix.Matrix, error) {
	ncols := len(cols)
	if ncols == 0 {
		nrows = 0
	}

	total := nrows * ncols
	zeros := lo.SumBy(cols, func(c *column) int {
		return lo.CountBy(c.values, func(v float64) bool { return v == 0 })
	})
	var ratio float64
	if total > 0 {
		ratio = float64(zeros) / float64(total)
	}

	if o.forceSparse || ratio >= o.sparseThreshold {
		entries := make(map[matrix.Coord]float64, total-zeros)
		for j, c := range cols {
			for i, v := range c.values {
				if v != 0 {
					entries[matrix.Coord{Row: i, Col: j}] = v
				}
			}
		}
		s, err := matrix.NewSparseFromMap(entries, matrix.WithShape(nrows, ncols))
		if err != nil {
			return nil, fmt.Errorf("sparse %dx%d: %w", nrows, ncols, err)
		}

		return s, nil
	}

	grid := make([][]float64, nrows)
	for i := range grid {
		grid[i] = make([]float64, ncols)
		for j, c := range cols {
			grid[i][j] = c.values[i]
		}
	}
	d, err := matrix.NewDense(grid)
	if err != nil {
		return nil, fmt.Errorf("dense %dx%d: %w", nrows, ncols, err)
	}

	return d, nil
}
