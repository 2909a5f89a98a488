// SPDX-License-Identifier: MIT

package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// table is the rectangular string grid produced by the Parse stage.
// Every row has exactly width cells; header is nil unless captured.
type table struct {
	header []string
	rows   [][]string
	width  int
}

// openFile opens path, mapping a missing file to ErrFileNotFound.
// The returned error keeps the *fs.PathError in its chain.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}

		return nil, err
	}

	return f, nil
}

// parse reads records, trims every cell, captures the optional header, drops
// rows whose cells are all blank, and pads short rows with "" to the widest row.
func parse(r io.Reader, o Options) (*table, error) {
	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	t := &table{}
	if o.header && len(records) > 0 {
		t.header = lo.Map(records[0], func(s string, _ int) string { return strings.TrimSpace(s) })
		records = records[1:]
	}

	for _, rec := range records {
		row := lo.Map(rec, func(s string, _ int) string { return strings.TrimSpace(s) })
		if lo.EveryBy(row, isBlank) {
			continue
		}
		t.rows = append(t.rows, row)
		t.width = max(t.width, len(row))
	}

	for i, row := range t.rows {
		if pad := t.width - len(row); pad > 0 {
			t.rows[i] = append(row, make([]string, pad)...)
		}
	}

	return t, nil
}

// column returns the j-th column of the grid.
func (t *table) column(j int) []string {
	return lo.Map(t.rows, func(row []string, _ int) string { return row[j] })
}

func isBlank(s string) bool { return s == "" }

// isMissing reports a cell that carries no usable value: blank, or a
// non-finite literal such as "NaN" or "Inf". Missing cells are imputed.
func isMissing(s string) bool {
	if isBlank(s) {
		return true
	}
	v, err := strconv.ParseFloat(s, 64)

	return err == nil && (math.IsNaN(v) || math.IsInf(v, 0))
}

// parseNumber accepts finite integer and floating-point literals.
// Non-finite values never reach the matrix kernels.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
