// SPDX-License-Identifier: MIT

package csvload

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// column carries one selected CSV column through the pipeline.
type column struct {
	name   string    // header name, or "col<i>" when absent
	source int       // position in the parsed grid
	cells  []string  // trimmed raw text
	values []float64 // filled by convert
}

// nameOf returns the display name of grid column j.
func (t *table) nameOf(j int) string {
	if j < len(t.header) && t.header[j] != "" {
		return t.header[j]
	}

	return fmt.Sprintf("col%d", j)
}

// selectColumns resolves the selectors against the grid. With no selectors,
// every column is kept in file order.
func selectColumns(t *table, sel []Selector) ([]*column, error) {
	idx := make([]int, 0, t.width)
	if len(sel) == 0 {
		for j := 0; j < t.width; j++ {
			idx = append(idx, j)
		}
	}

	for _, s := range sel {
		j, err := t.resolve(s)
		if err != nil {
			return nil, err
		}
		idx = append(idx, j)
	}

	return lo.Map(idx, func(j int, _ int) *column {
		return &column{name: t.nameOf(j), source: j, cells: t.column(j)}
	}), nil
}

// resolve maps one selector to a grid position.
func (t *table) resolve(s Selector) (int, error) {
	if s.byName {
		if t.header == nil {
			return 0, fmt.Errorf("column %s requested without a header: %w", s, ErrNameResolution)
		}
		j := slices.Index(t.header, s.name)
		if j < 0 || j >= t.width {
			return 0, fmt.Errorf("column %s not in header: %w", s, ErrNameResolution)
		}

		return j, nil
	}

	j := s.index
	if j < 0 {
		j += t.width
	}
	if j < 0 || j >= t.width {
		return 0, fmt.Errorf("column %s out of range [0,%d): %w", s, t.width, ErrNameResolution)
	}

	return j, nil
}

// numeric reports whether a column has at least one present cell and every
// present cell parses as a finite number. Blank and NaN/Inf cells are missing.
func (c *column) numeric() bool {
	filled := lo.Reject(c.cells, func(s string, _ int) bool { return isMissing(s) })
	if len(filled) == 0 {
		return false
	}

	return lo.EveryBy(filled, func(s string) bool {
		_, ok := parseNumber(s)
		return ok
	})
}

// classify drops non-numeric columns, or fails listing every offending
// position (relative to the selected columns) under the strict policy.
func classify(cols []*column, dropNonNumeric bool) ([]*column, error) {
	var bad []int
	kept := make([]*column, 0, len(cols))
	for i, c := range cols {
		if c.numeric() {
			kept = append(kept, c)
			continue
		}
		bad = append(bad, i)
	}

	if len(bad) > 0 && !dropNonNumeric {
		return nil, fmt.Errorf("columns %v: %w", bad, ErrNonNumericColumn)
	}

	return kept, nil
}

// convert parses the cells and fills missing ones according to strategy.
// Under ImputeDrop, columns with any missing cell are removed.
// Imputed values within IntegerEpsilon of an integer are snapped to it.
func convert(cols []*column, strategy Impute) ([]*column, error) {
	switch strategy {
	case ImputeZero, ImputeMean, ImputeMedian, ImputeDrop:
	default:
		return nil, fmt.Errorf("impute %q: %w", string(strategy), ErrUnknownStrategy)
	}

	kept := make([]*column, 0, len(cols))
	for _, c := range cols {
		vals := make([]float64, len(c.cells))
		var present []float64
		missing := make([]bool, len(c.cells))
		for i, s := range c.cells {
			v, ok := parseNumber(s)
			if !ok {
				missing[i] = true
				continue
			}
			vals[i] = v
			present = append(present, v)
		}

		hasMissing := len(present) < len(c.cells)
		if strategy == ImputeDrop && hasMissing {
			continue
		}

		if hasMissing {
			fill := fillValue(present, strategy)
			for i := range vals {
				if missing[i] {
					vals[i] = fill
				}
			}
		}
		for i, v := range vals {
			vals[i] = canonical(v)
		}

		c.values = vals
		kept = append(kept, c)
	}

	return kept, nil
}

// fillValue computes the replacement for missing cells. An all-missing
// column fills with 0 under every strategy.
func fillValue(present []float64, strategy Impute) float64 {
	if len(present) == 0 {
		return 0
	}
	switch strategy {
	case ImputeMean:
		return stat.Mean(present, nil)
	case ImputeMedian:
		return median(present)
	default:
		return 0
	}
}

// median returns the middle value, or the mean of the two middle values
// for an even count. xs must be non-empty; it is not modified.
func median(xs []float64) float64 {
	s := slices.Clone(xs)
	slices.Sort(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}

// canonical snaps v to the nearest integer when it is within IntegerEpsilon.
func canonical(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < IntegerEpsilon {
		return r
	}

	return v
}

// normalize rescales every column in place.
func normalize(cols []*column, mode Normalize) error {
	switch mode {
	case NormalizeNone, "":
		return nil
	case NormalizeMinMax:
		for _, c := range cols {
			minMax(c.values)
		}
	case NormalizeZScore:
		for _, c := range cols {
			zScore(c.values)
		}
	default:
		return fmt.Errorf("normalize %q: %w", string(mode), ErrUnknownStrategy)
	}

	return nil
}

// minMax maps xs onto [0,1]; a constant column becomes all zeros.
func minMax(xs []float64) {
	if len(xs) == 0 {
		return
	}
	low, high := floats.Min(xs), floats.Max(xs)
	span := high - low
	for i, v := range xs {
		if span == 0 {
			xs[i] = 0
			continue
		}
		xs[i] = (v - low) / span
	}
}

// zScore standardizes xs with the population standard deviation;
// a zero-variance column becomes all zeros.
func zScore(xs []float64) {
	if len(xs) == 0 {
		return
	}
	mean, std := stat.PopMeanStdDev(xs, nil)
	for i, v := range xs {
		if std == 0 {
			xs[i] = 0
			continue
		}
		xs[i] = (v - mean) / std
	}
}
