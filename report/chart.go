// SPDX-License-Identifier: MIT

// Package report renders matriks data for people: an interactive HTML line
// chart of a loaded table and a static regression plot.
package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/katalvlaran/matriks/export"
	"github.com/katalvlaran/matriks/matrix"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("report: no data")

// Chart describes the HTML line chart.
type Chart struct {
	Title    string
	Subtitle string
	Series   string // legend name of the plotted column
}

// DefaultChart is used by LineChart when the zero Chart is given.
var DefaultChart = Chart{Title: "matriks", Series: "value"}

// LineChart writes an HTML page plotting the last column of m against the
// first column, which serves as the category label of every row.
// A single-column matrix is plotted against itself.
func LineChart(w io.Writer, m matrix.Matrix, c Chart) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("LineChart: %w", err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return fmt.Errorf("LineChart: %dx%d: %w", m.Rows(), m.Cols(), ErrNoData)
	}
	if c == (Chart{}) {
		c = DefaultChart
	}

	grid := m.DenseView()
	last := m.Cols() - 1
	labels := make([]string, len(grid))
	items := make([]opts.LineData, len(grid))
	for i, row := range grid {
		labels[i] = export.FormatValue(row[0])
		items[i] = opts.LineData{Value: row[last]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: c.Title, Subtitle: c.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)
	line.SetXAxis(labels).AddSeries(c.Series, items)

	return line.Render(w)
}

// Handler serves the line chart of m over HTTP.
func Handler(m matrix.Matrix, c Chart) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := LineChart(w, m, c); err != nil {
			slog.Error("render chart", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
