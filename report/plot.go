// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/matriks/matrix"
	"github.com/katalvlaran/matriks/regression"
)

// Plot image size.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// RegressionPlot draws the observations (xs, ys) as a scatter and the fitted
// line of model over them. format is any gonum/plot format: "png", "svg", "pdf".
func RegressionPlot(w io.Writer, xs, ys []float64, model regression.Simple, format string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("RegressionPlot: len(xs)=%d len(ys)=%d: %w", len(xs), len(ys), matrix.ErrShapeMismatch)
	}
	if len(xs) == 0 {
		return fmt.Errorf("RegressionPlot: %w", ErrNoData)
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	p := plot.New()
	p.Title.Text = model.String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("RegressionPlot: %w", err)
	}
	fit := plotter.NewFunction(func(x float64) float64 { return model.Intercept + model.Slope*x })
	fit.Color = color.RGBA{R: 200, A: 255}

	p.Add(sc, fit, plotter.NewGrid())
	p.Legend.Add("observed", sc)
	p.Legend.Add("fit", fit)

	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return fmt.Errorf("RegressionPlot: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("RegressionPlot: %w", err)
	}

	return nil
}
