// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matriks/csvload"
	"github.com/katalvlaran/matriks/matrix"
	"github.com/katalvlaran/matriks/regression"
	"github.com/katalvlaran/matriks/report"
)

type regressFlags struct {
	in          string
	x, y        string
	strategy    string
	noIntercept bool
	plot        string
}

func newRegressCmd(a *app) *cobra.Command {
	var f regressFlags
	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Fit a linear regression of one column on one or more others",
		Long: "With a single feature column and no --strategy the closed-form simple\n" +
			"regression is used; otherwise multiple regression with the pseudo-inverse\n" +
			"(default) or the normal equations (at most 2 features with intercept).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.regress(f, cmd.Flags().Changed("strategy"))
		},
	}
	cmd.Flags().StringVar(&f.in, "in", "", "CSV file with the observations")
	cmd.Flags().StringVar(&f.x, "x", "0", "feature columns (indices or header names, comma-separated)")
	cmd.Flags().StringVar(&f.y, "y", "-1", "target column (index or header name)")
	cmd.Flags().StringVar(&f.strategy, "strategy", "pinv", "multiple regression solver: pinv or normal")
	cmd.Flags().BoolVar(&f.noIntercept, "no-intercept", false, "fit through the origin (multiple regression)")
	cmd.Flags().StringVar(&f.plot, "plot", "", "write a scatter+fit image (simple regression; .png, .svg or .pdf)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func (a *app) regress(f regressFlags, strategySet bool) error {
	xs := csvload.ParseSelectors(f.x)
	ys := csvload.ParseSelectors(f.y)
	if len(xs) == 0 || len(ys) != 1 {
		return fmt.Errorf("%w: need at least one --x column and exactly one --y column", errUsage)
	}

	t, err := a.loadTable(f.in, csvload.WithColumns(slices.Concat(xs, ys)...), csvload.WithStrictNumeric())
	if err != nil {
		return err
	}
	k := len(xs)
	if t.Matrix.Cols() != k+1 {
		return fmt.Errorf("%w: %d of %d columns survived ingestion (try another --impute)",
			errUsage, t.Matrix.Cols(), k+1)
	}
	d, err := matrix.NewDense(t.Matrix.DenseView())
	if err != nil {
		return err
	}
	target, err := d.Col(k)
	if err != nil {
		return err
	}

	if k == 1 && !strategySet {
		feature, err := d.Col(0)
		if err != nil {
			return err
		}
		model, err := regression.SimpleLinear(feature, target)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s ~ %s: %s\n", t.Columns[1], t.Columns[0], model)
		if f.plot != "" {
			return a.writePlot(f.plot, feature, target, model)
		}

		return nil
	}

	strategy, err := regression.ParseStrategy(f.strategy)
	if err != nil {
		return err
	}
	opts := []regression.Option{regression.WithStrategy(strategy)}
	if f.noIntercept {
		opts = append(opts, regression.WithNoIntercept())
	}

	rows := make([]int, d.Rows())
	for i := range rows {
		rows[i] = i
	}
	featCols := make([]int, k)
	for j := range featCols {
		featCols[j] = j
	}
	X, err := d.Induced(rows, featCols)
	if err != nil {
		return err
	}

	model, err := regression.MultipleLinearVec(X, target, opts...)
	if err != nil {
		return err
	}

	names := t.Columns[:k]
	if model.Intercept {
		names = append([]string{"(intercept)"}, names...)
	}
	fmt.Fprintf(a.out, "%s ~ %s [%s]\n", t.Columns[k], strings.Join(t.Columns[:k], " + "), model.Strategy)
	for i, b := range model.Beta {
		fmt.Fprintf(a.out, "  %-16s %g\n", names[i], b)
	}

	return nil
}

// writePlot renders the regression image; the format follows the extension.
func (a *app) writePlot(path string, xs, ys []float64, model regression.Simple) (err error) {
	path, err = resolvePath(path)
	if err != nil {
		return err
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "png"
		path += ".png"
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if err = report.RegressionPlot(out, xs, ys, model, format); err != nil {
		return err
	}
	a.log.Info("plot written", "path", path)

	return nil
}
