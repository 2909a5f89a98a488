// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/matriks/config"
	"github.com/katalvlaran/matriks/csvload"
	"github.com/katalvlaran/matriks/export"
	"github.com/katalvlaran/matriks/matrix"
)

// app is the state shared by every subcommand.
type app struct {
	cfg  *config.Config
	log  *slog.Logger
	out  io.Writer
	load loadFlags
}

// loadFlags are the ingestion flags common to every subcommand.
type loadFlags struct {
	delimiter string
	header    bool
	impute    string
	normalize string
	sparse    bool
	threshold float64
	strict    bool
	logLevel  string
}

func newRootCmd() *cobra.Command {
	a := &app{out: os.Stdout}

	root := &cobra.Command{
		Use:           "matriks",
		Short:         "Load CSV tables as matrices and run matrix operations on them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.out = cmd.OutOrStdout()
			return a.init(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.load.delimiter, "delimiter", "", `field delimiter ("," by default, "\t" for tab)`)
	pf.BoolVar(&a.load.header, "header", false, "treat the first row as a header")
	pf.BoolVar(&a.load.header, "skip-header", false, "alias of --header")
	pf.StringVar(&a.load.impute, "impute", "", "missing-value strategy: zero, mean, median, drop")
	pf.StringVar(&a.load.normalize, "normalize", "", "column normalization: none, minmax, zscore")
	pf.BoolVar(&a.load.sparse, "as-sparse", false, "always build a sparse matrix")
	pf.Float64Var(&a.load.threshold, "sparse-threshold", csvload.DefaultSparseThreshold, "zero ratio at which a sparse matrix is built")
	pf.BoolVar(&a.load.strict, "strict", false, "fail on non-numeric columns instead of dropping them")
	pf.StringVar(&a.load.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newRunCmd(a), newRegressCmd(a), newReportCmd(a))

	return root
}

// init resolves configuration (flags over environment over defaults) and
// builds the logger.
func (a *app) init(flags *pflag.FlagSet, logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if flags.Changed("delimiter") {
		if cfg.Delimiter, err = csvload.ParseDelimiter(a.load.delimiter); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
	}
	if flags.Changed("impute") {
		if cfg.Impute, err = csvload.ParseImpute(a.load.impute); err != nil {
			return err
		}
	}
	if flags.Changed("normalize") {
		if cfg.Normalize, err = csvload.ParseNormalize(a.load.normalize); err != nil {
			return err
		}
	}
	if flags.Changed("sparse-threshold") {
		if math.IsNaN(a.load.threshold) || a.load.threshold < 0 || a.load.threshold > 1 {
			return fmt.Errorf("%w: --sparse-threshold %g not in [0,1]", errUsage, a.load.threshold)
		}
		cfg.SparseThreshold = a.load.threshold
	}
	if flags.Changed("log-level") {
		if err = cfg.LogLevel.UnmarshalText([]byte(a.load.logLevel)); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	return nil
}

// options turns the resolved configuration into loader options.
func (a *app) options(extra ...csvload.Option) []csvload.Option {
	opts := []csvload.Option{
		csvload.WithDelimiter(a.cfg.Delimiter),
		csvload.WithImpute(a.cfg.Impute),
		csvload.WithNormalize(a.cfg.Normalize),
		csvload.WithSparseThreshold(a.cfg.SparseThreshold),
	}
	if a.load.header {
		opts = append(opts, csvload.WithHeader())
	}
	if a.load.sparse {
		opts = append(opts, csvload.WithSparse())
	}
	if a.load.strict {
		opts = append(opts, csvload.WithStrictNumeric())
	}

	return append(opts, extra...)
}

// loadTable resolves path and runs the ingestion pipeline.
func (a *app) loadTable(path string, extra ...csvload.Option) (*csvload.Table, error) {
	abs, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loading", "path", abs)

	t, err := csvload.LoadTable(abs, a.options(extra...)...)
	if err != nil {
		return nil, err
	}
	a.log.Info("loaded", "path", abs, "rows", t.Matrix.Rows(), "cols", t.Matrix.Cols(),
		"kind", kindOf(t.Matrix), "columns", t.Columns)

	return t, nil
}

// kindOf names the concrete representation for log lines.
func kindOf(m matrix.Matrix) string {
	switch m.(type) {
	case *matrix.Sparse:
		return "sparse"
	default:
		return "dense"
	}
}

// printGrid writes one matrix row per line, values separated by spaces.
func printGrid(w io.Writer, m matrix.Matrix) {
	for _, row := range m.DenseView() {
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, export.FormatValue(v))
		}
		fmt.Fprintln(w)
	}
}
