// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matriks/csvload"
	"github.com/katalvlaran/matriks/export"
	"github.com/katalvlaran/matriks/matrix"
)

// Export file stems written by run.
const (
	sumStem  = "hasil_penjumlahan"
	copyStem = "matriks_a_copy"
)

type runFlags struct {
	a, b     string
	columns  string
	noExport bool
	outDir   string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load A (and optionally B), validate, add, multiply and export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("out-dir") {
				f.outDir = a.cfg.OutputDir
			}
			return a.run(f)
		},
	}
	cmd.Flags().StringVar(&f.a, "a", "", "CSV file for matrix A (POSIX or WSL UNC path)")
	cmd.Flags().StringVar(&f.b, "b", "", "CSV file for matrix B (optional)")
	cmd.Flags().StringVar(&f.columns, "columns", "", "comma-separated column indices or header names")
	cmd.Flags().BoolVar(&f.noExport, "no-export", false, "do not write result files")
	cmd.Flags().StringVar(&f.outDir, "out-dir", ".", "directory for exported files")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}

func (a *app) run(f runFlags) error {
	var extra []csvload.Option
	if f.columns != "" {
		extra = append(extra, csvload.WithColumns(csvload.ParseSelectors(f.columns)...))
	}

	ta, err := a.loadTable(f.a, extra...)
	if err != nil {
		return err
	}
	A := ta.Matrix
	fmt.Fprintf(a.out, "--- Matrix A (preview) ---\n%v\n", A)

	fmt.Fprintln(a.out, "[Matrix A checks]")
	fmt.Fprintf(a.out, "square:    %t\n", matrix.Square(A))
	fmt.Fprintf(a.out, "symmetric: %t\n", matrix.Symmetric(A))
	fmt.Fprintf(a.out, "identity:  %t\n", matrix.IsIdentityMatrix(A))

	if f.b == "" {
		fmt.Fprintln(a.out, "\n(only matrix A given, no A/B operations)")
		if f.noExport {
			return nil
		}
		return a.exportBoth(f.outDir, copyStem, A)
	}

	tb, err := a.loadTable(f.b, extra...)
	if err != nil {
		return err
	}
	B := tb.Matrix
	fmt.Fprintf(a.out, "\n--- Matrix B (preview) ---\n%v\n", B)

	sum, err := matrix.Add(A, B)
	if err != nil {
		a.log.Error("addition failed", "err", err)
	} else {
		fmt.Fprintln(a.out, "\nA + B:")
		printGrid(a.out, sum)
	}

	start := time.Now()
	prod, err := matrix.Mul(A, B)
	elapsed := time.Since(start)
	if err != nil {
		a.log.Error("multiplication failed", "err", err)
	} else {
		fmt.Fprintln(a.out, "\nA × B:")
		printGrid(a.out, prod)
		fmt.Fprintf(a.out, "\n(multiplication took %.4fs)\n", elapsed.Seconds())
	}

	if f.noExport || sum == nil {
		return nil
	}

	return a.exportBoth(f.outDir, sumStem, sum)
}

// exportBoth writes m as <dir>/<stem>.csv and <dir>/<stem>.json.
func (a *app) exportBoth(dir, stem string, m matrix.Matrix) error {
	csvPath := filepath.Join(dir, stem+".csv")
	jsonPath := filepath.Join(dir, stem+".json")
	if err := export.SaveCSV(csvPath, m); err != nil {
		return err
	}
	if err := export.SaveJSON(jsonPath, m); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved: %s, %s\n", csvPath, jsonPath)

	return nil
}
