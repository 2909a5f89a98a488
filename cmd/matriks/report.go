// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matriks/report"
)

type reportFlags struct {
	in    string
	out   string
	serve string
	title string
}

func newReportCmd(a *app) *cobra.Command {
	var f reportFlags
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Chart the last column of a table against its first column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(f)
		},
	}
	cmd.Flags().StringVar(&f.in, "in", "", "CSV file to chart")
	cmd.Flags().StringVar(&f.out, "out", "chart.html", "HTML output file")
	cmd.Flags().StringVar(&f.serve, "serve", "", "serve the chart on this address (e.g. :8080) instead of writing a file")
	cmd.Flags().StringVar(&f.title, "title", "matriks", "chart title")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func (a *app) report(f reportFlags) (err error) {
	t, err := a.loadTable(f.in)
	if err != nil {
		return err
	}
	c := report.Chart{Title: f.title, Subtitle: f.in, Series: "last column"}

	if f.serve != "" {
		a.log.Info("serving chart", "addr", f.serve)
		return http.ListenAndServe(f.serve, report.Handler(t.Matrix, c))
	}

	path, err := resolvePath(f.out)
	if err != nil {
		return err
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
	if err = report.LineChart(out, t.Matrix, c); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "chart written: %s\n", path)

	return nil
}
