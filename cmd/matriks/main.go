// SPDX-License-Identifier: MIT

// Command matriks loads numeric CSV tables into matrices, runs the basic
// operations on them, fits linear regressions and renders reports.
//
//	matriks run --a A.csv [--b B.csv] [--header] [--impute mean] [--normalize zscore]
//	matriks regress --in data.csv --x 0 --y 1
//	matriks report --in data.csv --out chart.html
//
// Exit status: 0 success, 2 file not found, 3 invalid data or arguments,
// 4 anything else.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/matriks/csvload"
	"github.com/katalvlaran/matriks/matrix"
	"github.com/katalvlaran/matriks/regression"
)

// Exit codes.
const (
	exitOK           = 0
	exitFileNotFound = 2
	exitValue        = 3
	exitOther        = 4
)

// errUsage marks invalid flag values.
var errUsage = errors.New("invalid argument")

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies err into the documented exit statuses.
func exitCode(err error) int {
	var stageErr *csvload.StageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, csvload.ErrFileNotFound):
		return exitFileNotFound
	case errors.As(err, &stageErr),
		errors.Is(err, errUsage),
		errors.Is(err, csvload.ErrUnknownStrategy),
		errors.Is(err, regression.ErrUnknownStrategy),
		errors.Is(err, regression.ErrEmptyInput),
		errors.Is(err, regression.ErrCapacity),
		errors.Is(err, matrix.ErrShapeMismatch),
		errors.Is(err, matrix.ErrTypeMismatch),
		errors.Is(err, matrix.ErrSingular):
		return exitValue
	default:
		return exitOther
	}
}
