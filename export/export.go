// SPDX-License-Identifier: MIT

// Package export writes matriks matrices to CSV and JSON and reads JSON back.
//
// Formats:
//   - CSV: one matrix row per line, comma separated, no header.
//   - JSON: an array of row arrays indented with four spaces.
//
// Integral values are written without a decimal point ("3", not "3.0"), so a
// loaded integer table round-trips unchanged.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/matriks/matrix"
)

// JSONIndent is the per-level indentation of WriteJSON.
const JSONIndent = "    "

// ErrNilMatrix is returned when a nil matrix is passed to a writer.
var ErrNilMatrix = errors.New("export: nil matrix")

// FormatValue renders v the way the exporters do.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes m as CSV rows.
func WriteCSV(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteCSV: %w: %w", ErrNilMatrix, err)
	}
	cw := csv.NewWriter(w)
	for _, row := range m.DenseView() {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = FormatValue(v)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// WriteJSON writes m as a JSON array of arrays followed by a newline.
func WriteJSON(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteJSON: %w: %w", ErrNilMatrix, err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(m.DenseView()); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}

// ReadJSON decodes an array of numeric arrays into a Dense.
// Errors: matrix.ErrTypeMismatch for non-numeric content,
// matrix.ErrShapeMismatch for ragged rows.
func ReadJSON(r io.Reader) (*matrix.Dense, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("ReadJSON: %w", err)
	}
	d, err := matrix.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("ReadJSON: %w", err)
	}

	return d, nil
}

// SaveCSV writes m to path, creating parent directories.
func SaveCSV(path string, m matrix.Matrix) error {
	return save(path, m, WriteCSV)
}

// SaveJSON writes m to path, creating parent directories.
func SaveJSON(path string, m matrix.Matrix) error {
	return save(path, m, WriteJSON)
}

func save(path string, m matrix.Matrix, write func(io.Writer, matrix.Matrix) error) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f, m)
}
