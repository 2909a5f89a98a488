// SPDX-License-Identifier: MIT

// Package csvload: functional configuration of the ingestion pipeline.
// This file defines:
//   - Impute / Normalize enumerations and their parsers,
//   - Selector (column by index or by header name),
//   - Option / Options with documented defaults,
//   - gatherOptions, which applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: With* constructors panic only on nonsensical
//     parameters (programmer error), e.g. a threshold outside [0,1].
//   - Unknown Impute/Normalize values are NOT rejected here: they surface as
//     ErrUnknownStrategy from the stage that consumes them.
package csvload

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Impute is the per-column policy for missing (blank) cells.
type Impute string

// Imputation strategies.
const (
	ImputeZero   Impute = "zero"   // fill with 0
	ImputeMean   Impute = "mean"   // fill with the column mean (0 if all missing)
	ImputeMedian Impute = "median" // fill with the column median (0 if all missing)
	ImputeDrop   Impute = "drop"   // discard any column that has a missing cell
)

// Normalize is the table-wide rescaling applied after imputation.
type Normalize string

// Normalization modes.
const (
	NormalizeNone   Normalize = "none"
	NormalizeMinMax Normalize = "minmax" // (x−min)/(max−min); all-zero when max==min
	NormalizeZScore Normalize = "zscore" // (x−μ)/σ with population σ; all-zero when σ==0
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter separates fields.
	DefaultDelimiter = ','

	// DefaultHeader controls whether the first row is captured as a header.
	DefaultHeader = false

	// DefaultDropNonNumeric drops non-numeric columns instead of failing.
	DefaultDropNonNumeric = true

	// DefaultImpute is the missing-value policy.
	DefaultImpute = ImputeZero

	// DefaultNormalize is the rescaling mode.
	DefaultNormalize = NormalizeNone

	// DefaultForceSparse forces a *matrix.Sparse result when true.
	DefaultForceSparse = false

	// DefaultSparseThreshold is the zero-cell ratio at or above which the
	// result is built as *matrix.Sparse.
	DefaultSparseThreshold = 0.5

	// IntegerEpsilon is the distance to the nearest integer under which an
	// imputed value is canonicalized to that integer.
	IntegerEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDelimiterInvalid = "csvload: WithDelimiter: delimiter must be a valid rune other than quote, CR or LF"
	panicThresholdInvalid = "csvload: WithSparseThreshold: threshold must be finite and within [0,1]"
)

// ParseImpute maps a case-insensitive name to an Impute value.
// Errors: ErrUnknownStrategy.
func ParseImpute(s string) (Impute, error) {
	switch v := Impute(strings.ToLower(strings.TrimSpace(s))); v {
	case ImputeZero, ImputeMean, ImputeMedian, ImputeDrop:
		return v, nil
	case "":
		return DefaultImpute, nil
	default:
		return "", fmt.Errorf("impute %q: %w", s, ErrUnknownStrategy)
	}
}

// ParseNormalize maps a case-insensitive name to a Normalize value ("" means none).
// Errors: ErrUnknownStrategy.
func ParseNormalize(s string) (Normalize, error) {
	switch v := Normalize(strings.ToLower(strings.TrimSpace(s))); v {
	case NormalizeNone, NormalizeMinMax, NormalizeZScore:
		return v, nil
	case "":
		return NormalizeNone, nil
	default:
		return "", fmt.Errorf("normalize %q: %w", s, ErrUnknownStrategy)
	}
}

// ParseDelimiter turns a CLI spelling into a rune: "\t", "tab", or a single character.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return DefaultDelimiter, nil
	case `\t`, "tab", "\t":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) || !validDelim(r) {
		return 0, fmt.Errorf("csvload: invalid delimiter %q", s)
	}

	return r, nil
}

// validDelim mirrors the restrictions of encoding/csv.
func validDelim(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Selector addresses one column by position (always) or by header name
// (only when a header was captured).
type Selector struct {
	index  int
	name   string
	byName bool
}

// ByIndex selects a column by zero-based position. Negative positions count
// from the end (-1 is the last column).
func ByIndex(i int) Selector { return Selector{index: i} }

// ByName selects a column by header name (first match wins).
func ByName(name string) Selector { return Selector{name: name, byName: true} }

// String implements fmt.Stringer.
func (s Selector) String() string {
	if s.byName {
		return strconv.Quote(s.name)
	}

	return strconv.Itoa(s.index)
}

// ParseSelectors splits a comma-separated list; integer tokens become
// ByIndex, anything else ByName. Blank tokens are skipped.
func ParseSelectors(list string) []Selector {
	var out []Selector
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if i, err := strconv.Atoi(tok); err == nil {
			out = append(out, ByIndex(i))
			continue
		}
		out = append(out, ByName(tok))
	}

	return out
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	delimiter       rune
	header          bool
	selectors       []Selector
	dropNonNumeric  bool
	impute          Impute
	normalize       Normalize
	forceSparse     bool
	sparseThreshold float64
}

// WithDelimiter sets the field separator. Panics on a rune encoding/csv cannot use.
func WithDelimiter(r rune) Option {
	if !validDelim(r) {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delimiter = r }
}

// WithHeader captures the first row as a header and strips it from the data.
func WithHeader() Option {
	return func(o *Options) { o.header = true }
}

// WithColumns restricts (and orders) the output to the given columns.
func WithColumns(sel ...Selector) Option {
	cp := append([]Selector(nil), sel...)

	return func(o *Options) { o.selectors = cp }
}

// WithDropNonNumeric silently drops non-numeric columns (default).
func WithDropNonNumeric() Option {
	return func(o *Options) { o.dropNonNumeric = true }
}

// WithStrictNumeric fails with ErrNonNumericColumn if any column is non-numeric.
func WithStrictNumeric() Option {
	return func(o *Options) { o.dropNonNumeric = false }
}

// WithImpute selects the missing-value policy.
func WithImpute(s Impute) Option {
	return func(o *Options) { o.impute = s }
}

// WithNormalize selects the table-wide rescaling.
func WithNormalize(n Normalize) Option {
	return func(o *Options) { o.normalize = n }
}

// WithSparse forces a *matrix.Sparse result regardless of the zero ratio.
func WithSparse() Option {
	return func(o *Options) { o.forceSparse = true }
}

// WithSparseThreshold sets the zero-ratio trigger for the sparse representation.
// Panics unless t is finite and within [0,1].
func WithSparseThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 || t > 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.sparseThreshold = t }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		delimiter:       DefaultDelimiter,
		header:          DefaultHeader,
		dropNonNumeric:  DefaultDropNonNumeric,
		impute:          DefaultImpute,
		normalize:       DefaultNormalize,
		forceSparse:     DefaultForceSparse,
		sparseThreshold: DefaultSparseThreshold,
	}
}

// gatherOptions applies user setters in order over the defaults (nil setters are skipped).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
