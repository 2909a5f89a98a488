// SPDX-License-Identifier: MIT
// Package csvload: sentinel errors and the stage-tagged error wrapper.
// Every failure of the pipeline is returned as *StageError wrapping one of the
// sentinels below, so callers can match both the stage (errors.As) and the kind
// (errors.Is).

package csvload

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the CSV path does not exist.
	// The wrapped chain also matches fs.ErrNotExist.
	ErrFileNotFound = errors.New("csvload: file not found")

	// ErrNonNumericColumn is returned under the strict numeric policy when one or
	// more selected columns are not numeric. The message enumerates every index.
	ErrNonNumericColumn = errors.New("csvload: non-numeric column")

	// ErrUnknownStrategy is returned for an impute or normalize value outside
	// the enumerated set.
	ErrUnknownStrategy = errors.New("csvload: unknown strategy")

	// ErrNameResolution is returned when a column selector cannot be resolved:
	// unknown header name, name given without a header, or index out of range.
	ErrNameResolution = errors.New("csvload: cannot resolve column")
)

// Stage names one step of the ingestion state machine.
type Stage string

// Pipeline stages in execution order.
const (
	StageParse       Stage = "parse"
	StageSelect      Stage = "select"
	StageClassify    Stage = "classify"
	StageConvert     Stage = "convert"
	StageNormalize   Stage = "normalize"
	StageMaterialize Stage = "materialize"
)

// StageError identifies which stage aborted the load and why.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements error.
func (e *StageError) Error() string {
	return fmt.Sprintf("csvload: %s: %v", e.Stage, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *StageError) Unwrap() error { return e.Err }

// stageErrorf wraps err with the stage tag. Use only when err != nil.
func stageErrorf(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
