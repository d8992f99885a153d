package roulette

import (
	"errors"
	"fmt"

	"github.com/ukaji3/lunchroulette-go/pkg/roulette/parser"
)

// ErrSourceUnreachable indicates the workbook could not be read from its source.
var ErrSourceUnreachable = errors.New("workbook source unreachable")

// ErrInvalidFormat indicates the input is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetMissing indicates a required sheet does not exist.
var ErrSheetMissing = errors.New("required sheet missing")

// ErrSheetEmpty indicates a required sheet has no usable data rows.
var ErrSheetEmpty = errors.New("required sheet is empty")

// ErrColumnMissing indicates a required header is absent from a sheet.
var ErrColumnMissing = parser.ErrColumnMissing

// ErrInvalidRow indicates a row rejected in strict mode.
var ErrInvalidRow = parser.ErrInvalidRow

// Stage names the step of a load that failed.
type Stage string

const (
	StageFetch  Stage = "fetch"
	StageParse  Stage = "parse"
	StageSheets Stage = "sheets"
	StageIndex  Stage = "index"
)

// LoadError represents a failed load. No partial dataset accompanies it.
type LoadError struct {
	Source string
	Sheet  string // empty when the failure is not tied to one sheet
	Stage  Stage
	Err    error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("load %s failed in sheet %q (%s): %v", e.Source, e.Sheet, e.Stage, e.Err)
	}
	return fmt.Sprintf("load %s failed (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, sheet string, stage Stage, err error) *LoadError {
	return &LoadError{
		Source: source,
		Sheet:  sheet,
		Stage:  stage,
		Err:    err,
	}
}
