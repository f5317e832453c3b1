package reqdash

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptySheet indicates the selected sheet holds no data rows.
var ErrEmptySheet = errors.New("sheet is empty")

// Load stages reported by LoadError.
const (
	StageOpen      = "open"
	StageSheet     = "sheet"
	StageRead      = "read"
	StageValidate  = "validate"
	StageNormalize = "normalize"
)

// LoadError represents an error while loading a workbook.
type LoadError struct {
	SheetName string
	Stage     string // "open", "sheet", "read", "validate", "normalize"
	Err       error
}

func (e *LoadError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("load error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, stage string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
