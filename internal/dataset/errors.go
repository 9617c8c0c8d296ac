package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when a file lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformed is returned for unreadable files and unparseable values.
	ErrMalformed = errors.New("malformed input")
)

// ParseError locates a load failure in a source file. Line and Column are
// zero when the failure is not tied to a cell.
type ParseError struct {
	File   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("%s:%d: column %s: value %q: %v", e.File, e.Line, e.Column, e.Value, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

func malformed(file string, line int, column, value string, cause error) error {
	if cause == nil {
		cause = ErrMalformed
	} else {
		cause = fmt.Errorf("%w: %w", ErrMalformed, cause)
	}
	return &ParseError{File: file, Line: line, Column: column, Value: value, Err: cause}
}
