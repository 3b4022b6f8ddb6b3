package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns is returned when no columns are selected.
	ErrNoColumns = errors.New("ingest: no columns selected")
	// ErrNoRows is returned when the input contained no parsable rows.
	ErrNoRows = errors.New("ingest: no rows parsed")
	// ErrInvalidSeparator is returned for an empty field separator or one
	// that equals the decimal separator.
	ErrInvalidSeparator = errors.New("ingest: invalid separator")
	// ErrInvalidColumn is returned for a negative column index or a malformed
	// column argument.
	ErrInvalidColumn = errors.New("ingest: invalid column")
	// ErrMissingField is wrapped by ParseError when a line has fewer fields
	// than a selected column requires.
	ErrMissingField = errors.New("missing field")
)

// ParseError describes a field that could not be parsed.
type ParseError struct {
	// Line is the 1-based input line number.
	Line int
	// Column is the 0-based field index.
	Column int
	// Text is the raw field text.
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("ingest: line %d: column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("ingest: line %d: column %d: cannot parse %q: %v", e.Line, e.Column, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
