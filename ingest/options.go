package ingest

import (
	"fmt"
	"log/slog"
	"strings"
)

// Options configures Read.
type Options struct {
	// FieldSeparator splits a line into fields. It may be longer than one
	// character.
	FieldSeparator string
	// DecimalSeparator is replaced by '.' before a field is parsed.
	DecimalSeparator byte
	// SkipHeader keeps the first non-blank line out of the data.
	SkipHeader bool
	// FailOnError makes a malformed row abort the read instead of being
	// skipped.
	FailOnError bool
	// Columns are the 0-based field indices to parse, in output order.
	Columns []int
	// Logger receives progress logs. Nil disables them.
	Logger *slog.Logger
}

// DefaultOptions returns comma separated fields with a '.' decimal separator.
func DefaultOptions() Options {
	return Options{
		FieldSeparator:   ",",
		DecimalSeparator: '.',
	}
}

func (o Options) validate() error {
	if len(o.Columns) == 0 {
		return ErrNoColumns
	}
	for _, c := range o.Columns {
		if c < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidColumn, c)
		}
	}
	if o.FieldSeparator == "" {
		return fmt.Errorf("%w: empty field separator", ErrInvalidSeparator)
	}
	if o.DecimalSeparator == 0 {
		return fmt.Errorf("%w: empty decimal separator", ErrInvalidSeparator)
	}
	if strings.IndexByte(o.FieldSeparator, o.DecimalSeparator) >= 0 {
		return fmt.Errorf("%w: field separator %q overlaps decimal separator %q",
			ErrInvalidSeparator, o.FieldSeparator, string(o.DecimalSeparator))
	}
	return nil
}
