package kmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmeans/distance"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrTooFewRows is returned when random sampling is asked for more kernels
	// than there are rows to sample from.
	ErrTooFewRows = errors.New("k exceeds the number of rows")

	// ErrTooManyRows is returned when random sampling is asked to draw from
	// 2^32 or more rows, which the seen-row bitmap cannot index.
	ErrTooManyRows = errors.New("too many rows for random sampling")

	// ErrEmptyMatrix is returned when the data matrix has no rows.
	ErrEmptyMatrix = errors.New("data matrix has no rows")

	// ErrInvalidDimension is returned when the data matrix has no columns.
	ErrInvalidDimension = errors.New("data matrix has no columns")

	// ErrEngineReleased is returned when an engine is used after Run.
	ErrEngineReleased = errors.New("engine released")
)

// ErrDimensionMismatch indicates a kernel whose length differs from the
// number of matrix columns.
type ErrDimensionMismatch = distance.ErrDimensionMismatch

// DegeneracyError reports a NaN or negative distance or movement.
type DegeneracyError = distance.DegeneracyError

// ConfigError reports a run configuration that cannot be clustered.
//
// The sentinel (ErrInvalidK, ErrTooFewRows, ...) can be matched with errors.Is.
type ConfigError struct {
	K    int
	Rows int
	Cols int
	err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid clustering config (k=%d, rows=%d, cols=%d): %v", e.K, e.Rows, e.Cols, e.err)
}

func (e *ConfigError) Unwrap() error { return e.err }

func validate(data Matrix, k int, needRows bool) error {
	n, m := data.Dims()
	var err error
	switch {
	case k < 1:
		err = ErrInvalidK
	case n == 0:
		err = ErrEmptyMatrix
	case m == 0:
		err = ErrInvalidDimension
	case needRows && k > n:
		err = ErrTooFewRows
	}
	if err != nil {
		return &ConfigError{K: k, Rows: n, Cols: m, err: err}
	}
	return nil
}
