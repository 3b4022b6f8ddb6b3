package distance

import (
	"fmt"
	"strings"
)

// Operations reported by DegeneracyError.
const (
	OpDistance = "distance"
	OpMovement = "movement"
)

// ErrDimensionMismatch indicates two vectors of different length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// DegeneracyError reports a distance or movement computation that produced NaN
// or an impossible negative value. It is never retried.
type DegeneracyError struct {
	// Op is the failing computation (OpDistance or OpMovement).
	Op string
	// Detail describes the offending values.
	Detail string
	// Vectors are the inputs involved, if any.
	Vectors [][]float64
}

func (e *DegeneracyError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "numeric degeneracy in %s: %s", e.Op, e.Detail)
	for i, v := range e.Vectors {
		fmt.Fprintf(&sb, "\n  v%d: %s", i, FormatVector(v))
	}
	return sb.String()
}
