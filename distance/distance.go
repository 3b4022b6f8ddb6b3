package distance

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// Euclidean returns the Euclidean (L2) distance between p and q.
//
// p and q must have the same length. A NaN or negative result is reported as a
// *DegeneracyError wrapped with the current call stack.
func Euclidean(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, &ErrDimensionMismatch{Expected: len(p), Actual: len(q)}
	}

	d := floats.Distance(p, q, 2)
	if d < 0 {
		return 0, errors.WithStack(&DegeneracyError{
			Op:      OpDistance,
			Detail:  fmt.Sprintf("sum of squared differences was negative (%v)", d*d),
			Vectors: [][]float64{p, q},
		})
	}
	if math.IsNaN(d) {
		return 0, errors.WithStack(&DegeneracyError{
			Op:      OpDistance,
			Detail:  "distance was NaN, the input vectors were probably at fault",
			Vectors: [][]float64{p, q},
		})
	}
	return d, nil
}

// SquaredEuclidean returns the squared Euclidean distance between p and q.
// It applies the same guards as Euclidean.
func SquaredEuclidean(p, q []float64) (float64, error) {
	d, err := Euclidean(p, q)
	if err != nil {
		return 0, err
	}
	return d * d, nil
}

// FormatVector renders v with two decimals per coordinate, e.g. "[0.00, 1.50]".
func FormatVector(v []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%0.2f", x)
	}
	sb.WriteByte(']')
	return sb.String()
}
