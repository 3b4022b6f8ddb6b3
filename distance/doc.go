// Package distance provides the Euclidean distance used by the clustering engine.
//
// Distances are computed with gonum's overflow-safe L2 kernel. Results are
// guarded: a negative or NaN distance means the input is corrupted (NaN or
// infinite coordinates) and is reported as a *DegeneracyError carrying the
// offending vectors and the call stack.
//
// # Usage
//
//	d, err := distance.Euclidean(a, b)
//	if err != nil {
//	    var de *distance.DegeneracyError
//	    if errors.As(err, &de) {
//	        // fatal: the input data is not finite
//	    }
//	}
package distance
