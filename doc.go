// Package kmeans clusters rows of numeric data into k groups with Lloyd's
// algorithm.
//
// A run has three parts:
//
//   - An Initializer produces k starting kernels (centroids). RandomInitializer
//     copies k distinct rows chosen uniformly at random; QuantileInitializer
//     builds synthetic kernels from per-dimension sorted pivots.
//   - The Engine alternates an assignment step (every row follows its nearest
//     kernel, ties going to the lowest index) and an update step (every kernel
//     with followers moves to their mean; kernels without followers stay put).
//   - The loop stops when the total kernel movement drops below the tolerance
//     (machine epsilon by default) or the iteration cap (2500 by default) is hit.
//
// # Usage
//
//	data := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 10, 0, 10, 1})
//	res, err := kmeans.Cluster(data, 2, kmeans.WithQuantileSeeding())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Assignments) // [0 0 1 1]
//
// # Errors
//
// Invalid configuration (k < 1, k greater than the number of rows for random
// sampling, empty input) is reported before any work is done. A NaN distance or
// movement is reported as a *distance.DegeneracyError with a call stack; it
// indicates non-finite input and is never retried.
//
// An Engine is not safe for concurrent use. Independent runs share no state.
package kmeans
