// Package testutil provides data generators for kmeans tests, benchmarks and
// the testgen command.
//
// # Random Matrices
//
//	rng := testutil.NewRNG(seed)
//	data := rng.UniformMatrix(1000, 4)          // uniform [0, 1)
//	data = rng.ProductMatrix(1000, 4)           // uniform [0,1) * uniform [0,10)
//	data, labels := rng.ClusteredMatrix(centers, 50, 0.1)
package testutil
