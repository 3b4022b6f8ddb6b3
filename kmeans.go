package kmeans

import (
	"context"
	"time"
)

// Matrix is a read-only n x m matrix of float64 values stored row-major.
//
// *mat.Dense from gonum.org/v1/gonum/mat satisfies Matrix. RawRowView must
// return a slice of exactly m values; the engine never writes to it.
type Matrix interface {
	Dims() (r, c int)
	RawRowView(i int) []float64
}

// Result is the outcome of a clustering run.
type Result struct {
	// Assignments holds, for every input row in order, the index of its
	// kernel in [0, len(Centroids)).
	Assignments []int `json:"assignments"`
	// Centroids are the final kernel positions.
	Centroids [][]float64 `json:"centroids"`
	// Sizes is the number of rows assigned to each kernel.
	Sizes []int `json:"sizes"`
	// Iterations is the number of completed Lloyd iterations, including the
	// final one that observed movement below the tolerance. A single kernel
	// reaches the mean in iteration 1 and reports 2 iterations.
	Iterations int `json:"iterations"`
	// Movement is the total kernel movement of the last iteration only, so a
	// converged run reports a value below the tolerance rather than the
	// movement of its first iterations. Use Engine.Step to observe those.
	Movement float64 `json:"movement"`
	// Converged is false when the run stopped at the iteration cap.
	Converged bool `json:"converged"`
	// Inertia is the sum of squared distances of rows to their kernel.
	Inertia float64 `json:"inertia"`
}

// Cluster partitions the rows of data into k clusters.
//
// Kernels are seeded by the configured Initializer (random sampling unless
// WithQuantileSeeding or WithInitializer is given) and refined by an Engine
// until convergence or the iteration cap.
func Cluster(data Matrix, k int, opts ...Option) (*Result, error) {
	ctx := context.Background()
	o := applyOptions(opts)
	n, m := data.Dims()
	logger := o.logger.WithK(k).WithDimension(m)
	start := time.Now()

	res, err := cluster(data, k, o, logger)

	iterations, converged := 0, false
	if res != nil {
		iterations, converged = res.Iterations, res.Converged
	}
	o.metricsCollector.RecordRun(iterations, converged, time.Since(start), err)
	logger.LogRun(ctx, n, res, err)
	return res, err
}

func cluster(data Matrix, k int, o options, logger *Logger) (*Result, error) {
	kernels, err := o.initializer.Init(data, k)
	if err != nil {
		return nil, err
	}

	e, err := NewEngine(data, kernels,
		WithMaxIterations(o.maxIterations),
		WithTolerance(o.tolerance),
		WithLogger(logger),
		WithMetricsCollector(o.metricsCollector),
	)
	if err != nil {
		return nil, err
	}
	return e.Run()
}
