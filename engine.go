package kmeans

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kmeans/distance"
)

type engineState int

const (
	stateSeeded engineState = iota
	stateIterating
	stateDone
	stateReleased
)

// Engine runs Lloyd iterations over a borrowed data matrix.
//
// The engine owns its kernels and all scratch buffers; the matrix is only read.
// Kernels, the previous-kernel snapshot and the coordinate sums are stored as
// contiguous k*m buffers.
type Engine struct {
	data Matrix
	n, m int
	k    int

	kernels     []float64
	prev        []float64
	sums        []float64
	counts      []int
	assignments []int

	movement   float64
	iterations int
	state      engineState

	opts     options
	progress rate.Sometimes
	dist     func(p, q []float64) (float64, error)
}

// NewEngine creates an engine seeded with the given kernels.
//
// The kernels are copied; each must have as many coordinates as data has
// columns.
func NewEngine(data Matrix, kernels [][]float64, opts ...Option) (*Engine, error) {
	k := len(kernels)
	if err := validate(data, k, false); err != nil {
		return nil, err
	}
	n, m := data.Dims()

	e := &Engine{
		data:        data,
		n:           n,
		m:           m,
		k:           k,
		kernels:     make([]float64, k*m),
		prev:        make([]float64, k*m),
		sums:        make([]float64, k*m),
		counts:      make([]int, k),
		assignments: make([]int, n),
		movement:    math.Inf(1),
		opts:        applyOptions(opts),
		progress:    rate.Sometimes{First: 1, Interval: time.Second},
		dist:        distance.Euclidean,
	}
	for i, kernel := range kernels {
		if len(kernel) != m {
			return nil, &ErrDimensionMismatch{Expected: m, Actual: len(kernel)}
		}
		copy(e.kernel(i), kernel)
	}
	return e, nil
}

func (e *Engine) kernel(i int) []float64 {
	return e.kernels[i*e.m : (i+1)*e.m : (i+1)*e.m]
}

func (e *Engine) sum(i int) []float64 {
	return e.sums[i*e.m : (i+1)*e.m : (i+1)*e.m]
}

func (e *Engine) previous(i int) []float64 {
	return e.prev[i*e.m : (i+1)*e.m : (i+1)*e.m]
}

// Step performs one assignment and update round and returns the total kernel
// movement.
func (e *Engine) Step() (float64, error) {
	if e.state == stateReleased {
		return 0, ErrEngineReleased
	}
	e.state = stateIterating
	start := time.Now()

	copy(e.prev, e.kernels)
	clear(e.counts)
	clear(e.sums)

	if err := e.assign(); err != nil {
		return 0, err
	}
	frozen := e.update()

	movement, err := e.measure()
	if err != nil {
		return 0, err
	}
	e.movement = movement
	e.iterations++
	if e.Done() {
		e.state = stateDone
	}

	e.opts.metricsCollector.RecordIteration(e.iterations, movement, time.Since(start))
	e.progress.Do(func() {
		e.opts.logger.LogIteration(context.Background(), e.iterations, movement, frozen)
	})
	return movement, nil
}

// assign moves every row to its nearest kernel. Comparison is strict, so ties
// go to the lowest kernel index.
func (e *Engine) assign() error {
	for r := 0; r < e.n; r++ {
		row := e.data.RawRowView(r)
		closest := 0
		closestDist := math.Inf(1)
		for ki := 0; ki < e.k; ki++ {
			d, err := e.dist(row, e.kernel(ki))
			if err != nil {
				return err
			}
			if d < closestDist {
				closestDist = d
				closest = ki
			}
		}
		e.assignments[r] = closest
		e.counts[closest]++
		floats.Add(e.sum(closest), row)
	}
	return nil
}

// update moves kernels with followers to their mean and returns the number of
// kernels left in place because nobody followed them.
func (e *Engine) update() int {
	frozen := 0
	for ki := 0; ki < e.k; ki++ {
		count := e.counts[ki]
		if count == 0 {
			frozen++
			continue
		}
		kernel, sum := e.kernel(ki), e.sum(ki)
		c := float64(count)
		for vi := range kernel {
			kernel[vi] = sum[vi] / c
		}
	}
	return frozen
}

func (e *Engine) measure() (float64, error) {
	movement := 0.0
	for ki := 0; ki < e.k; ki++ {
		d, err := e.dist(e.previous(ki), e.kernel(ki))
		if err != nil {
			return 0, err
		}
		before := movement
		movement += d
		// distance.Euclidean rejects NaN itself; this catches a distance
		// function that lets it through.
		if math.IsNaN(movement) {
			return 0, errors.WithStack(&DegeneracyError{
				Op:     distance.OpMovement,
				Detail: fmt.Sprintf("movement was NaN: %v, previous movement was %v and kernel %d moved %v", movement, before, ki, d),
			})
		}
	}
	return movement, nil
}

// Done reports whether the movement of the last iteration fell below the
// tolerance or the iteration cap was reached.
func (e *Engine) Done() bool {
	return e.movement < e.opts.tolerance || e.iterations >= e.opts.maxIterations
}

// Run iterates until Done and returns the result. Afterwards the engine's
// buffers are released and further calls fail with ErrEngineReleased.
func (e *Engine) Run() (*Result, error) {
	if e.state == stateReleased {
		return nil, ErrEngineReleased
	}
	for !e.Done() {
		if _, err := e.Step(); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Assignments: e.assignments,
		Centroids:   e.Kernels(),
		Sizes:       e.Counts(),
		Iterations:  e.iterations,
		Movement:    e.movement,
		Converged:   e.movement < e.opts.tolerance,
	}
	inertia, err := e.inertia()
	if err != nil {
		return nil, err
	}
	res.Inertia = inertia

	e.release()
	return res, nil
}

func (e *Engine) inertia() (float64, error) {
	total := 0.0
	if e.iterations == 0 {
		return total, nil
	}
	for r := 0; r < e.n; r++ {
		d, err := distance.SquaredEuclidean(e.data.RawRowView(r), e.kernel(e.assignments[r]))
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

func (e *Engine) release() {
	e.kernels = nil
	e.prev = nil
	e.sums = nil
	e.counts = nil
	e.assignments = nil
	e.data = nil
	e.state = stateReleased
}

// Kernels returns a copy of the current kernel positions.
func (e *Engine) Kernels() [][]float64 {
	if e.state == stateReleased {
		return nil
	}
	out := make([][]float64, e.k)
	for i := range out {
		out[i] = append([]float64(nil), e.kernel(i)...)
	}
	return out
}

// Assignments returns a copy of the assignment vector of the last iteration.
func (e *Engine) Assignments() []int {
	if e.state == stateReleased {
		return nil
	}
	return append([]int(nil), e.assignments...)
}

// Counts returns a copy of the follower count per kernel of the last iteration.
func (e *Engine) Counts() []int {
	if e.state == stateReleased {
		return nil
	}
	return append([]int(nil), e.counts...)
}

// Iterations returns the number of completed iterations.
func (e *Engine) Iterations() int { return e.iterations }

// Movement returns the total kernel movement of the last iteration, or +Inf
// before the first one.
func (e *Engine) Movement() float64 { return e.movement }
