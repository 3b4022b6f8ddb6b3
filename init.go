package kmeans

import (
	"math"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Initializer produces the k starting kernels of a run.
//
// Every returned kernel is an independent slice of length m; the engine
// overwrites kernels in place, so implementations must never return views into
// the data matrix.
type Initializer interface {
	Init(data Matrix, k int) ([][]float64, error)
}

// RandomInitializer picks k distinct rows uniformly at random and copies them.
type RandomInitializer struct {
	// Rand is the random source. If nil, a source seeded from the wall clock
	// is created on first use.
	Rand *rand.Rand

	once sync.Once
}

func (r *RandomInitializer) source() *rand.Rand {
	r.once.Do(func() {
		if r.Rand == nil {
			r.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	})
	return r.Rand
}

// Pick returns the indices of k distinct rows in the order they were drawn.
//
// Indices are drawn uniformly from [0,n) and redrawn when already chosen.
// k must not exceed the number of rows (ErrTooFewRows) and the matrix may hold
// fewer than 2^32 rows (ErrTooManyRows).
func (r *RandomInitializer) Pick(data Matrix, k int) ([]int, error) {
	if err := validate(data, k, true); err != nil {
		return nil, err
	}
	n, _ := data.Dims()
	if uint64(n) > math.MaxUint32 {
		return nil, &ConfigError{K: k, Rows: n, err: ErrTooManyRows}
	}

	rng := r.source()
	seen := roaring.New()
	rows := make([]int, 0, k)
	for len(rows) < k {
		row := rng.Intn(n)
		if !seen.CheckedAdd(uint32(row)) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Init implements Initializer.
func (r *RandomInitializer) Init(data Matrix, k int) ([][]float64, error) {
	rows, err := r.Pick(data, k)
	if err != nil {
		return nil, err
	}
	kernels := make([][]float64, k)
	for i, row := range rows {
		kernels[i] = slices.Clone(data.RawRowView(row))
	}
	return kernels, nil
}

// QuantileInitializer builds kernels from evenly spaced ranks of every
// dimension sorted independently.
//
// Kernel j takes, in dimension i, the value at rank Pivots(n, k)[j] of column i.
// The coordinates of one kernel generally come from different rows, so the
// kernels are synthetic points rather than samples. k may exceed n, in which
// case pivots repeat.
type QuantileInitializer struct{}

// Init implements Initializer.
func (QuantileInitializer) Init(data Matrix, k int) ([][]float64, error) {
	if err := validate(data, k, false); err != nil {
		return nil, err
	}
	n, m := data.Dims()

	flat := make([]float64, k*m)
	kernels := make([][]float64, k)
	for j := range kernels {
		kernels[j] = flat[j*m : (j+1)*m : (j+1)*m]
	}

	pivots := Pivots(n, k)
	column := make([]float64, n)
	for i := 0; i < m; i++ {
		for r := 0; r < n; r++ {
			column[r] = data.RawRowView(r)[i]
		}
		slices.Sort(column)
		for j, p := range pivots {
			kernels[j][i] = column[p]
		}
	}
	return kernels, nil
}

// Pivots returns the k rank positions floor((2j / 2k) * n) for j in [0,k).
func Pivots(n, k int) []int {
	pivots := make([]int, k)
	b := float64(k) * 2
	for j := range pivots {
		t := 2 * float64(j)
		pivots[j] = int(t / b * float64(n))
	}
	return pivots
}
