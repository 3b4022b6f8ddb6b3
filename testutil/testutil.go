package testutil

import (
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Rand returns an independent *rand.Rand seeded from this RNG, suitable for
// kmeans.WithRand.
func (r *RNG) Rand() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rand.New(rand.NewSource(r.rand.Int63()))
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillProduct fills dst with products of a uniform [0, 1) and a uniform
// [0, 10) value, which skews the data towards zero.
func (r *RNG) FillProduct(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		p := r.rand.Float64()
		q := r.rand.Float64() * 10
		dst[i] = p * q
	}
}

// UniformMatrix generates a rows x cols matrix with values in range [0, 1).
func (r *RNG) UniformMatrix(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	r.FillUniform(data)
	return mat.NewDense(rows, cols, data)
}

// ProductMatrix generates a rows x cols matrix filled by FillProduct.
func (r *RNG) ProductMatrix(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	r.FillProduct(data)
	return mat.NewDense(rows, cols, data)
}

// ClusteredMatrix generates perCenter rows around each center with Gaussian
// noise of the given spread. Rows are interleaved (row i belongs to center
// i % len(centers)); labels holds the center index of every row.
func (r *RNG) ClusteredMatrix(centers [][]float64, perCenter int, spread float64) (*mat.Dense, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dim := len(centers[0])
	rows := perCenter * len(centers)
	data := make([]float64, rows*dim)
	labels := make([]int, rows)

	for i := range rows {
		c := i % len(centers)
		labels[i] = c
		vec := data[i*dim : (i+1)*dim]
		for j := range dim {
			vec[j] = centers[c][j] + r.rand.NormFloat64()*spread
		}
	}

	return mat.NewDense(rows, dim, data), labels
}

// SamePartition reports whether two label vectors describe the same grouping
// of rows, regardless of which label each group carries.
func SamePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ab := make(map[int]int)
	ba := make(map[int]int)
	for i := range a {
		if l, ok := ab[a[i]]; ok && l != b[i] {
			return false
		}
		if l, ok := ba[b[i]]; ok && l != a[i] {
			return false
		}
		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}
	return true
}
