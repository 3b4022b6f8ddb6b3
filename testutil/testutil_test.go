package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformMatrix(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.UniformMatrix(8, 32)

	r, c := m.Dims()
	assert.Equal(t, 8, r)
	assert.Equal(t, 32, c)
	for i := range r {
		for _, v := range m.RawRowView(i) {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestProductMatrix(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.ProductMatrix(100, 3)

	r, _ := m.Dims()
	for i := range r {
		for _, v := range m.RawRowView(i) {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 10.0)
		}
	}
}

func TestClusteredMatrix(t *testing.T) {
	rng := NewRNG(4711)
	centers := [][]float64{{0, 0}, {100, 100}}

	m, labels := rng.ClusteredMatrix(centers, 10, 0.1)

	r, c := m.Dims()
	assert.Equal(t, 20, r)
	assert.Equal(t, 2, c)
	assert.Len(t, labels, 20)
	assert.Equal(t, 0, labels[0])
	assert.Equal(t, 1, labels[1])
	assert.InDelta(t, 100, m.At(1, 0), 1)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformMatrix(1, 10)

	rng.Reset()
	v2 := rng.UniformMatrix(1, 10)

	assert.Equal(t, v1.RawMatrix().Data, v2.RawMatrix().Data)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestSamePartition(t *testing.T) {
	assert.True(t, SamePartition([]int{0, 0, 1, 1}, []int{1, 1, 0, 0}))
	assert.True(t, SamePartition([]int{0, 1, 2}, []int{2, 0, 1}))
	assert.False(t, SamePartition([]int{0, 0, 1, 1}, []int{0, 1, 0, 1}))
	assert.False(t, SamePartition([]int{0, 0, 0}, []int{0, 0, 1}))
	assert.False(t, SamePartition([]int{0}, []int{0, 0}))
}
