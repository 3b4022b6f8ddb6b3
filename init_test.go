package kmeans

import (
	"errors"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/kmeans/testutil"
)

func TestRandomInitializer_DistinctRows(t *testing.T) {
	data := mat.NewDense(10, 2, nil)
	for i := range 10 {
		data.Set(i, 0, float64(i))
		data.Set(i, 1, float64(2*i))
	}

	for seed := int64(0); seed < 20; seed++ {
		ri := &RandomInitializer{Rand: rand.New(rand.NewSource(seed))}
		rows, err := ri.Pick(data, 10)
		require.NoError(t, err)
		require.Len(t, rows, 10)

		sorted := slices.Clone(rows)
		slices.Sort(sorted)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
	}
}

func TestRandomInitializer_DeepCopy(t *testing.T) {
	data := testutil.NewRNG(4711).UniformMatrix(20, 3)
	ri := &RandomInitializer{Rand: rand.New(rand.NewSource(1))}

	kernels, err := ri.Init(data, 5)
	require.NoError(t, err)
	require.Len(t, kernels, 5)

	before := mat.DenseCopyOf(data)
	for _, kernel := range kernels {
		require.Len(t, kernel, 3)
		kernel[0] = -1
	}
	assert.True(t, mat.Equal(before, data), "kernels must not alias data rows")
}

func TestRandomInitializer_KernelsMatchPickedRows(t *testing.T) {
	data := testutil.NewRNG(4711).UniformMatrix(20, 3)

	rows, err := (&RandomInitializer{Rand: rand.New(rand.NewSource(7))}).Pick(data, 4)
	require.NoError(t, err)
	kernels, err := (&RandomInitializer{Rand: rand.New(rand.NewSource(7))}).Init(data, 4)
	require.NoError(t, err)

	for i, row := range rows {
		assert.Equal(t, data.RawRowView(row), kernels[i])
	}
}

func TestRandomInitializer_WallClockSeed(t *testing.T) {
	ri := &RandomInitializer{}

	kernels, err := ri.Init(fourPoints(), 2)
	require.NoError(t, err)
	assert.Len(t, kernels, 2)
	assert.NotNil(t, ri.Rand)
}

func TestRandomInitializer_Validation(t *testing.T) {
	tests := []struct {
		name string
		data Matrix
		k    int
		want error
	}{
		{"KExceedsRows", fourPoints(), 5, ErrTooFewRows},
		{"ZeroK", fourPoints(), 0, ErrInvalidK},
		{"NegativeK", fourPoints(), -1, ErrInvalidK},
		{"Empty", rowMatrix{}, 1, ErrEmptyMatrix},
		{"NoColumns", rowMatrix{{}, {}}, 1, ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&RandomInitializer{}).Init(tt.data, tt.k)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.k, ce.K)
		})
	}
}

// hugeMatrix reports more rows than a uint32 can index without storing them.
type hugeMatrix struct{ rows int }

func (h hugeMatrix) Dims() (int, int)         { return h.rows, 1 }
func (h hugeMatrix) RawRowView(int) []float64 { return []float64{0} }

func TestRandomInitializer_TooManyRows(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	var rows uint64 = 1 << 32
	ri := &RandomInitializer{Rand: rand.New(rand.NewSource(1))}

	_, err := ri.Pick(hugeMatrix{rows: int(rows)}, 2)
	assert.ErrorIs(t, err, ErrTooManyRows)
	assert.NotErrorIs(t, err, ErrTooFewRows)

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, int(rows), ce.Rows)
}

func TestPivots(t *testing.T) {
	tests := []struct {
		n, k     int
		expected []int
	}{
		{4, 2, []int{0, 2}},
		{10, 3, []int{0, 3, 6}},
		{5, 1, []int{0}},
		{2, 4, []int{0, 0, 1, 1}},
		{100, 4, []int{0, 25, 50, 75}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Pivots(tt.n, tt.k), "n=%d k=%d", tt.n, tt.k)
	}
}

func TestQuantileInitializer(t *testing.T) {
	data := testutil.NewRNG(4711).ProductMatrix(50, 4)
	k := 5

	kernels, err := QuantileInitializer{}.Init(data, k)
	require.NoError(t, err)
	require.Len(t, kernels, k)

	n, m := data.Dims()
	pivots := Pivots(n, k)
	for i := range m {
		column := mat.Col(nil, i, data)
		slices.Sort(column)
		for j, p := range pivots {
			assert.Equal(t, column[p], kernels[j][i], "kernel %d dimension %d", j, i)
		}
	}
}

func TestQuantileInitializer_SyntheticKernels(t *testing.T) {
	// Column sorts differ, so the second kernel mixes rows.
	data := mat.NewDense(4, 2, []float64{
		0, 9,
		1, 8,
		2, 7,
		3, 6,
	})

	kernels, err := QuantileInitializer{}.Init(data, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 6}, {2, 8}}, kernels)

	kernels[0][0] = 42
	assert.Equal(t, 0.0, data.At(0, 0))
}

func TestQuantileInitializer_KExceedsRows(t *testing.T) {
	kernels, err := QuantileInitializer{}.Init(fourPoints(), 6)
	require.NoError(t, err)
	assert.Len(t, kernels, 6)
}

func TestQuantileInitializer_Validation(t *testing.T) {
	_, err := QuantileInitializer{}.Init(fourPoints(), 0)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = QuantileInitializer{}.Init(rowMatrix{}, 2)
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}
