package kmeans

import "gonum.org/v1/gonum/mat"

// rowMatrix is a Matrix over separately allocated rows. Unlike mat.Dense it
// can be empty.
type rowMatrix [][]float64

func (r rowMatrix) Dims() (int, int) {
	if len(r) == 0 {
		return 0, 0
	}
	return len(r), len(r[0])
}

func (r rowMatrix) RawRowView(i int) []float64 { return r[i] }

func fourPoints() *mat.Dense {
	return mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		10, 0,
		10, 1,
	})
}
