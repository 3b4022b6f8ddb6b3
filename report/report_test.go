package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
)

func TestWriteAssignments(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", "0\n0\n1\n1\n"},
		{"header", "kernel", "kernel\n0\n0\n1\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteAssignments(&buf, []int{0, 0, 1, 1}, tt.header))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteAssignments_Error(t *testing.T) {
	err := WriteAssignments(failingWriter{}, []int{1}, "")
	assert.ErrorContains(t, err, "disk full")
}

func TestWriteJSON(t *testing.T) {
	res := &kmeans.Result{
		Assignments: []int{0, 0, 1, 1},
		Centroids:   [][]float64{{0, 0.5}, {10, 0.5}},
		Sizes:       []int{2, 2},
		Iterations:  2,
		Converged:   true,
		Inertia:     1,
	}

	for _, name := range []string{"json", "go-json"} {
		t.Run(name, func(t *testing.T) {
			c, err := codec.ByName(name)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, WriteJSON(&buf, c, res))
			assert.JSONEq(t, `{
				"assignments": [0, 0, 1, 1],
				"centroids": [[0, 0.5], [10, 0.5]],
				"sizes": [2, 2],
				"iterations": 2,
				"movement": 0,
				"converged": true,
				"inertia": 1
			}`, buf.String())

			var back kmeans.Result
			require.NoError(t, c.Unmarshal(buf.Bytes(), &back))
			assert.Equal(t, *res, back)
		})
	}
}

func TestWriteJSON_Nil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteJSON(&buf, nil, nil))
}
