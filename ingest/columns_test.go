package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumns(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []int
	}{
		{"single", []string{"3"}, []int{3}},
		{"list", []string{"0", "2", "1"}, []int{0, 2, 1}},
		{"range", []string{"5-9"}, []int{5, 6, 7, 8, 9}},
		{"mixed", []string{"0", "2-3"}, []int{0, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumns(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColumns_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"x"}},
		{"negative", []string{"-1"}},
		{"reversed range", []string{"9-5"}},
		{"empty range", []string{"4-4"}},
		{"open range", []string{"4-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseColumns(tt.args)
			assert.ErrorIs(t, err, ErrInvalidColumn)
			assert.Contains(t, err.Error(), tt.args[0])
		})
	}

	_, err := ParseColumns(nil)
	assert.ErrorIs(t, err, ErrNoColumns)
}
