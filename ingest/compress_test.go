package ingest

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "0,0\n0,1\n10,0\n10,1\n"

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, s string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func lz4ed(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Compression
	}{
		{"plain", []byte(sample), None},
		{"gzip", gzipped(t, sample), Gzip},
		{"zstd", zstded(t, sample), Zstd},
		{"lz4", lz4ed(t, sample), LZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.data))

			rc, err := Decompress(bytes.NewReader(tt.data))
			require.NoError(t, err)
			defer func() { _ = rc.Close() }()

			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, sample, string(got))
		})
	}
}

func TestDecompress_Short(t *testing.T) {
	rc, err := Decompress(strings.NewReader("1"))
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))
}

func TestDecompress_Corrupt(t *testing.T) {
	_, err := Decompress(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	assert.Error(t, err)
}

func TestDecompress_Read(t *testing.T) {
	rc, err := Decompress(bytes.NewReader(zstded(t, sample)))
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	m, stats, err := Read(context.Background(), rc, opts(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Rows)
	assert.Equal(t, []float64{10, 1}, m.RawRowView(3))
}
