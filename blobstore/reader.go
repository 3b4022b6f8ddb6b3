package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultChunkSize is the range-read size used by ReadAll.
	DefaultChunkSize = 8 << 20
	// DefaultConcurrency is the number of concurrent range reads used by ReadAll.
	DefaultConcurrency = 8
)

// ReadOptions configures ReadAll.
type ReadOptions struct {
	ChunkSize   int64
	Concurrency int
}

// ReadAll returns the full contents of blob.
//
// Mapped blobs are returned without copying, blobs implementing Downloader use
// Download, and all others are fetched as concurrent chunked ReadAt calls.
func ReadAll(ctx context.Context, blob Blob, optFns ...func(*ReadOptions)) ([]byte, error) {
	opts := ReadOptions{
		ChunkSize:   DefaultChunkSize,
		Concurrency: DefaultConcurrency,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	if m, ok := blob.(Mappable); ok {
		return m.Bytes()
	}
	if d, ok := blob.(Downloader); ok {
		return d.Download(ctx)
	}

	size := blob.Size()
	buf := make([]byte, size)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for off := int64(0); off < size; off += opts.ChunkSize {
		end := min(off+opts.ChunkSize, size)
		g.Go(func() error {
			n, err := blob.ReadAt(gctx, buf[off:end], off)
			if err != nil && !(errors.Is(err, io.EOF) && int64(n) == end-off) {
				return fmt.Errorf("blobstore: read [%d,%d): %w", off, end, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

// NewReader returns a sequential reader over blob.
func NewReader(ctx context.Context, blob Blob) io.Reader {
	return &reader{ctx: ctx, blob: blob}
}

type reader struct {
	ctx  context.Context
	blob Blob
	off  int64
}

func (r *reader) Read(p []byte) (int, error) {
	if r.off >= r.blob.Size() {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if remaining := r.blob.Size() - r.off; int64(len(p)) > remaining {
		p = p[:remaining]
	}
	n, err := r.blob.ReadAt(r.ctx, p, r.off)
	r.off += int64(n)
	if errors.Is(err, io.EOF) && n > 0 {
		err = nil
	}
	return n, err
}
