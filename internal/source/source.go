// Package source resolves input locations to readable, decompressed streams.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/kmeans/blobstore"
	minioblob "github.com/hupe1980/kmeans/blobstore/minio"
	s3blob "github.com/hupe1980/kmeans/blobstore/s3"
	"github.com/hupe1980/kmeans/ingest"
)

// Kind is the backend a location refers to.
type Kind int

const (
	Stdin Kind = iota
	Local
	S3
	MinIO
)

func (k Kind) String() string {
	switch k {
	case Stdin:
		return "stdin"
	case Local:
		return "local"
	case S3:
		return "s3"
	case MinIO:
		return "minio"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Environment variables read for minio:// locations.
const (
	EnvMinIOAccessKey = "MINIO_ACCESS_KEY_ID"
	EnvMinIOSecretKey = "MINIO_SECRET_ACCESS_KEY"
	EnvMinIOSecure    = "MINIO_SECURE"
)

// ErrInvalidLocation is returned for a malformed s3:// or minio:// location.
var ErrInvalidLocation = errors.New("source: invalid location")

// Location is a parsed input location.
type Location struct {
	Kind Kind
	// Endpoint is the host[:port] of a MinIO server.
	Endpoint string
	Bucket   string
	// Key is the object key, or the file path for Local.
	Key string
}

// Parse classifies location. "" and "-" mean standard input,
// "s3://bucket/key" and "minio://host[:port]/bucket/key" name objects, and
// anything else is a local path.
func Parse(location string) (Location, error) {
	if location == "" || location == "-" {
		return Location{Kind: Stdin}, nil
	}

	if rest, ok := strings.CutPrefix(location, "s3://"); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Location{}, fmt.Errorf("%w %q: expected s3://bucket/key", ErrInvalidLocation, location)
		}
		return Location{Kind: S3, Bucket: bucket, Key: key}, nil
	}

	if rest, ok := strings.CutPrefix(location, "minio://"); ok {
		parts := strings.SplitN(rest, "/", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return Location{}, fmt.Errorf("%w %q: expected minio://host/bucket/key", ErrInvalidLocation, location)
		}
		return Location{Kind: MinIO, Endpoint: parts[0], Bucket: parts[1], Key: parts[2]}, nil
	}

	return Location{Kind: Local, Key: location}, nil
}

// Option configures Open.
type Option func(*options)

type options struct {
	stdin io.Reader
}

// WithStdin sets the reader used for "-" locations. The default is os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.stdin = r
		}
	}
}

// Open resolves location and returns its decompressed contents. Object store
// blobs are fetched whole before reading starts.
func Open(ctx context.Context, location string, opts ...Option) (io.ReadCloser, error) {
	o := options{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}

	loc, err := Parse(location)
	if err != nil {
		return nil, err
	}

	raw, err := openRaw(ctx, loc, o)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", location, err)
	}

	dec, err := ingest.Decompress(raw)
	if err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("source: open %s: %w", location, err)
	}

	return &stream{Reader: dec, closers: []io.Closer{dec, raw}}, nil
}

func openRaw(ctx context.Context, loc Location, o options) (io.ReadCloser, error) {
	switch loc.Kind {
	case Stdin:
		return io.NopCloser(o.stdin), nil
	case Local:
		return openBlob(ctx, blobstore.NewLocalStore(""), loc.Key)
	case S3:
		store, err := newS3Store(ctx, loc.Bucket)
		if err != nil {
			return nil, err
		}
		return openBlob(ctx, store, loc.Key)
	case MinIO:
		store, err := newMinIOStore(loc.Endpoint, loc.Bucket)
		if err != nil {
			return nil, err
		}
		return openBlob(ctx, store, loc.Key)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %s", ErrInvalidLocation, loc.Kind)
	}
}

func newS3Store(ctx context.Context, bucket string) (*s3blob.Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3blob.NewStore(s3.NewFromConfig(cfg), bucket, ""), nil
}

func newMinIOStore(endpoint, bucket string) (*minioblob.Store, error) {
	secure := false
	if v := os.Getenv(EnvMinIOSecure); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvMinIOSecure, err)
		}
		secure = b
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv(EnvMinIOAccessKey), os.Getenv(EnvMinIOSecretKey), ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return minioblob.NewStore(client, bucket, ""), nil
}

func openBlob(ctx context.Context, store blobstore.BlobStore, name string) (io.ReadCloser, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}
	return &stream{Reader: bytes.NewReader(data), closers: []io.Closer{blob}}, nil
}

// stream closes its closers in order and reports the first error.
type stream struct {
	io.Reader
	closers []io.Closer
}

func (s *stream) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}
