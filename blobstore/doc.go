// Package blobstore provides read access to clustering input stored as blobs.
//
// BlobStore is the interface for opening immutable data blobs by name.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and the S3 transfer manager
//   - minio.Store: MinIO and other S3-compatible services
//
// # Reading
//
// ReadAll fetches a complete blob. Blobs implementing Downloader use their own
// transfer path; all others are fetched as parallel chunked range reads:
//
//	blob, err := store.Open(ctx, "points.csv")
//	if err != nil { ... }
//	defer blob.Close()
//	data, err := blobstore.ReadAll(ctx, blob)
//
// NewReader wraps a blob as a sequential io.Reader.
package blobstore
