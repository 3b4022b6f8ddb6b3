// Package minio provides a blobstore.BlobStore backed by MinIO or any other
// S3-compatible object store.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "datasets", "")
//	blob, err := store.Open(ctx, "points.csv")
package minio
