// Package s3 provides a blobstore.BlobStore backed by Amazon S3.
//
// Blob sizes come from HeadObject; ReadAt issues ranged GetObject calls and
// whole-blob reads go through the S3 transfer manager's concurrent
// downloader.
package s3
