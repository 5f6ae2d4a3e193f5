// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so that computed hash
// caches can be shared between machines through AWS S3 or a self-hosted MinIO
// instance instead of the local hashes directory.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed (see EnsureBucket).
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream. Missing keys are reported as
//     errors recognised by IsNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
