// Package hashcache persists the per-platform table of computed secondary hashes.
//
// Each platform owns one JSON object mapping the raw catalog launch path to the
// lower-case hash computed for it. The table is rewritten in full after every
// indexing pass so that the persisted file always mirrors memory.
//
// Two backends implement reconcile.HashCacheStore:
//
//   - FileStore: <dir>/<platform>.json on local disk, replaced atomically
//     through a temporary file.
//   - ObjectStore: <prefix>/<platform>.json in an S3/MinIO bucket, for sharing
//     computed hashes between machines.
//
// # Usage
//
//	store, err := hashcache.New(ctx, cfg.Cache, storageClient, cfg.Storage.Bucket, cfg.Storage.Region)
//	local := reconcile.NewLocalBuilder(catalog, hasher, store, resolver, log)
package hashcache
