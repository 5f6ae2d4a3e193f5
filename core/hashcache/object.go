package hashcache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"cheevo-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps one JSON object per platform in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates an ObjectStore writing under prefix in bucket.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key of partition.
func (s *ObjectStore) Key(partition string) string {
	return path.Join(s.prefix, fileName(partition))
}

// Load downloads the cache of partition. A missing object yields an empty table.
func (s *ObjectStore) Load(ctx context.Context, partition string) (map[string]string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.Key(partition), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("get hash cache object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read hash cache object: %w", err)
	}
	return decode(data)
}

// Save uploads entries as the cache of partition.
func (s *ObjectStore) Save(ctx context.Context, partition string, entries map[string]string) error {
	data, err := encode(entries)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.Key(partition), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put hash cache object: %w", err)
	}
	return nil
}
