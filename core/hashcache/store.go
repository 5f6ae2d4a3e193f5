package hashcache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cheevo-checker/core/storage"
)

// New returns the store selected by cfg.Backend. client and bucket are only
// used by the storage backend.
func New(ctx context.Context, cfg Config, client storage.Client, bucket, region string) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendFile:
		return NewFileStore(cfg.HashesDir), nil
	case BackendStorage:
		if client == nil {
			return nil, fmt.Errorf("hash cache backend %q requires a storage client", cfg.Backend)
		}
		if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
			return nil, err
		}
		return NewObjectStore(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown hash cache backend %q", cfg.Backend)
	}
}

// Store is the persistence contract shared by both backends.
type Store interface {
	Load(ctx context.Context, partition string) (map[string]string, error)
	Save(ctx context.Context, partition string, entries map[string]string) error
}

// fileName maps a platform name to its cache file name.
func fileName(partition string) string {
	r := strings.NewReplacer("/", "_", `\`, "_", ":", "_")
	return r.Replace(partition) + ".json"
}

func encode(entries map[string]string) ([]byte, error) {
	if entries == nil {
		entries = map[string]string{}
	}
	// encoding/json writes map keys sorted, so output is stable between runs
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal hash cache: %w", err)
	}
	return append(data, '\n'), nil
}

func decode(data []byte) (map[string]string, error) {
	entries := make(map[string]string)
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse hash cache: %w", err)
	}
	return entries, nil
}
