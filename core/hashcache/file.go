package hashcache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per platform under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the cache file path of partition.
func (s *FileStore) Path(partition string) string {
	return filepath.Join(s.dir, fileName(partition))
}

// Load reads the cache of partition. A missing file yields an empty table.
func (s *FileStore) Load(_ context.Context, partition string) (map[string]string, error) {
	data, err := os.ReadFile(s.Path(partition))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read hash cache: %w", err)
	}
	return decode(data)
}

// Save replaces the cache file of partition with entries.
func (s *FileStore) Save(_ context.Context, partition string, entries map[string]string) error {
	data, err := encode(entries)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create hash cache directory: %w", err)
	}

	// Concurrent writers each get their own temp file; the last rename wins.
	tmp, err := os.CreateTemp(s.dir, "."+fileName(partition)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path(partition)); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
