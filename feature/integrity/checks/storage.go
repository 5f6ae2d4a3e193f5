package checks

import (
	"context"
	"fmt"

	"cheevo-checker/core/storage"

	"go.uber.org/zap"
)

// StorageReport is the result of the hash cache bucket check.
type StorageReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
}

// CheckStorage reports whether the bucket holding shared hash caches exists.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	if client == nil {
		return nil, fmt.Errorf("storage backend not configured")
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return &StorageReport{Bucket: bucket, Exists: exists}, nil
}

// FixStorage creates the hash cache bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if client == nil {
		return fmt.Errorf("storage backend not configured")
	}
	logger.Info("Creating hash cache bucket", zap.String("bucket", bucket))
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	return nil
}
