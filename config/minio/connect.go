package minio

import (
	"context"
	"fmt"

	"pulse-srv/config"
	pkgMinio "pulse-srv/pkg/minio"
)

const defaultMaxRetries = 3

// Connect builds the report store, verifies it and makes sure the report
// bucket exists. It returns nil, nil when no endpoint is configured.
func Connect(ctx context.Context, cfg config.MinIOConfig, bucket string) (pkgMinio.Storage, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	storage, err := pkgMinio.New(pkgMinio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if err := storage.ConnectWithRetry(ctx, defaultMaxRetries); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO %s: %w", cfg.Endpoint, err)
	}

	if err := storage.EnsureBucket(ctx, bucket); err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("failed to prepare bucket %s: %w", bucket, err)
	}

	return storage, nil
}
