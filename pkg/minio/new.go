package minio

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// Storage is the object store used for exported reports.
type Storage interface {
	// Connect verifies the endpoint and credentials.
	Connect(ctx context.Context) error
	// ConnectWithRetry retries Connect with exponential backoff.
	ConnectWithRetry(ctx context.Context, maxRetries int) error
	HealthCheck(ctx context.Context) error
	Close() error

	// EnsureBucket creates the bucket when it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error

	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
}

type implMinIO struct {
	client    *minio.Client
	config    Config
	mu        sync.RWMutex
	connected bool
}

// New builds a client. It does not dial; call Connect before use.
func New(cfg Config) (Storage, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  true,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{client: client, config: cfg}, nil
}

// UploadRequest describes one object to store.
type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}
