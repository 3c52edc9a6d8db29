package minio

import (
	"errors"
	"fmt"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestHandleMinIOError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantIs   error
	}{
		{name: "missing bucket", err: minio.ErrorResponse{Code: "NoSuchBucket", BucketName: "pulse-reports"}, wantCode: CodeNotFound, wantIs: ErrNotFound},
		{name: "missing key", err: minio.ErrorResponse{Code: "NoSuchKey", Key: "forecast/H1/ED/a.xlsx"}, wantCode: CodeNotFound, wantIs: ErrNotFound},
		{name: "denied", err: minio.ErrorResponse{Code: "AccessDenied"}, wantCode: CodeDenied, wantIs: ErrDenied},
		{name: "other s3 code", err: minio.ErrorResponse{Code: "SlowDown"}, wantCode: CodeUnavailable, wantIs: ErrUnavailable},
		{name: "network", err: errors.New("dial tcp: connection refused"), wantCode: CodeUnavailable, wantIs: ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleMinIOError(tt.err, "upload_file")

			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, "upload_file", got.Operation)
			wrapped := fmt.Errorf("report: %w", got)
			assert.ErrorIs(t, wrapped, tt.wantIs)
			for _, other := range []error{ErrUnavailable, ErrNotFound, ErrDenied, ErrInvalidInput} {
				if other != tt.wantIs {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestStorageError_Error(t *testing.T) {
	assert.Equal(t, "minio: upload_file: storage unreachable: boom", unavailable("upload_file", errors.New("boom")).Error())
	assert.Equal(t, "minio: size must be positive", invalidInput("size must be positive").Error())
}
