package minio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		wantErr bool
	}{
		{name: "valid", bucket: "pulse-reports"},
		{name: "too short", bucket: "ab", wantErr: true},
		{name: "too long", bucket: strings.Repeat("a", 64), wantErr: true},
		{name: "uppercase", bucket: "Reports", wantErr: true},
		{name: "double hyphen", bucket: "pulse--reports", wantErr: true},
		{name: "edge hyphen", bucket: "-reports", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBucketName(tt.bucket)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateUploadRequest(t *testing.T) {
	valid := func() *UploadRequest {
		return &UploadRequest{
			BucketName:  "pulse-reports",
			ObjectName:  "forecast/H1/ED/report.xlsx",
			Reader:      strings.NewReader("x"),
			Size:        1,
			ContentType: "application/octet-stream",
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *UploadRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *UploadRequest) {}},
		{name: "no reader", mutate: func(r *UploadRequest) { r.Reader = nil }, wantErr: true},
		{name: "empty", mutate: func(r *UploadRequest) { r.Size = 0 }, wantErr: true},
		{name: "leading slash", mutate: func(r *UploadRequest) { r.ObjectName = "/x.xlsx" }, wantErr: true},
		{name: "no content type", mutate: func(r *UploadRequest) { r.ContentType = "" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			err := validateUploadRequest(req)
			if tt.wantErr {
				var se *StorageError
				assert.ErrorAs(t, err, &se)
				assert.Equal(t, CodeInvalidInput, se.Code)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePresignedURLRequest(t *testing.T) {
	req := &PresignedURLRequest{BucketName: "pulse-reports", ObjectName: "a.xlsx", Expiry: time.Hour}
	assert.NoError(t, validatePresignedURLRequest(req))

	req.Expiry = 8 * 24 * time.Hour
	assert.Error(t, validatePresignedURLRequest(req))
}

func TestBuildObjectPath(t *testing.T) {
	assert.Equal(t, "forecast/H1/ED/r.xlsx", BuildObjectPath("/forecast/", "", "H1", "ED/", "r.xlsx"))
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(Config{Endpoint: "localhost:9000"})
	assert.Error(t, err)

	_, err = New(Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	assert.NoError(t, err)
}
