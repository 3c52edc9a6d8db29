package minio

import (
	"strings"
	"time"
)

const (
	maxObjectSize = 5 << 30
	maxExpiry     = 7 * 24 * time.Hour
)

func (cfg Config) validate() error {
	switch {
	case cfg.Endpoint == "":
		return invalidInput("endpoint is required")
	case cfg.AccessKey == "":
		return invalidInput("access key is required")
	case cfg.SecretKey == "":
		return invalidInput("secret key is required")
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return invalidInput("upload request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Reader == nil {
		return invalidInput("reader is required")
	}
	if req.Size <= 0 {
		return invalidInput("size must be positive")
	}
	if req.Size > maxObjectSize {
		return invalidInput("file size cannot exceed 5GB")
	}
	if req.ContentType == "" {
		return invalidInput("content type is required")
	}
	return nil
}

func validatePresignedURLRequest(req *PresignedURLRequest) error {
	if req == nil {
		return invalidInput("presigned request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Expiry <= 0 {
		return invalidInput("expiry must be positive")
	}
	if req.Expiry > maxExpiry {
		return invalidInput("expiry cannot exceed 7 days")
	}
	return nil
}

// validateBucketName applies the S3 bucket naming rules.
func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return invalidInput("bucket name must be 3 to 63 characters")
	}
	for _, char := range bucketName {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-') {
			return invalidInput("bucket name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if strings.Contains(bucketName, "--") {
		return invalidInput("bucket name cannot contain consecutive hyphens")
	}
	if strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return invalidInput("bucket name cannot start or end with hyphen")
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return invalidInput("object name is required")
	}
	if strings.HasPrefix(objectName, "/") || strings.HasSuffix(objectName, "/") {
		return invalidInput("object name cannot start or end with '/'")
	}
	if strings.Contains(objectName, "\\") {
		return invalidInput("object name cannot contain backslashes")
	}
	return nil
}

// BuildObjectPath joins non-empty parts with '/' and trims stray slashes.
func BuildObjectPath(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.Trim(part, "/"); p != "" {
			clean = append(clean, p)
		}
	}
	return strings.Join(clean, "/")
}
