package minio

import (
	"errors"
	"fmt"
)

// Error codes carried by StorageError.
const (
	CodeUnavailable  = "STORAGE_UNAVAILABLE"
	CodeNotFound     = "NOT_FOUND"
	CodeDenied       = "ACCESS_DENIED"
	CodeInvalidInput = "INVALID_INPUT"
)

// Sentinels matched by StorageError.Is on its code.
var (
	ErrUnavailable  = errors.New("minio: storage unavailable")
	ErrNotFound     = errors.New("minio: bucket or object not found")
	ErrDenied       = errors.New("minio: access denied")
	ErrInvalidInput = errors.New("minio: invalid input")
)

var codeSentinels = map[string]error{
	CodeUnavailable:  ErrUnavailable,
	CodeNotFound:     ErrNotFound,
	CodeDenied:       ErrDenied,
	CodeInvalidInput: ErrInvalidInput,
}

// StorageError is returned by every Storage method.
type StorageError struct {
	Code      string `json:"code"`
	Operation string `json:"operation,omitempty"`
	Message   string `json:"message"`
	Cause     error  `json:"-"`
}

func (e *StorageError) Error() string {
	msg := e.Message
	if e.Operation != "" {
		msg = e.Operation + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("minio: %s: %v", msg, e.Cause)
	}
	return "minio: " + msg
}

func (e *StorageError) Unwrap() error { return e.Cause }

// Is lets callers match on the sentinels, e.g. errors.Is(err, ErrUnavailable).
func (e *StorageError) Is(target error) bool {
	return codeSentinels[e.Code] == target
}

func unavailable(op string, cause error) *StorageError {
	return &StorageError{Code: CodeUnavailable, Operation: op, Message: "storage unreachable", Cause: cause}
}

func notFound(op, what string) *StorageError {
	return &StorageError{Code: CodeNotFound, Operation: op, Message: what + " not found"}
}

func invalidInput(message string) *StorageError {
	return &StorageError{Code: CodeInvalidInput, Message: message}
}
