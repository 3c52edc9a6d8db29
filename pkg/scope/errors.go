package scope

import "errors"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("scope: secret key cannot be empty")
)
