package redis

import "errors"

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	ErrInvalidDB    = errors.New("redis: db must be between 0 and 15")
)
