package alert

import "errors"

var (
	ErrDispatchFailed = errors.New("failed to dispatch alert")
	ErrInvalidInput   = errors.New("invalid alert input")
	ErrNotFound       = errors.New("alert not found")
	ErrForbidden      = errors.New("not allowed to access this alert")
)
