package forecast

import "errors"

var (
	ErrForbidden         = errors.New("not allowed to access this facility")
	ErrInvalidInput      = errors.New("invalid forecast input")
	ErrReportUnavailable = errors.New("report storage is unavailable")
)
