package http

import (
	"net/http"

	"pulse-srv/internal/forecast"
	"pulse-srv/pkg/errors"
	"pulse-srv/pkg/response"
)

var (
	errWrongQuery        = errors.NewHTTPError(120001, "Wrong query", http.StatusBadRequest)
	errWrongBody         = errors.NewHTTPError(120002, "Wrong body", http.StatusBadRequest)
	errInvalidInput      = errors.NewHTTPError(120003, "Invalid forecast parameters", http.StatusBadRequest)
	errReportUnavailable = errors.NewHTTPError(120004, "Report storage is unavailable", http.StatusServiceUnavailable)
	errUnauthorized      = errors.NewUnauthorizedHTTPError()
)

var errMapping = response.ErrorMapping{
	forecast.ErrForbidden:         errors.NewForbiddenHTTPError(),
	forecast.ErrInvalidInput:      errInvalidInput,
	forecast.ErrReportUnavailable: errReportUnavailable,
}
