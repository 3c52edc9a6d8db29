package http

import (
	"net/http"

	"pulse-srv/internal/alert"
	"pulse-srv/pkg/errors"
	"pulse-srv/pkg/response"
)

var (
	errWrongQuery   = errors.NewHTTPError(110001, "Wrong query", http.StatusBadRequest)
	errNotFound     = errors.NewNotFoundHTTPError("Alert not found")
	errUnauthorized = errors.NewUnauthorizedHTTPError()
)

var errMapping = response.ErrorMapping{
	alert.ErrNotFound:     errNotFound,
	alert.ErrForbidden:    errors.NewForbiddenHTTPError(),
	alert.ErrInvalidInput: errWrongQuery,
}
