package http

import (
	"net/http"

	ws "pulse-srv/internal/websocket"
	"pulse-srv/pkg/errors"
)

func (h *Handler) mapError(err error) *errors.HTTPError {
	switch err {
	case ws.ErrInvalidToken:
		return errors.NewHTTPError(401, "Invalid or expired token", http.StatusUnauthorized)
	case ws.ErrMissingToken:
		return errors.NewHTTPError(401, "Missing authentication token", http.StatusUnauthorized)
	case ws.ErrHospitalForbidden:
		return errors.NewForbiddenHTTPError()
	case ws.ErrInvalidMessage:
		return errors.NewHTTPError(400, "Invalid upgrade request", http.StatusBadRequest)
	case ws.ErrMaxConnectionsReached:
		return errors.NewHTTPError(503, "Maximum connections reached", http.StatusServiceUnavailable)
	}
	panic(err)
}
