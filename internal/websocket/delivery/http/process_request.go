package http

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/internal/middleware"
	"pulse-srv/internal/model"
	ws "pulse-srv/internal/websocket"
	"pulse-srv/pkg/scope"
)

// processUpgradeRequest authenticates the caller before the protocol switch.
// Browsers cannot set headers on websocket requests, so the token is read
// from the query first and from the Authorization header second.
func (h *Handler) processUpgradeRequest(c *gin.Context) (UpgradeReq, model.Scope, error) {
	var req UpgradeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return UpgradeReq{}, model.Scope{}, ws.ErrInvalidMessage
	}

	if req.Token == "" {
		if token, ok := middleware.BearerToken(c.GetHeader("Authorization")); ok {
			req.Token = token
		}
	}
	if err := req.validate(); err != nil {
		return UpgradeReq{}, model.Scope{}, err
	}

	payload, err := h.jwtMgr.Verify(req.Token)
	if err != nil {
		h.logger.Warnf(c.Request.Context(), "internal.websocket.delivery.http.processUpgradeRequest: %v", err)
		return UpgradeReq{}, model.Scope{}, ws.ErrInvalidToken
	}

	sc := scope.NewScope(payload)
	if req.HospitalID != "" && !sc.CanAccessHospital(req.HospitalID) {
		return UpgradeReq{}, model.Scope{}, ws.ErrHospitalForbidden
	}
	return req, sc, nil
}
