package http

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/internal/model"
	"pulse-srv/pkg/scope"
)

func (h Handler) processListRequest(c *gin.Context) (ListReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return ListReq{}, model.Scope{}, errUnauthorized
	}

	var req ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.processListRequest.ShouldBindQuery: %v", err)
		return ListReq{}, model.Scope{}, errWrongQuery
	}
	if err := req.validate(); err != nil {
		return ListReq{}, model.Scope{}, err
	}
	return req, sc, nil
}

func (h Handler) processResolveRequest(c *gin.Context) (string, model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return "", model.Scope{}, errUnauthorized
	}
	id := c.Param("id")
	if id == "" {
		return "", model.Scope{}, errWrongQuery
	}
	return id, sc, nil
}
