package http

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/internal/model"
	"pulse-srv/pkg/scope"
)

func (h Handler) processForecastRequest(c *gin.Context) (ForecastReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return ForecastReq{}, model.Scope{}, errUnauthorized
	}

	var req ForecastReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.forecast.delivery.http.processForecastRequest.ShouldBindQuery: %v", err)
		return ForecastReq{}, model.Scope{}, errWrongQuery
	}
	if err := req.validate(); err != nil {
		return ForecastReq{}, model.Scope{}, err
	}
	return req, sc, nil
}

func (h Handler) processScenariosRequest(c *gin.Context) (FacilityReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return FacilityReq{}, model.Scope{}, errUnauthorized
	}

	var req FacilityReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.forecast.delivery.http.processScenariosRequest.ShouldBindQuery: %v", err)
		return FacilityReq{}, model.Scope{}, errWrongQuery
	}
	if err := (ForecastReq{FacilityReq: req}).validate(); err != nil {
		return FacilityReq{}, model.Scope{}, err
	}
	return req, sc, nil
}

func (h Handler) processReportRequest(c *gin.Context) (ForecastReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return ForecastReq{}, model.Scope{}, errUnauthorized
	}

	var req ForecastReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.forecast.delivery.http.processReportRequest.ShouldBindJSON: %v", err)
		return ForecastReq{}, model.Scope{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return ForecastReq{}, model.Scope{}, err
	}
	return req, sc, nil
}
