package http

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/pkg/response"
)

// Forecast
// @Summary Admission forecast
// @Description Daily admission forecast with confidence band for one facility scope.
// @Tags Forecast
// @Security Bearer
// @Produce json
// @Param hospital_id query string false "Hospital ID, defaults to the caller's hospital"
// @Param department_id query string false "Department ID"
// @Param horizon query int false "Days ahead" default(7)
// @Param scenario query string false "baseline, high_aqi, festival or combined"
// @Param aqi query number false "AQI override"
// @Param festival query bool false "Festival override"
// @Success 200 {object} response.Resp{data=forecastResp}
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /forecast [GET]
func (h Handler) Forecast(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processForecastRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	fc, err := h.uc.Forecast(ctx, sc, req.toInput(sc))
	if err != nil {
		h.l.Warnf(ctx, "internal.forecast.delivery.http.Forecast.Forecast: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	response.OK(c, h.newForecastResp(fc))
}

// Decision
// @Summary Operational decision
// @Description Forecast, risk, shortage, actions, alerts and recommendations. Plain requests are served from the scheduler cache.
// @Tags Forecast
// @Security Bearer
// @Produce json
// @Param hospital_id query string false "Hospital ID, defaults to the caller's hospital"
// @Param department_id query string false "Department ID"
// @Param horizon query int false "Days ahead" default(7)
// @Param scenario query string false "baseline, high_aqi, festival or combined"
// @Param aqi query number false "AQI override"
// @Param festival query bool false "Festival override"
// @Success 200 {object} response.Resp{data=decisionResp}
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /decision [GET]
func (h Handler) Decision(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processForecastRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	d, err := h.uc.Decide(ctx, sc, req.toInput(sc))
	if err != nil {
		h.l.Warnf(ctx, "internal.forecast.delivery.http.Decision.Decide: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	response.OK(c, h.newDecisionResp(d))
}

// Scenarios
// @Summary Scenario comparison
// @Description Baseline, high_aqi, festival and combined scenarios evaluated on the same inputs.
// @Tags Forecast
// @Security Bearer
// @Produce json
// @Param hospital_id query string false "Hospital ID, defaults to the caller's hospital"
// @Param department_id query string false "Department ID"
// @Param horizon query int false "Days ahead" default(7)
// @Success 200 {object} response.Resp{data=[]scenarioResp}
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /scenarios [GET]
func (h Handler) Scenarios(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processScenariosRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	results, err := h.uc.Scenarios(ctx, sc, req.toScenariosInput(sc))
	if err != nil {
		h.l.Warnf(ctx, "internal.forecast.delivery.http.Scenarios.Scenarios: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	response.OK(c, h.newScenariosResp(results))
}

// Report
// @Summary Export forecast report
// @Description Renders the decision as an Excel workbook, archives it and returns a presigned download URL.
// @Tags Report
// @Security Bearer
// @Accept json
// @Produce json
// @Param body body ForecastReq true "Facility and scenario"
// @Success 200 {object} response.Resp{data=reportResp}
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Failure 503 {object} response.Resp "Storage unavailable"
// @Router /reports/forecast [POST]
func (h Handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processReportRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	o, err := h.uc.Report(ctx, sc, req.toInput(sc))
	if err != nil {
		h.l.Errorf(ctx, "internal.forecast.delivery.http.Report.Report: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}
