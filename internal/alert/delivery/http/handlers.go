package http

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/pkg/response"
)

// List
// @Summary List alerts
// @Description Paginated alerts, critical first. Non-admin callers only see their own hospital.
// @Tags Alert
// @Security Bearer
// @Produce json
// @Param hospital_id query string false "Hospital ID"
// @Param status query string false "open or resolved" default(open)
// @Param severity query string false "low, medium, high or critical"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(15)
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /alerts [GET]
func (h Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.alert.delivery.http.List.List: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// Resolve
// @Summary Resolve alert
// @Description Marks an open alert as resolved. Requires the ADMIN or PLANNER role.
// @Tags Alert
// @Security Bearer
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Resp{data=alertItem}
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Failure 404 {object} response.Resp "Not Found"
// @Router /alerts/{id}/resolve [POST]
func (h Handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processResolveRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	a, err := h.uc.Resolve(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Resolve.Resolve: %v", err)
		response.ErrorWithMap(c, err, errMapping, h.discord)
		return
	}

	response.OK(c, h.newAlertItem(a))
}
