package http

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/internal/middleware"
)

func (h Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/forecast", mw.Auth(), h.Forecast)
	r.GET("/decision", mw.Auth(), h.Decision)
	r.GET("/scenarios", mw.Auth(), h.Scenarios)
	r.POST("/reports/forecast", mw.Auth(), h.Report)
}
