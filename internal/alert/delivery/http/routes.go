package http

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/internal/middleware"
)

func (h Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Auth())
	{
		alerts.GET("", h.List)
		alerts.POST("/:id/resolve", h.Resolve)
	}
}
