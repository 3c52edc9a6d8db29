package http

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/internal/middleware"
)

// RegisterRoutes mounts the upgrade endpoint without the auth middleware because
// browsers cannot send an Authorization header on websocket requests.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	ws := r.Group("/ws")
	{
		ws.GET("", h.HandleWebSocket)
		ws.GET("/stats", mw.Auth(), h.Stats)
	}
}
