package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pulse-srv/pkg/response"
)

// HandleWebSocket upgrades the HTTP connection to a WebSocket connection.
// @Summary Live alert stream
// @Description Upgrade HTTP to WebSocket for real-time hospital alerts. Requires a JWT in query 'token' or the Authorization header.
// @Tags Alert
// @Param token query string false "JWT Token"
// @Param hospital_id query string false "Hospital filter"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /ws [GET]
func (h *Handler) HandleWebSocket(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpgradeRequest(c)
	if err != nil {
		response.HttpError(c, h.mapError(err))
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  h.wsConfig.ReadBufferSize,
		WriteBufferSize: h.wsConfig.WriteBufferSize,
		CheckOrigin:     h.checkOrigin,
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnf(ctx, "internal.websocket.delivery.http.HandleWebSocket.Upgrade: %v", err)
		return
	}

	if err := h.uc.Register(ctx, req.toInput(conn, sc)); err != nil {
		h.logger.Warnf(ctx, "internal.websocket.delivery.http.HandleWebSocket.Register: %v", err)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()))
		conn.Close()
	}
}

// Stats returns hub counters.
// @Summary Websocket stats
// @Tags Alert
// @Security Bearer
// @Produce json
// @Success 200 {object} response.Resp{data=websocket.HubStats}
// @Router /ws/stats [GET]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.uc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	response.OK(c, stats)
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.wsConfig.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range h.wsConfig.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
