package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse-srv/internal/websocket"
	"pulse-srv/pkg/errors"
	"pulse-srv/pkg/response"
)

var (
	errPostgresUnavailable = errors.NewHTTPError(503, "PostgreSQL connection failed", http.StatusServiceUnavailable)
	errRedisUnavailable    = errors.NewHTTPError(503, "Redis connection failed", http.StatusServiceUnavailable)
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check dependencies and report live connection counts
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "Dependency unavailable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.healthCheck.PingContext: %v", err)
		response.HttpError(c, errPostgresUnavailable)
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.healthCheck.Ping: %v", err)
		response.HttpError(c, errRedisUnavailable)
		return
	}

	storage := "disabled"
	if srv.storage != nil {
		storage = "connected"
		if err := srv.storage.HealthCheck(ctx); err != nil {
			storage = "unavailable"
		}
	}

	hubStats := websocket.HubStats{}
	if srv.wsUC != nil {
		if stats, err := srv.wsUC.GetStats(ctx); err == nil {
			hubStats = stats
		}
	}

	response.OK(c, gin.H{
		"status":             "healthy",
		"version":            serviceVersion,
		"service":            serviceName,
		"postgres":           "connected",
		"redis":              "connected",
		"storage":            storage,
		"active_connections": hubStats.ActiveConnections,
		"total_unique_users": hubStats.TotalUniqueUsers,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		response.HttpError(c, errPostgresUnavailable)
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errRedisUnavailable)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": serviceVersion,
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}
