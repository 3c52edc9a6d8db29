package httpserver

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pulse-srv/internal/engine"
	"pulse-srv/internal/forecast"
	"pulse-srv/internal/websocket"
	"pulse-srv/internal/websocket/delivery/redis"
	"pulse-srv/pkg/discord"
	"pulse-srv/pkg/log"
	"pulse-srv/pkg/minio"
	pkgRedis "pulse-srv/pkg/redis"
	"pulse-srv/pkg/scope"
)

const (
	serviceName     = "pulse-srv"
	serviceVersion  = "1.0.0"
	shutdownTimeout = 30 * time.Second
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting background services and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin            *gin.Engine
	server         *http.Server
	l              log.Logger
	host           string
	port           int
	allowedOrigins []string

	// Forecasting
	engine      engine.Engine
	forecastCfg forecast.Config

	// WebSocket core
	wsUC         websocket.UseCase
	wsSubscriber redis.Subscriber
	wsConfig     websocket.Config

	// Auth & security
	jwtMgr scope.Manager

	// External services
	postgresDB *sql.DB
	redis      pkgRedis.IRedis
	storage    minio.Storage
	discord    discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string

	// Forecasting
	Engine      engine.Engine
	ForecastCfg forecast.Config

	// WebSocket configuration
	WSConfig websocket.Config

	// Auth & security
	JWTManager scope.Manager

	// External services. Storage and Discord are optional.
	PostgresDB *sql.DB
	Redis      pkgRedis.IRedis
	Storage    minio.Storage
	Discord    discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:            gin.New(),
		l:              logger,
		host:           cfg.Host,
		port:           cfg.Port,
		allowedOrigins: cfg.AllowedOrigins,

		engine:      cfg.Engine,
		forecastCfg: cfg.ForecastCfg,

		wsConfig: cfg.WSConfig,

		jwtMgr: cfg.JWTManager,

		postgresDB: cfg.PostgresDB,
		redis:      cfg.Redis,
		storage:    cfg.Storage,
		discord:    cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.postgresDB == nil {
		return errors.New("PostgresDB is required")
	}
	if srv.redis == nil {
		return errors.New("Redis client is required")
	}
	return nil
}
