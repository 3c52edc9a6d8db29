package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pulse-srv/config"
	configEngine "pulse-srv/config/engine"
	configMinio "pulse-srv/config/minio"
	"pulse-srv/config/postgre"
	configRedis "pulse-srv/config/redis"
	"pulse-srv/internal/forecast"
	"pulse-srv/internal/httpserver"
	"pulse-srv/internal/websocket"
	"pulse-srv/pkg/discord"
	"pulse-srv/pkg/log"
	"pulse-srv/pkg/scope"
)

// @title       Pulse API
// @description Hospital admission forecasting, surge risk and alerting.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /api/v1
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Service:      "pulse-api",
	})
	defer logger.Sync()

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(ctx)
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Redis - decision cache and alert Pub/Sub
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// MinIO - report archive (optional)
	storage, err := configMinio.Connect(ctx, cfg.MinIO, cfg.Report.Bucket)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	if storage == nil {
		logger.Warn(ctx, "MinIO not configured, report export disabled")
	} else {
		defer storage.Close()
	}

	// Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		d, err := discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
		} else {
			discordClient = d
			defer d.Close()
		}
	}

	// JWT manager
	jwtManager, err := scope.New(cfg.JWT.SecretKey)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	eng, err := configEngine.Connect(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize engine: %v", err)
		return
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,

		// Forecasting Configuration
		Engine: eng,
		ForecastCfg: forecast.Config{
			DefaultHorizon:  cfg.Engine.Horizon,
			HistoryWindow:   cfg.Engine.HistoryWindow,
			CacheTTL:        cfg.Engine.CacheTTL,
			ReportBucket:    cfg.Report.Bucket,
			ReportURLExpiry: cfg.Report.URLExpiry,
			ModelVersion:    cfg.Engine.ModelVersion,
		},

		// WebSocket Configuration
		WSConfig: websocket.Config{
			MaxConnections:  cfg.WebSocket.MaxConnections,
			ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
			WriteBufferSize: cfg.WebSocket.WriteBufferSize,
			PongWait:        cfg.WebSocket.PongWait,
			PingPeriod:      cfg.WebSocket.PingInterval,
			WriteWait:       cfg.WebSocket.WriteWait,
			MaxMessageSize:  cfg.WebSocket.MaxMessageSize,
			AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		},

		// Authentication & Security Configuration
		JWTManager: jwtManager,

		// External services
		PostgresDB: postgresDB,
		Redis:      redisClient,
		Storage:    storage,
		Discord:    discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
	logger.Info(ctx, "API server stopped gracefully")
}
