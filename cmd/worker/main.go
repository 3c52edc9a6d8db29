package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pulse-srv/config"
	configEngine "pulse-srv/config/engine"
	"pulse-srv/config/postgre"
	configRedis "pulse-srv/config/redis"
	alertRepo "pulse-srv/internal/alert/repository/postgre"
	alertUC "pulse-srv/internal/alert/usecase"
	"pulse-srv/internal/forecast"
	forecastUC "pulse-srv/internal/forecast/usecase"
	"pulse-srv/internal/scheduler"
	signalRepo "pulse-srv/internal/signal/repository/postgre"
	"pulse-srv/pkg/discord"
	"pulse-srv/pkg/log"
)

// The worker re-runs the full pipeline for every configured scope on an
// interval, persisting forecasts and shortages and raising alerts.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Service:      "pulse-worker",
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scopes, err := scheduler.ParseScopes(cfg.Scheduler.Scopes)
	if err != nil {
		logger.Errorf(ctx, "Invalid scheduler scopes: %v", err)
		return
	}

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(ctx)

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()

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

	eng, err := configEngine.Connect(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize engine: %v", err)
		return
	}

	alertUsecase := alertUC.New(logger, alertRepo.New(logger, postgresDB), redisClient, discordClient)
	forecastUsecase := forecastUC.New(logger, eng, signalRepo.New(logger, postgresDB), alertUsecase, redisClient, nil, forecast.Config{
		DefaultHorizon: cfg.Engine.Horizon,
		HistoryWindow:  cfg.Engine.HistoryWindow,
		CacheTTL:       cfg.Engine.CacheTTL,
		ModelVersion:   cfg.Engine.ModelVersion,
	})

	s, err := scheduler.New(logger, forecastUsecase, scheduler.Config{
		Interval:    cfg.Scheduler.Interval,
		Concurrency: cfg.Scheduler.Concurrency,
		Horizon:     cfg.Scheduler.Horizon,
		RunTimeout:  cfg.Scheduler.RunTimeout,
		Scopes:      scopes,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize scheduler: %v", err)
		return
	}

	if err := s.Start(ctx); err != nil {
		logger.Errorf(ctx, "Scheduler stopped: %v", err)
	}
	logger.Info(ctx, "Worker stopped gracefully")
}
