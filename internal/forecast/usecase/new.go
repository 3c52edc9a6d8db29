package usecase

import (
	"time"

	"pulse-srv/internal/alert"
	"pulse-srv/internal/engine"
	"pulse-srv/internal/forecast"
	"pulse-srv/internal/signal/repository"
	"pulse-srv/pkg/log"
	"pulse-srv/pkg/minio"
	pkgRedis "pulse-srv/pkg/redis"
)

const (
	defaultCacheTTL        = 6 * time.Hour
	defaultReportURLExpiry = 24 * time.Hour
	upcomingFestivalDays   = 30
)

type implUseCase struct {
	l       log.Logger
	engine  engine.Engine
	repo    repository.Repository
	alertUC alert.UseCase
	redis   pkgRedis.IRedis
	storage minio.Storage
	cfg     forecast.Config
	clock   func() time.Time
}

var _ forecast.UseCase = &implUseCase{}

// New wires the forecast use case. redis and storage may be nil: decisions are
// then never cached and reports are unavailable.
func New(
	l log.Logger,
	eng engine.Engine,
	repo repository.Repository,
	alertUC alert.UseCase,
	redis pkgRedis.IRedis,
	storage minio.Storage,
	cfg forecast.Config,
) forecast.UseCase {
	if cfg.DefaultHorizon <= 0 {
		cfg.DefaultHorizon = engine.DefaultHorizon
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = engine.DefaultHistoryWindow
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.ReportURLExpiry <= 0 {
		cfg.ReportURLExpiry = defaultReportURLExpiry
	}
	return &implUseCase{
		l:       l,
		engine:  eng,
		repo:    repo,
		alertUC: alertUC,
		redis:   redis,
		storage: storage,
		cfg:     cfg,
		clock:   time.Now,
	}
}
