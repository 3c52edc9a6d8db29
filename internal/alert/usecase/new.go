package usecase

import (
	"time"

	"pulse-srv/internal/alert"
	"pulse-srv/internal/alert/repository"
	"pulse-srv/pkg/discord"
	"pulse-srv/pkg/log"
	pkgRedis "pulse-srv/pkg/redis"
)

type implUseCase struct {
	logger  log.Logger
	repo    repository.Repository
	redis   pkgRedis.IRedis
	discord discord.IDiscord
	clock   func() time.Time
}

// New wires the alert use case. redis and discord may be nil, in which case
// live fan-out or chat dispatch is skipped.
func New(logger log.Logger, repo repository.Repository, redis pkgRedis.IRedis, discord discord.IDiscord) alert.UseCase {
	return &implUseCase{
		logger:  logger,
		repo:    repo,
		redis:   redis,
		discord: discord,
		clock:   time.Now,
	}
}
