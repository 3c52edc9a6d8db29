package redis

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"pulse-srv/internal/websocket"
	"pulse-srv/pkg/log"
	pkgRedis "pulse-srv/pkg/redis"
)

type Subscriber interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type subscriber struct {
	redis  pkgRedis.IRedis
	uc     websocket.UseCase
	logger log.Logger

	pubsub *redis.PubSub
	wg     sync.WaitGroup
	quit   chan struct{}
}

func New(redis pkgRedis.IRedis, uc websocket.UseCase, logger log.Logger) Subscriber {
	return &subscriber{
		redis:  redis,
		uc:     uc,
		logger: logger,
		quit:   make(chan struct{}),
	}
}
