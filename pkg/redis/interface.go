package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type IRedis interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Publish(ctx context.Context, channel string, message interface{}) error
	PSubscribe(ctx context.Context, patterns ...string) *goredis.PubSub
	Close() error
	Ping(ctx context.Context) error
	GetClient() *goredis.Client
}

func New(cfg RedisConfig) (IRedis, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     poolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisImpl{client: client}, nil
}

func (cfg RedisConfig) validate() error {
	if cfg.Host == "" {
		return ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return ErrInvalidPort
	}
	if cfg.DB < 0 || cfg.DB > 15 {
		return ErrInvalidDB
	}
	return nil
}
