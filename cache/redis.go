package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ubiquity/permit2-rpc-manager/config"
)

// RedisConnector is the shared/remote cache driver, used when multiple
// proxy instances must share the same probe cache.
type RedisConnector struct {
	logger *zerolog.Logger
	client *redis.Client
}

func NewRedisConnector(ctx context.Context, logger *zerolog.Logger, cfg config.RedisConfig) (*RedisConnector, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := client.Ping(pingCtx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisConnector{logger: logger, client: client}, nil
}

func (r *RedisConnector) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (r *RedisConnector) Set(ctx context.Context, key string, value []byte) error {
	// The cache root has no TTL of its own; freshness is governed by the
	// lastTestedUnixMs field the Selector checks on read (spec.md §4.3).
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisConnector) Close() error {
	return r.client.Close()
}
