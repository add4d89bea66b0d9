package cache

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ubiquity/permit2-rpc-manager/config"
)

// ErrNotFound is returned by a Connector when the key has never been set.
var ErrNotFound = errors.New("cache: key not found")

// Connector is the pluggable persistent key-value store named in spec.md
// §1 ("a pluggable persistent key-value store for cache durability"). It
// is deliberately narrow: a single key holds the entire CacheRoot
// document (spec.md §6 "Persisted state layout").
type Connector interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// NewConnector builds the Connector named by cfg.Driver.
func NewConnector(ctx context.Context, logger *zerolog.Logger, cfg config.CacheConfig) (Connector, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryConnector(), nil
	case "bbolt":
		return NewBboltConnector(cfg.Bbolt)
	case "redis":
		return NewRedisConnector(ctx, logger, cfg.Redis)
	default:
		return nil, errors.New("cache: unknown driver " + cfg.Driver)
	}
}
