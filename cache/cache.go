package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ubiquity/permit2-rpc-manager/common"
	"github.com/ubiquity/permit2-rpc-manager/probe"
)

// Cache persists one Root value under one KV key and exposes per-chain
// read/write with TTL semantics (spec.md §4.3).
type Cache struct {
	connector Connector
	key       string
	ttl       time.Duration
	disabled  bool
	logger    *zerolog.Logger

	// mu serializes the read-modify-write cycle of Put against the shared
	// whole-root key so two chains' writes never clobber each other.
	mu sync.Mutex
}

func New(connector Connector, key string, ttl time.Duration, disabled bool, logger *zerolog.Logger) *Cache {
	return &Cache{
		connector: connector,
		key:       key,
		ttl:       ttl,
		disabled:  disabled,
		logger:    logger,
	}
}

// GetFresh returns the entry for chainId only if it is within TTL; in
// disabled mode it always returns nil.
func (c *Cache) GetFresh(ctx context.Context, chainId uint64) *Entry {
	if c.disabled {
		return nil
	}

	entry := c.GetRaw(ctx, chainId)
	if entry == nil {
		return nil
	}
	if !c.IsFresh(entry.LastTestedUnixMs) {
		return nil
	}
	return entry
}

// GetRaw returns whatever is stored for chainId regardless of freshness,
// used by the Selector to detect invalidated tiers (spec.md §4.4).
func (c *Cache) GetRaw(ctx context.Context, chainId uint64) *Entry {
	root, err := c.readRoot(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("cache read failed, treating as miss")
		return nil
	}

	entry, ok := root[chainIdKey(chainId)]
	if !ok {
		return nil
	}
	return &entry
}

// Put replaces the entry for chainId with lastTested = now and persists
// the entire root atomically. In disabled mode it is a no-op. urlOrder is
// the whitelist order the URLs were probed in (see Entry.URLOrder).
func (c *Cache) Put(ctx context.Context, chainId uint64, probeMap map[string]probe.Result, urlOrder []string, fastestURL string) {
	if c.disabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	root, err := c.readRoot(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("cache read-before-write failed, starting from empty root")
		root = Root{}
	}

	root[chainIdKey(chainId)] = Entry{
		LastTestedUnixMs: time.Now().UnixMilli(),
		ProbeMap:         probeMap,
		URLOrder:         urlOrder,
		FastestURL:       fastestURL,
	}

	data, err := common.JSONCfg.Marshal(root)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to marshal cache root, dropping write")
		return
	}

	if err := c.connector.Set(ctx, c.key, data); err != nil {
		c.logger.Warn().Err(err).Msg("cache write failed, selection for this call still proceeds")
	}
}

// IsFresh reports whether an entry last tested at lastTestedUnixMs is
// still within the cache's TTL.
func (c *Cache) IsFresh(lastTestedUnixMs int64) bool {
	age := time.Since(time.UnixMilli(lastTestedUnixMs))
	return age < c.ttl
}

func (c *Cache) readRoot(ctx context.Context) (Root, error) {
	data, err := c.connector.Get(ctx, c.key)
	if err != nil {
		if err == ErrNotFound {
			return Root{}, nil
		}
		return nil, err
	}

	var root Root
	if err := common.JSONCfg.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		root = Root{}
	}
	return root, nil
}

func chainIdKey(chainId uint64) string {
	return strconv.FormatUint(chainId, 10)
}
