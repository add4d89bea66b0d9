package cache

import (
	"context"

	"github.com/dgraph-io/ristretto/v2"
)

// MemoryConnector is the process-local cache driver. The dataset is tiny
// (one entry per chain under a single key, spec.md §9) so a single
// ristretto entry is sufficient. Entries are stored without a TTL;
// freshness is decided by the Cache from the stored lastTestedUnixMs.
type MemoryConnector struct {
	cache *ristretto.Cache[string, []byte]
}

func NewMemoryConnector() *MemoryConnector {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1_000,
		MaxCost:     1 << 24, // 16MiB is generous for a per-chain probe map
		BufferItems: 64,
	})
	if err != nil {
		// NumCounters/MaxCost above are fixed constants, never user input;
		// construction cannot fail in practice.
		panic(err)
	}
	return &MemoryConnector{cache: c}
}

func (m *MemoryConnector) Get(_ context.Context, key string) ([]byte, error) {
	value, found := m.cache.Get(key)
	if !found {
		return nil, ErrNotFound
	}
	return value, nil
}

func (m *MemoryConnector) Set(_ context.Context, key string, value []byte) error {
	m.cache.SetWithTTL(key, value, int64(len(value)), 0)
	m.cache.Wait()
	return nil
}

func (m *MemoryConnector) Close() error {
	m.cache.Close()
	return nil
}
