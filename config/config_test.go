package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte(`logLevel: debug`), 0o644))

	cfg, err := LoadConfig(fs, "/cfg.yaml")
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "0.0.0.0", cfg.Server.HttpHost)
	require.Equal(t, "8080", cfg.Server.HttpPort)
	require.Equal(t, DefaultMaxBatchSize, cfg.Server.MaxBatchSize)
	require.Equal(t, "memory", cfg.Cache.Driver)
	require.Equal(t, DefaultCacheTtl, cfg.Cache.TtlMs.Duration())
	require.Equal(t, DefaultCacheKey, cfg.Cache.CacheKey)
	require.Equal(t, DefaultLatencyTimeout, cfg.Prober.LatencyTimeoutMs.Duration())
	require.Equal(t, DefaultRequestTimeout, cfg.Dispatcher.RequestTimeoutMs.Duration())
}

func TestLoadConfigHonorsExplicitValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	yamlContent := `
logLevel: warn
server:
  httpHost: 127.0.0.1
  httpPort: "9999"
  maxBatchSize: 10
cache:
  driver: bbolt
  ttlMs: 30000
  bbolt:
    path: /tmp/cache.db
prober:
  latencyTimeoutMs: 2s
dispatcher:
  requestTimeoutMs: 1500
`
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte(yamlContent), 0o644))

	cfg, err := LoadConfig(fs, "/cfg.yaml")
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.HttpHost)
	require.Equal(t, "9999", cfg.Server.HttpPort)
	require.Equal(t, 10, cfg.Server.MaxBatchSize)
	require.Equal(t, "bbolt", cfg.Cache.Driver)
	require.Equal(t, 30*time.Second, cfg.Cache.TtlMs.Duration())
	require.Equal(t, "/tmp/cache.db", cfg.Cache.Bbolt.Path)
	require.Equal(t, 2*time.Second, cfg.Prober.LatencyTimeoutMs.Duration())
	require.Equal(t, 1500*time.Millisecond, cfg.Dispatcher.RequestTimeoutMs.Duration())
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("CACHE_DRIVER_FOR_TEST", "redis")

	fs := afero.NewMemMapFs()
	yamlContent := "cache:\n  driver: ${CACHE_DRIVER_FOR_TEST}\n"
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte(yamlContent), 0o644))

	cfg, err := LoadConfig(fs, "/cfg.yaml")
	require.NoError(t, err)
	require.Equal(t, "redis", cfg.Cache.Driver)
}

func TestLoadConfigMissingFileReturnsError(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := LoadConfig(fs, "/missing.yaml")
	require.Error(t, err)
}

func TestLoadConfigDisableCacheEnvOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	yamlContent := "cache:\n  disableCache: false\n"
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte(yamlContent), 0o644))

	t.Setenv("DISABLE_RPC_CACHE", "true")
	cfg, err := LoadConfig(fs, "/cfg.yaml")
	require.NoError(t, err)
	require.True(t, cfg.Cache.DisableCache)
}
