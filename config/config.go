package config

import (
	"os"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ubiquity/permit2-rpc-manager/common"
)

// Config is the top-level configuration recognized by the core, loaded
// once at startup from a YAML file (spec.md §6).
type Config struct {
	LogLevel   string            `yaml:"logLevel"`
	Server     ServerConfig      `yaml:"server"`
	Cache      CacheConfig       `yaml:"cache"`
	Prober     ProberConfig      `yaml:"prober"`
	Dispatcher DispatcherConfig  `yaml:"dispatcher"`
	Whitelist  WhitelistConfig   `yaml:"whitelist"`
	Metrics    MetricsConfig     `yaml:"metrics"`
}

type ServerConfig struct {
	HttpHost     string `yaml:"httpHost"`
	HttpPort     string `yaml:"httpPort"`
	MaxBatchSize int    `yaml:"maxBatchSize"`
}

type CacheConfig struct {
	Driver       string          `yaml:"driver"` // memory | bbolt | redis
	TtlMs        common.Duration `yaml:"ttlMs"`
	CacheKey     string          `yaml:"cacheKey"`
	DisableCache bool            `yaml:"disableCache"`
	Bbolt        BboltConfig     `yaml:"bbolt"`
	Redis        RedisConfig     `yaml:"redis"`
}

type BboltConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ProberConfig struct {
	LatencyTimeoutMs common.Duration `yaml:"latencyTimeoutMs"`
}

type DispatcherConfig struct {
	RequestTimeoutMs common.Duration `yaml:"requestTimeoutMs"`
}

// WhitelistConfig names the on-disk whitelist file and/or an inline
// override. InitialRpcData, when non-nil, takes precedence over Path
// (spec.md §6).
type WhitelistConfig struct {
	Path           string                 `yaml:"path"`
	InitialRpcData *WhitelistData         `yaml:"initialRpcData"`
}

// WhitelistData is the `{ "rpcs": {...} }` document shape, shared between
// the YAML/JSON file format and the inline config override.
type WhitelistData struct {
	Rpcs map[string][]string `yaml:"rpcs" json:"rpcs"`
}

type MetricsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listenAddr"`
}

// Defaults per spec.md §6.
const (
	DefaultCacheTtl       = time.Hour
	DefaultLatencyTimeout = 5 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultCacheKey       = "permit2RpcManagerCache"
	DefaultMaxBatchSize   = 100
)

// applyDefaults fills zero-valued fields with spec.md §6 defaults.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Server.HttpHost == "" {
		c.Server.HttpHost = "0.0.0.0"
	}
	if c.Server.HttpPort == "" {
		c.Server.HttpPort = "8080"
	}
	if c.Server.MaxBatchSize == 0 {
		c.Server.MaxBatchSize = DefaultMaxBatchSize
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = "memory"
	}
	c.Cache.TtlMs = common.Duration(c.Cache.TtlMs.WithDefault(DefaultCacheTtl))
	if c.Cache.CacheKey == "" {
		c.Cache.CacheKey = DefaultCacheKey
	}
	c.Prober.LatencyTimeoutMs = common.Duration(c.Prober.LatencyTimeoutMs.WithDefault(DefaultLatencyTimeout))
	c.Dispatcher.RequestTimeoutMs = common.Duration(c.Dispatcher.RequestTimeoutMs.WithDefault(DefaultRequestTimeout))

	// DISABLE_RPC_CACHE env var overrides the YAML value (spec.md §6).
	if v := os.Getenv("DISABLE_RPC_CACHE"); v == "true" || v == "1" {
		c.Cache.DisableCache = true
	}
}

// LoadConfig reads and parses the YAML config file at path through fs,
// expanding ${ENV_VAR} references the way the teacher's config loader
// does, then applies defaults.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &common.BaseError{
			Code:    "ErrConfigRead",
			Message: "failed to read config file",
			Cause:   err,
			Details: map[string]interface{}{"path": path},
		}
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, &common.BaseError{
			Code:    "ErrConfigParse",
			Message: "failed to parse config file",
			Cause:   err,
			Details: map[string]interface{}{"path": path},
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}
