package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ubiquity/permit2-rpc-manager/cache"
	"github.com/ubiquity/permit2-rpc-manager/config"
	"github.com/ubiquity/permit2-rpc-manager/dispatcher"
	"github.com/ubiquity/permit2-rpc-manager/probe"
	"github.com/ubiquity/permit2-rpc-manager/selector"
	"github.com/ubiquity/permit2-rpc-manager/server"
	"github.com/ubiquity/permit2-rpc-manager/whitelist"
)

func main() {
	shutdown, err := Init(afero.NewOsFs(), os.Args)
	if err != nil {
		log.Error().Msgf("failed to start rpcproxy: %v", err)
		os.Exit(1)
	}
	defer shutdown()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	recvSig := <-sig
	log.Warn().Msgf("caught signal: %v", recvSig)
}

// Init loads configuration from args[1] (default ./rpcproxy.yaml), wires
// the whitelist/prober/cache/selector/dispatcher/server pipeline, and
// returns a shutdown function.
func Init(fs afero.Fs, args []string) (func(), error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	configPath := "./rpcproxy.yaml"
	if len(args) > 1 {
		configPath = args[1]
	}

	if _, err := fs.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return func() {}, fmt.Errorf("config file '%s' does not exist", configPath)
	}

	cfg, err := config.LoadConfig(fs, configPath)
	if err != nil {
		return func() {}, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.LogLevel == "none" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	} else if level, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		log.Warn().Msgf("invalid log level '%s', defaulting to 'warn'", cfg.LogLevel)
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	} else {
		zerolog.SetGlobalLevel(level)
	}

	logger := log.Logger

	wl, err := loadWhitelist(fs, cfg)
	if err != nil {
		return func() {}, fmt.Errorf("failed to load whitelist: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	connector, err := cache.NewConnector(ctx, &logger, cfg.Cache)
	if err != nil {
		cancel()
		return func() {}, fmt.Errorf("failed to build cache connector: %w", err)
	}

	c := cache.New(
		connector,
		cfg.Cache.CacheKey,
		cfg.Cache.TtlMs.Duration(),
		cfg.Cache.DisableCache,
		&logger,
	)

	prober := probe.New(cfg.Prober.LatencyTimeoutMs.Duration(), &logger)
	sel := selector.New(wl, prober, c, &logger)
	dsp := dispatcher.New(sel, cfg.Dispatcher.RequestTimeoutMs.Duration(), &logger)

	srv := server.New(ctx, &logger, &cfg.Server, dsp)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error().Err(err).Msg("http server exited with error")
		}
	}()

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = startMetricsServer(&logger, cfg.Metrics.ListenAddr)
	}

	shutdown := func() {
		cancel()
		if connector != nil {
			if err := connector.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close cache connector")
			}
		}
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("failed to shut down metrics server")
			}
		}
	}

	return shutdown, nil
}

func loadWhitelist(fs afero.Fs, cfg *config.Config) (*whitelist.Provider, error) {
	if cfg.Whitelist.InitialRpcData != nil {
		return whitelist.New(*cfg.Whitelist.InitialRpcData), nil
	}
	if cfg.Whitelist.Path != "" {
		return whitelist.LoadFromFile(fs, cfg.Whitelist.Path)
	}
	return whitelist.New(config.WhitelistData{}), nil
}

func startMetricsServer(logger *zerolog.Logger, addr string) *http.Server {
	if addr == "" {
		addr = "0.0.0.0:9090"
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Info().Msgf("starting metrics server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server exited with error")
		}
	}()
	return srv
}
