package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ubiquity/permit2-rpc-manager/config"
	"github.com/ubiquity/permit2-rpc-manager/probe"
)

func TestCachePutThenGetRaw(t *testing.T) {
	logger := zerolog.New(io.Discard)
	c := New(NewMemoryConnector(), "test-key", time.Hour, false, &logger)

	probeMap := map[string]probe.Result{
		"https://a.example": {URL: "https://a.example", Status: probe.StatusOK, LatencyMs: 10},
	}
	c.Put(context.Background(), 1, probeMap, []string{"https://a.example"}, "https://a.example")

	entry := c.GetRaw(context.Background(), 1)
	require.NotNil(t, entry)
	require.Equal(t, "https://a.example", entry.FastestURL)
	require.Equal(t, []string{"https://a.example"}, entry.URLOrder)
	require.Equal(t, probe.StatusOK, entry.ProbeMap["https://a.example"].Status)
}

func TestCacheGetFreshRespectsTTL(t *testing.T) {
	logger := zerolog.New(io.Discard)
	c := New(NewMemoryConnector(), "test-key", 10*time.Millisecond, false, &logger)

	probeMap := map[string]probe.Result{
		"https://a.example": {URL: "https://a.example", Status: probe.StatusOK, LatencyMs: 10},
	}
	c.Put(context.Background(), 1, probeMap, []string{"https://a.example"}, "https://a.example")

	require.NotNil(t, c.GetFresh(context.Background(), 1))
	time.Sleep(30 * time.Millisecond)
	require.Nil(t, c.GetFresh(context.Background(), 1), "entry should be considered stale past ttl")
	require.NotNil(t, c.GetRaw(context.Background(), 1), "raw read ignores ttl")
}

func TestCacheDisabledIsNoOp(t *testing.T) {
	logger := zerolog.New(io.Discard)
	c := New(NewMemoryConnector(), "test-key", time.Hour, true, &logger)

	probeMap := map[string]probe.Result{
		"https://a.example": {URL: "https://a.example", Status: probe.StatusOK, LatencyMs: 10},
	}
	c.Put(context.Background(), 1, probeMap, []string{"https://a.example"}, "https://a.example")

	require.Nil(t, c.GetFresh(context.Background(), 1))
	require.Nil(t, c.GetRaw(context.Background(), 1))
}

func TestCacheMissingChainReturnsNil(t *testing.T) {
	logger := zerolog.New(io.Discard)
	c := New(NewMemoryConnector(), "test-key", time.Hour, false, &logger)

	require.Nil(t, c.GetRaw(context.Background(), 999))
}

func TestCacheWithRedisConnector(t *testing.T) {
	m, err := miniredis.Run()
	require.NoError(t, err)
	defer m.Close()

	logger := zerolog.New(io.Discard)
	connector, err := NewRedisConnector(context.Background(), &logger, config.RedisConfig{Addr: m.Addr()})
	require.NoError(t, err)
	defer connector.Close()

	c := New(connector, "shared-key", time.Hour, false, &logger)

	probeMap := map[string]probe.Result{
		"https://a.example": {URL: "https://a.example", Status: probe.StatusOK, LatencyMs: 10},
		"https://b.example": {URL: "https://b.example", Status: probe.StatusTimeout, LatencyMs: probe.Inf},
	}
	c.Put(context.Background(), 10, probeMap, []string{"https://a.example", "https://b.example"}, "https://a.example")

	entry := c.GetRaw(context.Background(), 10)
	require.NotNil(t, entry)
	require.Equal(t, "https://a.example", entry.FastestURL)
	require.Len(t, entry.ProbeMap, 2)
}

func TestCacheMultipleChainsDoNotClobber(t *testing.T) {
	logger := zerolog.New(io.Discard)
	c := New(NewMemoryConnector(), "test-key", time.Hour, false, &logger)

	c.Put(context.Background(), 1, map[string]probe.Result{
		"https://a.example": {URL: "https://a.example", Status: probe.StatusOK, LatencyMs: 5},
	}, []string{"https://a.example"}, "https://a.example")

	c.Put(context.Background(), 2, map[string]probe.Result{
		"https://b.example": {URL: "https://b.example", Status: probe.StatusOK, LatencyMs: 5},
	}, []string{"https://b.example"}, "https://b.example")

	require.NotNil(t, c.GetRaw(context.Background(), 1))
	require.NotNil(t, c.GetRaw(context.Background(), 2))
	require.Equal(t, "https://a.example", c.GetRaw(context.Background(), 1).FastestURL)
	require.Equal(t, "https://b.example", c.GetRaw(context.Background(), 2).FastestURL)
}
