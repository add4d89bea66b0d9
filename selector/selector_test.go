package selector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ubiquity/permit2-rpc-manager/cache"
	"github.com/ubiquity/permit2-rpc-manager/common"
	"github.com/ubiquity/permit2-rpc-manager/config"
	"github.com/ubiquity/permit2-rpc-manager/probe"
	"github.com/ubiquity/permit2-rpc-manager/whitelist"
)

func okServer(t *testing.T, callCount *atomic.Int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if callCount != nil {
			callCount.Add(1)
		}

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req common.JsonRpcRequest
		require.NoError(t, json.Unmarshal(body, &req))

		w.Header().Set("Content-Type", "application/json")
		switch req.Method {
		case "eth_getCode":
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":"x","result":%q}`, "0x"+common.Permit2BytecodeSample())
		case "eth_syncing":
			fmt.Fprint(w, `{"jsonrpc":"2.0","id":"x","result":false}`)
		}
	}))
}

func newTestSelector(wl *whitelist.Provider) *Selector {
	logger := zerolog.New(io.Discard)
	prober := probe.New(2*time.Second, &logger)
	c := cache.New(cache.NewMemoryConnector(), "sel-test", time.Hour, false, &logger)
	return New(wl, prober, c, &logger)
}

func TestGetRankedListProbesThenCaches(t *testing.T) {
	var calls atomic.Int64
	server := okServer(t, &calls)
	defer server.Close()

	wl := whitelist.New(config.WhitelistData{Rpcs: map[string][]string{"1": {server.URL}}})
	sel := newTestSelector(wl)

	ranked, err := sel.GetRankedList(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{server.URL}, ranked)
	require.Equal(t, int64(2), calls.Load(), "one eth_getCode + one eth_syncing")

	ranked2, err := sel.GetRankedList(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{server.URL}, ranked2)
	require.Equal(t, int64(2), calls.Load(), "second call within ttl must be served from cache, no new probe")
}

func TestGetRankedListEmptyWhitelistSkipsProbing(t *testing.T) {
	wl := whitelist.New(config.WhitelistData{})
	sel := newTestSelector(wl)

	ranked, err := sel.GetRankedList(context.Background(), 999)
	require.NoError(t, err)
	require.Empty(t, ranked)
}

func TestGetRankedListConcurrentCallersShareOneProbe(t *testing.T) {
	var calls atomic.Int64
	server := okServer(t, &calls)
	defer server.Close()

	wl := whitelist.New(config.WhitelistData{Rpcs: map[string][]string{"1": {server.URL}}})
	sel := newTestSelector(wl)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			ranked, err := sel.GetRankedList(context.Background(), 1)
			require.NoError(t, err)
			require.Equal(t, []string{server.URL}, ranked)
		}()
	}
	wg.Wait()

	require.Equal(t, int64(2), calls.Load(), "concurrent callers for the same chain must share a single probe round")
}

func TestGetRankedListInvalidatesWhenFastestURLNowFails(t *testing.T) {
	var calls atomic.Int64
	server := okServer(t, &calls)
	defer server.Close()

	wl := whitelist.New(config.WhitelistData{Rpcs: map[string][]string{"1": {server.URL}}})
	logger := zerolog.New(io.Discard)
	prober := probe.New(2*time.Second, &logger)
	c := cache.New(cache.NewMemoryConnector(), "sel-test-2", time.Hour, false, &logger)
	sel := New(wl, prober, c, &logger)

	// Seed a cache entry whose fastestURL points at a status that is no
	// longer acceptable, simulating a stale record after an upstream
	// degraded between probes.
	c.Put(context.Background(), 1, map[string]probe.Result{
		server.URL: {URL: server.URL, Status: probe.StatusTimeout, LatencyMs: probe.Inf},
	}, []string{server.URL}, server.URL)

	ranked, err := sel.GetRankedList(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{server.URL}, ranked)
	require.Equal(t, int64(2), calls.Load(), "invalid cache entry must trigger a fresh probe")
}

func TestGetRankedListAllTimeoutsYieldEmptyRankingCachedWithoutReprobe(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
	}))
	defer server.Close()

	wl := whitelist.New(config.WhitelistData{Rpcs: map[string][]string{"1": {server.URL, server.URL + "/b", server.URL + "/c"}}})
	logger := zerolog.New(io.Discard)
	prober := probe.New(5*time.Millisecond, &logger)
	c := cache.New(cache.NewMemoryConnector(), "sel-test-3", time.Hour, false, &logger)
	sel := New(wl, prober, c, &logger)

	ranked, err := sel.GetRankedList(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, ranked)

	entry := c.GetRaw(context.Background(), 1)
	require.NotNil(t, entry)
	require.Equal(t, "", entry.FastestURL)

	callsAfterFirst := calls.Load()

	ranked2, err := sel.GetRankedList(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, ranked2)
	require.Equal(t, callsAfterFirst, calls.Load(), "a fresh cache entry with no acceptable fastestURL must still be reused, not reprobed")
}

func TestGetRankedListCancelledCallerDoesNotAbortSharedProbe(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	close1 := sync.OnceFunc(func() { close(started) })
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close1()
		<-release

		body, _ := io.ReadAll(r.Body)
		var req common.JsonRpcRequest
		json.Unmarshal(body, &req)

		w.Header().Set("Content-Type", "application/json")
		switch req.Method {
		case "eth_getCode":
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":"x","result":%q}`, "0x"+common.Permit2BytecodeSample())
		case "eth_syncing":
			fmt.Fprint(w, `{"jsonrpc":"2.0","id":"x","result":false}`)
		}
	}))
	defer server.Close()

	wl := whitelist.New(config.WhitelistData{Rpcs: map[string][]string{"1": {server.URL}}})
	sel := newTestSelector(wl)

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	var cancelledErr error
	go func() {
		defer wg.Done()
		_, cancelledErr = sel.GetRankedList(ctx, 1)
	}()

	<-started
	cancel()
	wg.Wait()
	require.Error(t, cancelledErr)

	close(release)

	// A second, uncancelled caller must still observe the shared probe's
	// result even though the first caller walked away.
	ranked, err := sel.GetRankedList(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{server.URL}, ranked)
}
