// Package selector implements the per-chain ranked-list cache with
// single-flight probing described in spec.md §4.4.
package selector

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/ubiquity/permit2-rpc-manager/cache"
	"github.com/ubiquity/permit2-rpc-manager/metrics"
	"github.com/ubiquity/permit2-rpc-manager/probe"
	"github.com/ubiquity/permit2-rpc-manager/whitelist"
)

// Selector owns the Cache and triggers Prober runs under a single-flight
// guard so the cost of probing a chain is paid at most once under a
// burst of concurrent callers (spec.md §4.4 "Concurrency contract").
type Selector struct {
	whitelist *whitelist.Provider
	prober    *probe.Prober
	cache     *cache.Cache
	logger    *zerolog.Logger

	sf singleflight.Group
}

func New(wl *whitelist.Provider, prober *probe.Prober, c *cache.Cache, logger *zerolog.Logger) *Selector {
	return &Selector{
		whitelist: wl,
		prober:    prober,
		cache:     c,
		logger:    logger,
	}
}

type probeOutcome struct {
	order    []string
	probeMap map[string]probe.Result
}

// GetRankedList returns the ordered list of usable URLs for chainId,
// triggering a probe run as needed (spec.md §4.4 algorithm).
func (s *Selector) GetRankedList(ctx context.Context, chainId uint64) ([]string, error) {
	urls := s.whitelist.UrlsFor(chainId)
	if len(urls) == 0 {
		return []string{}, nil
	}

	if entry := s.cache.GetRaw(ctx, chainId); s.isValid(entry) {
		metrics.CacheHitTotal.WithLabelValues("fresh").Inc()
		return Rank(entry.URLOrder, entry.ProbeMap), nil
	}

	key := strconv.FormatUint(chainId, 10)

	// DoChan (rather than Do) lets a caller whose own context is
	// cancelled stop waiting without cancelling the shared probe for
	// everyone else still waiting on it (spec.md §5 "Cancellation").
	resultCh := s.sf.DoChan(key, func() (interface{}, error) {
		// Deliberately detached from the caller's context: the probe
		// outlives any single waiter (spec.md §9 "decoupled context").
		probeCtx := context.Background()

		metrics.ProbeTriggeredTotal.WithLabelValues(key).Inc()
		probeMap := s.prober.Probe(probeCtx, urls)

		ranked := Rank(urls, probeMap)
		fastest := FastestURL(ranked)
		s.cache.Put(probeCtx, chainId, probeMap, urls, fastest)

		return probeOutcome{order: urls, probeMap: probeMap}, nil
	})

	select {
	case res := <-resultCh:
		if res.Err != nil {
			return nil, res.Err
		}
		outcome := res.Val.(probeOutcome)
		return Rank(outcome.order, outcome.probeMap), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// isValid checks spec.md §4.4 step 2's cache-validity predicate: the entry
// must be fresh, and its stored fastestURL must still match what the
// current probeMap would rank first. This also covers the all-hard-fail
// edge case (fastestURL legitimately empty) without forcing a reprobe of
// an entry that is fresh and has nothing acceptable to offer.
func (s *Selector) isValid(entry *cache.Entry) bool {
	if entry == nil {
		return false
	}
	if !s.cache.IsFresh(entry.LastTestedUnixMs) {
		return false
	}
	return FastestURL(Rank(entry.URLOrder, entry.ProbeMap)) == entry.FastestURL
}
