package selector

import (
	"sort"

	"github.com/ubiquity/permit2-rpc-manager/probe"
)

// Rank implements spec.md §4.4's ranking: a stable sort of URLs whose
// probe status is acceptable, primarily by status tier (ok before
// wrong_bytecode before syncing) and secondarily by latency ascending.
// Ties are broken by order, which must be the original insertion order
// of the probe map (the whitelist order the URLs were probed in).
func Rank(order []string, probeMap map[string]probe.Result) []string {
	candidates := make([]string, 0, len(order))
	for _, url := range order {
		result, ok := probeMap[url]
		if !ok || !probe.IsAcceptable(result.Status) {
			continue
		}
		candidates = append(candidates, url)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := probeMap[candidates[i]], probeMap[candidates[j]]
		tierA, tierB := probe.Tier(a.Status), probe.Tier(b.Status)
		if tierA != tierB {
			return tierA < tierB
		}
		return a.LatencyMs < b.LatencyMs
	})

	return candidates
}

// FastestURL returns the first URL of the ranking, or "" if empty.
func FastestURL(ranked []string) string {
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0]
}
