package cache

import "github.com/ubiquity/permit2-rpc-manager/probe"

// Entry is the cached state for one chain (spec.md §3 ChainCacheEntry).
//
// URLOrder records the whitelist order the URLs were probed in. Go maps
// have no iteration order, so this is what lets the ranking tie-break
// ("insertion order from probeMap iteration", spec.md §4.4) survive a
// cache round trip.
type Entry struct {
	LastTestedUnixMs int64                   `json:"lastTestedUnixMs"`
	ProbeMap         map[string]probe.Result `json:"probeMap"`
	URLOrder         []string                `json:"urlOrder"`
	FastestURL       string                  `json:"fastestURL"` // "" means null
}

// Root is the whole persisted document (spec.md §3 CacheRoot), stored
// under one KV key and read/written atomically.
type Root map[string]Entry // keyed by decimal chain ID string
