// Package whitelist holds the curated, read-only chainId -> upstream URL
// mapping the rest of the system selects from.
package whitelist

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/ubiquity/permit2-rpc-manager/common"
	"github.com/ubiquity/permit2-rpc-manager/config"
)

// Provider answers UrlsFor(chainId) from an immutable mapping built once
// at construction time. It performs no I/O after construction.
type Provider struct {
	byChain map[uint64][]string
	order   []uint64
}

// New filters data.Rpcs down to https:// URLs with no unresolved ${...}
// placeholder and builds a Provider over the result.
func New(data config.WhitelistData) *Provider {
	p := &Provider{byChain: make(map[uint64][]string, len(data.Rpcs))}

	for chainIdStr, urls := range data.Rpcs {
		chainId, err := strconv.ParseUint(chainIdStr, 10, 64)
		if err != nil || chainId == 0 {
			continue
		}

		filtered := make([]string, 0, len(urls))
		for _, u := range urls {
			if isUsableURL(u) {
				filtered = append(filtered, u)
			}
		}

		if _, exists := p.byChain[chainId]; !exists {
			p.order = append(p.order, chainId)
		}
		p.byChain[chainId] = filtered
	}

	return p
}

// LoadFromFile reads the whitelist JSON document (spec.md §6 "Whitelist
// file format") from path through fs.
func LoadFromFile(fs afero.Fs, path string) (*Provider, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &common.BaseError{
			Code:    "ErrWhitelistRead",
			Message: "failed to read whitelist file",
			Cause:   err,
			Details: map[string]interface{}{"path": path},
		}
	}

	var data config.WhitelistData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &common.BaseError{
			Code:    "ErrWhitelistParse",
			Message: "failed to parse whitelist file",
			Cause:   err,
			Details: map[string]interface{}{"path": path},
		}
	}

	return New(data), nil
}

func isUsableURL(u string) bool {
	if !strings.HasPrefix(u, "https://") {
		return false
	}
	if strings.Contains(u, "${") {
		return false
	}
	return true
}

// UrlsFor returns the (possibly empty) URL list for chainId, in the
// insertion order of the underlying data. Returning empty is not an
// error.
func (p *Provider) UrlsFor(chainId uint64) []string {
	urls := p.byChain[chainId]
	if urls == nil {
		return []string{}
	}
	out := make([]string, len(urls))
	copy(out, urls)
	return out
}

// ChainIds lists all known chain IDs in the order they were first seen.
func (p *Provider) ChainIds() []uint64 {
	out := make([]uint64, len(p.order))
	copy(out, p.order)
	return out
}
