// Package probe implements the latency/capability tester described in
// spec.md §4.2: for each candidate URL it issues an eth_getCode (Permit2
// witness) and an eth_syncing call under a shared deadline and classifies
// the outcome.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ubiquity/permit2-rpc-manager/common"
	"github.com/ubiquity/permit2-rpc-manager/metrics"
)

// Prober issues the two-call probe protocol against a set of URLs.
type Prober struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *zerolog.Logger
}

// New builds a Prober whose per-call deadline is timeout (spec.md §6
// latencyTimeoutMs, default 5s).
func New(timeout time.Duration, logger *zerolog.Logger) *Prober {
	return &Prober{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout: timeout,
		logger:  logger,
	}
}

// Probe issues the probe protocol against every URL concurrently and
// returns a URL -> Result map. A failure probing one URL never prevents
// the others from completing (settled-join, spec.md §4.2 "Concurrency").
func (p *Prober) Probe(ctx context.Context, urls []string) map[string]Result {
	out := make(map[string]Result, len(urls))
	if len(urls) == 0 {
		return out
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(len(urls))

	for _, u := range urls {
		u := u
		go func() {
			defer wg.Done()
			r := p.probeOne(ctx, u)
			mu.Lock()
			out[u] = r
			mu.Unlock()

			metrics.ProbeResultTotal.WithLabelValues(string(r.Status)).Inc()
			if !errorsOnlyInf(r) {
				metrics.ProbeLatencySeconds.WithLabelValues(string(r.Status)).Observe(r.LatencyMs / 1000)
			}
		}()
	}

	wg.Wait()
	return out
}

func errorsOnlyInf(r Result) bool {
	return r.LatencyMs == Inf
}

type callOutcome struct {
	httpStatus int
	hasResult  bool
	result     json.RawMessage
	rpcErr     *common.JsonRpcError
	timedOut   bool
	netErr     error
}

func (p *Prober) probeOne(parentCtx context.Context, url string) Result {
	ctx, cancel := context.WithTimeout(parentCtx, p.timeout)
	defer cancel()

	start := time.Now()

	var wg sync.WaitGroup
	var getCodeOut, syncingOut callOutcome
	wg.Add(2)

	go func() {
		defer wg.Done()
		getCodeOut = p.call(ctx, url, "eth_getCode", []interface{}{common.Permit2ContractAddress, "latest"})
	}()
	go func() {
		defer wg.Done()
		syncingOut = p.call(ctx, url, "eth_syncing", []interface{}{})
	}()

	wg.Wait()
	latencyMs := float64(time.Since(start)) / float64(time.Millisecond)

	return classify(url, latencyMs, getCodeOut, syncingOut)
}

// classify applies the ordered-match priority table from spec.md §4.2.
func classify(url string, latencyMs float64, getCodeOut, syncingOut callOutcome) Result {
	if getCodeOut.timedOut || syncingOut.timedOut {
		return Result{URL: url, Status: StatusTimeout, LatencyMs: Inf, ErrorText: "deadline exceeded"}
	}

	if getCodeOut.netErr != nil {
		return Result{URL: url, Status: StatusNetworkError, LatencyMs: Inf, ErrorText: getCodeOut.netErr.Error()}
	}
	if syncingOut.netErr != nil {
		return Result{URL: url, Status: StatusNetworkError, LatencyMs: Inf, ErrorText: syncingOut.netErr.Error()}
	}

	if getCodeOut.httpStatus != 0 && getCodeOut.httpStatus >= 300 {
		return Result{URL: url, Status: StatusHTTPError, LatencyMs: Inf, ErrorText: fmt.Sprintf("eth_getCode http %d", getCodeOut.httpStatus)}
	}
	if syncingOut.httpStatus != 0 && syncingOut.httpStatus >= 300 {
		return Result{URL: url, Status: StatusHTTPError, LatencyMs: Inf, ErrorText: fmt.Sprintf("eth_syncing http %d", syncingOut.httpStatus)}
	}

	if getCodeOut.rpcErr != nil {
		return Result{URL: url, Status: StatusRPCError, LatencyMs: Inf, ErrorText: getCodeOut.rpcErr.Message}
	}
	if syncingOut.rpcErr != nil {
		return Result{URL: url, Status: StatusRPCError, LatencyMs: Inf, ErrorText: syncingOut.rpcErr.Message}
	}

	if !isSyncingFalse(syncingOut.result) {
		return Result{URL: url, Status: StatusSyncing, LatencyMs: latencyMs}
	}

	codeHex, ok := decodeJSONString(getCodeOut.result)
	if !ok {
		return Result{URL: url, Status: StatusWrongBytecode, LatencyMs: latencyMs, ErrorText: "eth_getCode result is not a string"}
	}
	if !common.HasPermit2Prefix(codeHex) {
		return Result{URL: url, Status: StatusWrongBytecode, LatencyMs: latencyMs, ErrorText: "bytecode does not match Permit2 prefix"}
	}

	return Result{URL: url, Status: StatusOK, LatencyMs: latencyMs}
}

// isSyncingFalse reports whether the eth_syncing result is the JSON
// literal false. Anything else (true, an object, absent) counts as
// syncing per spec.md §4.2.
func isSyncingFalse(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return string(trimmed) == "false"
}

func decodeJSONString(raw json.RawMessage) (string, bool) {
	var s string
	if err := common.JSONCfg.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func (p *Prober) call(ctx context.Context, url, method string, params []interface{}) callOutcome {
	id := fmt.Sprintf("latency-test-%s-%d", method, time.Now().UnixMilli())
	reqBody, err := common.JSONCfg.Marshal(common.JsonRpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      id,
	})
	if err != nil {
		return callOutcome{netErr: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return callOutcome{netErr: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return callOutcome{timedOut: true}
		}
		return callOutcome{netErr: err}
	}
	defer resp.Body.Close()

	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return callOutcome{timedOut: true}
		}
		return callOutcome{netErr: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return callOutcome{httpStatus: resp.StatusCode}
	}

	var jrr common.JsonRpcResponse
	if err := common.JSONCfg.Unmarshal(body.Bytes(), &jrr); err != nil {
		return callOutcome{netErr: err}
	}

	if jrr.Error != nil {
		return callOutcome{rpcErr: jrr.Error}
	}

	return callOutcome{hasResult: true, result: jrr.Result}
}
