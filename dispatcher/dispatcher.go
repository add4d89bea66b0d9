// Package dispatcher implements the round-robin request sender described
// in spec.md §5: pick the next URL from the Selector's ranked list and
// fall forward through the remainder on failure.
package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ubiquity/permit2-rpc-manager/common"
	"github.com/ubiquity/permit2-rpc-manager/metrics"
	"github.com/ubiquity/permit2-rpc-manager/selector"
)

// Dispatcher owns one process-local RoundRobinIndex per chain (spec.md §3
// RoundRobinIndex, §9 "FetchAdd or CAS") and drives Send's fallback walk
// across a Selector's ranked list.
type Dispatcher struct {
	selector       *selector.Selector
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         *zerolog.Logger

	rrIndex sync.Map // chainId uint64 -> *atomic.Uint64
}

func New(sel *selector.Selector, requestTimeout time.Duration, logger *zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		selector: sel,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// Send resolves the ranked list for chainId and tries each URL in
// round-robin order, starting from a different offset on every call, until
// one succeeds or all have been exhausted (spec.md §5 "Dispatch
// algorithm").
func (d *Dispatcher) Send(ctx context.Context, chainId uint64, method string, params []interface{}) (json.RawMessage, error) {
	chainKey := strconv.FormatUint(chainId, 10)

	ranked, err := d.selector.GetRankedList(ctx, chainId)
	if err != nil {
		return nil, err
	}
	n := len(ranked)
	if n == 0 {
		metrics.DispatchOutcomeTotal.WithLabelValues(chainKey, "no_endpoints").Inc()
		d.logger.Error().Uint64("chainId", chainId).Msg("no usable endpoints")
		return nil, common.NewNoEndpoints(chainId)
	}

	start := d.counterFor(chainId).Add(1) - 1

	var lastErr error
	for i := 0; i < n; i++ {
		url := ranked[int((start+uint64(i))%uint64(n))]

		result, err := d.executeOne(ctx, url, method, params)
		if err == nil {
			metrics.DispatchAttemptTotal.WithLabelValues(chainKey, "success").Inc()
			metrics.DispatchOutcomeTotal.WithLabelValues(chainKey, "success").Inc()
			return result, nil
		}

		metrics.DispatchAttemptTotal.WithLabelValues(chainKey, "failure").Inc()
		d.logger.Debug().Err(err).Uint64("chainId", chainId).Str("url", url).Msg("upstream attempt failed")
		lastErr = err

		if ctx.Err() != nil {
			// Cancellation aborts the current ExecuteOne, not the walk's
			// bookkeeping, but there is no point trying the rest.
			return nil, ctx.Err()
		}
	}

	metrics.DispatchOutcomeTotal.WithLabelValues(chainKey, "all_failed").Inc()
	d.logger.Error().Err(lastErr).Uint64("chainId", chainId).Msg("all endpoints failed")
	return nil, common.NewAllEndpointsFailed(chainId, lastErr)
}

// counterFor returns the atomic round-robin counter for chainId, creating
// one on first use.
func (d *Dispatcher) counterFor(chainId uint64) *atomic.Uint64 {
	if v, ok := d.rrIndex.Load(chainId); ok {
		return v.(*atomic.Uint64)
	}
	v, _ := d.rrIndex.LoadOrStore(chainId, new(atomic.Uint64))
	return v.(*atomic.Uint64)
}

// executeOne performs a single forwarded JSON-RPC call against url under
// the dispatcher's request timeout.
func (d *Dispatcher) executeOne(ctx context.Context, url, method string, params []interface{}) (json.RawMessage, error) {
	callCtx, cancel := context.WithTimeout(ctx, d.requestTimeout)
	defer cancel()

	reqBody, err := common.JSONCfg.Marshal(common.JsonRpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      fmt.Sprintf("dispatch-%d", time.Now().UnixMilli()),
	})
	if err != nil {
		return nil, common.NewMalformedResponse(err)
	}

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, common.NewNetworkError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, common.NewTimeoutError(d.requestTimeout.Milliseconds())
		}
		return nil, common.NewNetworkError(err)
	}
	defer resp.Body.Close()

	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, common.NewTimeoutError(d.requestTimeout.Milliseconds())
		}
		return nil, common.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, common.NewHTTPError(resp.StatusCode)
	}

	hasResult, hasError, err := common.HasResultOrError(body.Bytes())
	if err != nil {
		return nil, common.NewMalformedResponse(err)
	}

	if hasError {
		var jrr common.JsonRpcResponse
		if err := common.JSONCfg.Unmarshal(body.Bytes(), &jrr); err != nil {
			return nil, common.NewMalformedResponse(err)
		}
		return nil, common.NewRPCError(jrr.Error.Code, jrr.Error.Message)
	}

	if !hasResult {
		return nil, common.NewMalformedResponse(nil)
	}

	var jrr common.JsonRpcResponse
	if err := common.JSONCfg.Unmarshal(body.Bytes(), &jrr); err != nil {
		return nil, common.NewMalformedResponse(err)
	}
	return jrr.Result, nil
}
