package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ubiquity/permit2-rpc-manager/common"
)

func rpcHandler(t *testing.T, getCodeResultJSON, syncingResultJSON string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req common.JsonRpcRequest
		require.NoError(t, json.Unmarshal(body, &req))

		w.Header().Set("Content-Type", "application/json")

		var result string
		switch req.Method {
		case "eth_getCode":
			result = getCodeResultJSON
		case "eth_syncing":
			result = syncingResultJSON
		default:
			t.Fatalf("unexpected method %q", req.Method)
		}

		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":"x","result":%s}`, result)
	}
}

func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestProbeOneClassifiesOK(t *testing.T) {
	codeHex := "0x" + common.Permit2BytecodeSample()
	server := httptest.NewServer(rpcHandler(t, jsonQuote(codeHex), "false"))
	defer server.Close()

	logger := zerolog.Nop()
	p := New(2*time.Second, &logger)
	results := p.Probe(context.Background(), []string{server.URL})

	result, ok := results[server.URL]
	require.True(t, ok)
	require.Equal(t, StatusOK, result.Status)
	require.True(t, result.WellFormed())
}

func TestProbeOneClassifiesWrongBytecode(t *testing.T) {
	server := httptest.NewServer(rpcHandler(t, jsonQuote("0xdeadbeef"), "false"))
	defer server.Close()

	logger := zerolog.Nop()
	p := New(2*time.Second, &logger)
	results := p.Probe(context.Background(), []string{server.URL})

	result := results[server.URL]
	require.Equal(t, StatusWrongBytecode, result.Status)
	require.True(t, result.WellFormed())
}

func TestProbeOneClassifiesSyncing(t *testing.T) {
	codeHex := "0x" + common.Permit2BytecodeSample()
	server := httptest.NewServer(rpcHandler(t, jsonQuote(codeHex), "true"))
	defer server.Close()

	logger := zerolog.Nop()
	p := New(2*time.Second, &logger)
	results := p.Probe(context.Background(), []string{server.URL})

	result := results[server.URL]
	require.Equal(t, StatusSyncing, result.Status)
}

func TestProbeOneClassifiesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger := zerolog.Nop()
	p := New(2*time.Second, &logger)
	results := p.Probe(context.Background(), []string{server.URL})

	result := results[server.URL]
	require.Equal(t, StatusHTTPError, result.Status)
	require.True(t, result.WellFormed())
}

func TestProbeOneClassifiesRPCError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":"x","error":{"code":-32601,"message":"method not found"}}`))
	}))
	defer server.Close()

	logger := zerolog.Nop()
	p := New(2*time.Second, &logger)
	results := p.Probe(context.Background(), []string{server.URL})

	result := results[server.URL]
	require.Equal(t, StatusRPCError, result.Status)
}

func TestProbeOneClassifiesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{"jsonrpc":"2.0","id":"x","result":"0x"}`))
	}))
	defer server.Close()

	logger := zerolog.Nop()
	p := New(20*time.Millisecond, &logger)
	results := p.Probe(context.Background(), []string{server.URL})

	result := results[server.URL]
	require.Equal(t, StatusTimeout, result.Status)
	require.True(t, result.WellFormed())
}

func TestProbeSettlesIndependently(t *testing.T) {
	good := httptest.NewServer(rpcHandler(t, jsonQuote("0x"+common.Permit2BytecodeSample()), "false"))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()

	logger := zerolog.Nop()
	p := New(2*time.Second, &logger)
	results := p.Probe(context.Background(), []string{good.URL, bad.URL})

	require.Equal(t, StatusOK, results[good.URL].Status)
	require.Equal(t, StatusHTTPError, results[bad.URL].Status)
}
