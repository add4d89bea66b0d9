// Package server exposes the dispatcher over HTTP per spec.md §6: one
// POST endpoint per chain, accepting a single JSON-RPC request or a
// batch, modeled on the teacher's erpc/http_server.go handler.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ubiquity/permit2-rpc-manager/common"
	"github.com/ubiquity/permit2-rpc-manager/config"
	"github.com/ubiquity/permit2-rpc-manager/dispatcher"
)

// Sender is the subset of *dispatcher.Dispatcher the server depends on.
type Sender interface {
	Send(ctx context.Context, chainId uint64, method string, params []interface{}) (json.RawMessage, error)
}

var _ Sender = (*dispatcher.Dispatcher)(nil)

type Server struct {
	config *config.ServerConfig
	server *http.Server
	sender Sender
	logger *zerolog.Logger
}

func New(ctx context.Context, logger *zerolog.Logger, cfg *config.ServerConfig, sender Sender) *Server {
	addr := fmt.Sprintf("%s:%s", cfg.HttpHost, cfg.HttpPort)

	srv := &Server{
		config: cfg,
		sender: sender,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleRequest)

	srv.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down http server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("http server forced to shutdown")
		} else {
			logger.Info().Msg("http server stopped")
		}
	}()

	return srv
}

func (s *Server) Start() error {
	s.logger.Info().Msgf("starting http server on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleRequest implements POST /{chainId} and the bare OPTIONS preflight
// for it (spec.md §6 "HTTP collaborator").
func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		s.writeCORSHeaders(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeCORSHeaders(w)

	if r.Method != http.MethodPost {
		writeError(s.logger, w, &common.BaseError{Code: "ErrMethodNotAllowed", Message: "only POST is supported"}, http.StatusMethodNotAllowed)
		return
	}

	chainId, err := parseChainId(r.URL.Path)
	if err != nil {
		writeJsonRpcError(s.logger, w, nil, -32600, "invalid chain id in path")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJsonRpcError(s.logger, w, nil, -32600, "failed to read request body")
		return
	}

	batch, single, err := parseBody(body)
	if err != nil {
		writeJsonRpcError(s.logger, w, nil, -32700, "parse error")
		return
	}

	if len(batch) == 0 {
		writeJsonRpcError(s.logger, w, nil, -32600, "invalid request: empty batch")
		return
	}
	if len(batch) > s.config.MaxBatchSize {
		writeJsonRpcError(s.logger, w, nil, -32600, fmt.Sprintf("batch of %d exceeds max batch size %d", len(batch), s.config.MaxBatchSize))
		return
	}

	responses := make([]common.JsonRpcResponse, len(batch))
	statusCode := http.StatusOK
	for i, req := range batch {
		resp, err := s.dispatchOne(r.Context(), chainId, req)
		responses[i] = resp
		if code := dispatchStatusCode(err); code > statusCode {
			statusCode = code
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if single {
		json.NewEncoder(w).Encode(responses[0])
		return
	}
	json.NewEncoder(w).Encode(responses)
}

func (s *Server) dispatchOne(ctx context.Context, chainId uint64, req common.JsonRpcRequest) (common.JsonRpcResponse, error) {
	if req.JSONRPC != "2.0" {
		return errorResponse(req.ID, -32600, `invalid request: jsonrpc must be "2.0"`), nil
	}
	if req.Method == "" {
		return errorResponse(req.ID, -32600, "invalid request: missing method"), nil
	}

	result, err := s.sender.Send(ctx, chainId, req.Method, req.Params)
	if err != nil {
		s.logger.Debug().Err(err).Uint64("chainId", chainId).Str("method", req.Method).Msg("dispatch failed")
		return errorResponse(req.ID, -32000, err.Error()), err
	}

	return common.JsonRpcResponse{JSONRPC: "2.0", ID: req.ID, Result: result}, nil
}

// dispatchStatusCode mirrors the teacher's status-then-body pattern
// (erpc/http_server.go): pick the HTTP status off the error itself via
// common.ErrorWithStatusCode, defaulting to 500 for any other dispatch
// failure rather than letting it fall through as a 200.
func dispatchStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var withCode common.ErrorWithStatusCode
	if errors.As(err, &withCode) {
		return withCode.ErrorStatusCode()
	}
	return http.StatusInternalServerError
}

func errorResponse(id interface{}, code int, message string) common.JsonRpcResponse {
	return common.JsonRpcResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &common.JsonRpcError{Code: code, Message: message},
	}
}

func writeJsonRpcError(logger *zerolog.Logger, w http.ResponseWriter, id interface{}, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(errorResponse(id, code, message)); err != nil {
		logger.Error().Err(err).Msg("failed to encode json-rpc error response")
	}
}

func writeError(logger *zerolog.Logger, w http.ResponseWriter, err error, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encErr := json.NewEncoder(w).Encode(err); encErr != nil {
		logger.Error().Err(encErr).Msg("failed to encode error response")
	}
}

// writeCORSHeaders allows any origin to call the proxy; there is no
// per-project CORS configuration in this system (spec.md has no notion
// of projects, unlike the teacher).
func (s *Server) writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

func parseChainId(path string) (uint64, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return 0, fmt.Errorf("empty chain id")
	}
	return strconv.ParseUint(trimmed, 10, 64)
}

// parseBody decodes either a single JSON-RPC request object or a batch
// array, returning single=true for the former (spec.md §6 batch handling).
func parseBody(body []byte) (batch []common.JsonRpcRequest, single bool, err error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty body")
	}

	if trimmed[0] == '[' {
		if err := common.JSONCfg.Unmarshal(trimmed, &batch); err != nil {
			return nil, false, err
		}
		return batch, false, nil
	}

	var singleReq common.JsonRpcRequest
	if err := common.JSONCfg.Unmarshal(trimmed, &singleReq); err != nil {
		return nil, false, err
	}
	return []common.JsonRpcRequest{singleReq}, true, nil
}
