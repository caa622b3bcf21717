package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpgo/card-optimizer/internal/calculation"
	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/rpgo/card-optimizer/internal/repository"
	"github.com/rpgo/card-optimizer/pkg/dateutil"
)

const maxBodyBytes = 1 << 20

// Objective is the description returned by the welcome endpoint.
const Objective = "Find out if you could save on your total credit/loan balance by changing how much you put on each card. " +
	"We wish to suggest how much you should put towards each of your credit cards so that your next month total balance " +
	"is the lowest possible."

// Optimizer is the calculation surface the handlers need.
type Optimizer interface {
	Allocate(ctx context.Context, req *domain.Request) (*domain.AllocationSummary, error)
	Compare(ctx context.Context, req *domain.Request) (*domain.ComparisonReport, error)
}

type CardHandler struct {
	engine Optimizer
	cache  repository.CacheRepository
	logger calculation.Logger
}

// NewCardHandler wires the handlers; cache may be nil to disable response caching.
func NewCardHandler(engine Optimizer, cache repository.CacheRepository, logger calculation.Logger) *CardHandler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &CardHandler{engine: engine, cache: cache, logger: logger}
}

type welcomeResponse struct {
	Message   string `json:"Message"`
	Objective string `json:"Objective"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *CardHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, welcomeResponse{Message: "Welcome", Objective: Objective})
}

// SuggestPayments handles POST /cards.
func (h *CardHandler) SuggestPayments(w http.ResponseWriter, r *http.Request) {
	req, key, ok := h.decode(w, r, "cards")
	if !ok {
		return
	}
	if h.serveCached(w, key) {
		return
	}
	summary, err := h.engine.Allocate(r.Context(), req)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeAndCache(w, key, summary)
}

// CompareStrategies handles POST /cards/12.
func (h *CardHandler) CompareStrategies(w http.ResponseWriter, r *http.Request) {
	req, key, ok := h.decode(w, r, "compare", dateutil.MonthKey(calculation.Now()))
	if !ok {
		return
	}
	if h.serveCached(w, key) {
		return
	}
	report, err := h.engine.Compare(r.Context(), req)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	h.writeAndCache(w, key, report)
}

func (h *CardHandler) decode(w http.ResponseWriter, r *http.Request, operation string, keyParts ...string) (*domain.Request, string, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, "", false
	}
	var req domain.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, "", false
	}
	if h.cache == nil {
		return &req, "", true
	}
	canonical, err := json.Marshal(req)
	if err != nil {
		return &req, "", true
	}
	return &req, repository.CacheKey(operation, canonical, keyParts...), true
}

func (h *CardHandler) serveCached(w http.ResponseWriter, key string) bool {
	if key == "" {
		return false
	}
	body, ok := h.cache.Get(key)
	if !ok {
		return false
	}
	h.logger.Debugf("cache hit %s", key)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "HIT")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
	return true
}

func (h *CardHandler) writeAndCache(w http.ResponseWriter, key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	if key != "" {
		// not critical if caching fails
		if err := h.cache.Set(key, string(body)); err != nil {
			h.logger.Warnf("failed to cache response: %v", err)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *CardHandler) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, calculation.ErrInfeasible):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Errorf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Detail: msg})
}
