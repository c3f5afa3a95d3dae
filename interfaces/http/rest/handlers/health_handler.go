package handlers

import (
	"net/http"

	"github.com/sony/gobreaker"

	"portfolio/pkg/common"
	"portfolio/pkg/utils"
)

// StoreState reports the circuit breaker in front of the content store
type StoreState interface {
	State() gobreaker.State
}

// HealthHandler answers liveness and readiness probes
type HealthHandler struct {
	store StoreState
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store StoreState) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse is the body of both probes
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store,omitempty"`
	Time   string `json:"time"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Time: utils.NowRFC3339()})
}

// Ready handles GET /ready. The service is not ready while the breaker is
// open because every content call would fail fast.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	state := h.store.State()
	resp := HealthResponse{Status: "ready", Store: state.String(), Time: utils.NowRFC3339()}
	if state == gobreaker.StateOpen {
		resp.Status = "unavailable"
		common.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	common.RespondJSON(w, http.StatusOK, resp)
}
