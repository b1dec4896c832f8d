package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jsamuelsen11/usertask-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry     ports.HealthRegistry
	probeTimeout time.Duration
}

// NewHealthHandler creates a HealthHandler. Each readiness probe gives the
// registered checks at most probeTimeout; zero leaves the request deadline
// in charge.
func NewHealthHandler(registry ports.HealthRegistry, probeTimeout time.Duration) *HealthHandler {
	return &HealthHandler{registry: registry, probeTimeout: probeTimeout}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if every check passes
// and 503 with the failing checks' errors otherwise. A store that cannot
// answer within the probe timeout counts as failing.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.probeTimeout)
		defer cancel()
	}

	results := h.registry.CheckAll(ctx)

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = statusOK
	}

	status, code := statusReady, http.StatusOK
	if !healthy {
		status, code = statusNotReady, http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
