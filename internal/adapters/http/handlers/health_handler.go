package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/jsamuelsen11/brandgate/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
	statusTimeout  = "timeout"
)

// HealthHandler serves liveness and readiness. Readiness reflects the
// analysis backend the gateway forwards to.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when every backend check passes,
// 503 otherwise. A check that exceeded its deadline reports "timeout".
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	code := http.StatusOK
	for name, err := range results {
		checks[name] = checkStatus(err)
		if err != nil {
			code = http.StatusServiceUnavailable
		}
	}

	status := statusReady
	if code != http.StatusOK {
		status = statusNotReady
	}
	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}

func checkStatus(err error) string {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, context.DeadlineExceeded):
		return statusTimeout
	default:
		return err.Error()
	}
}
