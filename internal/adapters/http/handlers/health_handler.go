package handlers

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/todo-spa-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-spa-service/internal/ports"
)

const (
	statusOK          = "ok"
	statusReady       = "ready"
	statusNotReady    = "not_ready"
	statusUnavailable = "unavailable"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. It runs every registered repository
// check and answers 503 if any failed. Failure details go to the log, the
// response only says which dependency is unavailable. With nothing
// registered (the in-memory store) the service is always ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(results))
	var failed []string
	for _, name := range names {
		if err := results[name]; err != nil {
			checks[name] = statusUnavailable
			failed = append(failed, name)
			logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
				slog.String("check", name),
				slog.Any("error", err),
			)
			continue
		}
		checks[name] = statusOK
	}

	status, code := statusReady, http.StatusOK
	if len(failed) > 0 {
		status, code = statusNotReady, http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
