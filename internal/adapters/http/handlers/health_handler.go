package handlers

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
	statusFailing  = "failing"
)

type livenessResponse struct {
	Status string `json:"status"`
}

type componentStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status     string            `json:"status"`
	Components []componentStatus `json:"components"`
}

// HealthHandler serves the Kubernetes-style probes. Readiness reflects the
// storage backends registered with the registry.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, livenessResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Any failing component turns the
// whole probe into a 503. Components are listed by name.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{
		Status:     statusReady,
		Components: make([]componentStatus, 0, len(results)),
	}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		c := componentStatus{Name: name, Status: statusOK}
		if err := results[name]; err != nil {
			c.Status = statusFailing
			c.Error = err.Error()
			resp.Status = statusNotReady
			slog.WarnContext(r.Context(), "readiness check failed",
				slog.String("component", name),
				slog.Any("error", err),
			)
		}
		resp.Components = append(resp.Components, c)
	}

	code := http.StatusOK
	if resp.Status == statusNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
