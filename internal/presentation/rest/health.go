package rest

import (
	"log/slog"
	"net/http"

	"github.com/harborbank/scoring-service/internal/domain/port"
)

// HealthHandler serves liveness and readiness probes over HTTP. Readiness
// reports ready only once a usable scorer is loaded, so orchestrators keep
// traffic away from instances whose artifact failed to load.
type HealthHandler struct {
	model  port.ModelClient
	logger *slog.Logger
}

// NewHealthHandler creates the probe handler. model may be nil when the
// artifact could not be loaded; the instance then stays not-ready.
func NewHealthHandler(model port.ModelClient, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{model: model, logger: logger}
}

// RegisterRoutes attaches probe routes to the given mux. GET /health keeps
// the original flat contract; /healthz and /readyz serve orchestrators.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
}

func (h *HealthHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "scoring-service",
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, _ *http.Request) {
	if h.model == nil || h.model.Info().NumFeatures <= 0 {
		h.logger.Warn("readiness check failed, scorer not loaded")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unavailable",
			"service": "scoring-service",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "scoring-service",
		"model":   h.model.Info().ModelType,
	})
}
