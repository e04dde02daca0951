package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// HealthHandler serves liveness, readiness and version endpoints.
type HealthHandler struct {
	version   string
	buildTime string
	startedAt time.Time
	logger    *slog.Logger
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(version, buildTime string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		version:   version,
		buildTime: buildTime,
		startedAt: time.Now(),
		logger:    logger.With(slog.String("component", "health_handler")),
	}
}

// HealthCheck handles GET /api/health.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":  "healthy",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// LivenessCheck handles GET /api/health/live.
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"status": "alive"})
}

// ReadinessCheck handles GET /api/health/ready. The service holds everything
// in memory and is ready as soon as it is serving.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"status": "ready"})
}

// Version handles GET /api/version.
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"version":    h.version,
		"build_time": h.buildTime,
	})
}
