package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cedab23/blueprints/internal/api/middleware"
	"github.com/cedab23/blueprints/internal/api/response"
)

// DBPinger checks database connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	pinger  DBPinger
	backend string
	version string
}

// NewHealthHandler creates a new HealthHandler. A nil pinger means the store
// runs in process and is always reachable.
func NewHealthHandler(pinger DBPinger, backend, version string) *HealthHandler {
	return &HealthHandler{
		pinger:  pinger,
		backend: backend,
		version: version,
	}
}

type storeStatus struct {
	Backend   string `json:"backend"`
	Connected bool   `json:"connected"`
}

type healthData struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Store   storeStatus `json:"store"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	connected := true
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			slog.Warn("database ping failed", "error", err, "requestId", middleware.GetRequestID(r.Context()))
			connected = false
		}
	}

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	data := healthData{
		Status:  status,
		Version: h.version,
		Store: storeStatus{
			Backend:   h.backend,
			Connected: connected,
		},
	}

	response.Success(w, http.StatusOK, data, "Service is "+status)
}
