package handler

import (
	"net/http"
	"time"
)

// HealthHandler serves the health and system status endpoints.
type HealthHandler struct {
	startedAt       time.Time
	maintenanceMode bool

	// now is injectable for tests.
	now func() time.Time
}

// NewHealthHandler creates a HealthHandler anchored at the process start time.
func NewHealthHandler(startedAt time.Time, maintenanceMode bool) *HealthHandler {
	return &HealthHandler{
		startedAt:       startedAt,
		maintenanceMode: maintenanceMode,
		now:             time.Now,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Version   string  `json:"version"`
	Uptime    float64 `json:"uptime"`
}

// Health reports liveness and process uptime in seconds.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "operational",
		Timestamp: now.UTC().Format(time.RFC3339),
		Version:   Version,
		Uptime:    now.Sub(h.startedAt).Seconds(),
	})
}

// StatusResponse represents the system status response.
type StatusResponse struct {
	Service         string `json:"service"`
	Status          string `json:"status"`
	MaintenanceMode bool   `json:"maintenance_mode"`
	LastUpdate      string `json:"last_update"`
}

// Status reports overall service status.
//
// GET /api/status
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Service:         ServiceName,
		Status:          "active",
		MaintenanceMode: h.maintenanceMode,
		LastUpdate:      h.now().UTC().Format(time.RFC3339),
	})
}
