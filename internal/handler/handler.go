// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/subcheck/subcheck/internal/handler/dto"
)

// Version is the reported service version.
const Version = "2.0.0"

// ServiceName is the human-readable service identifier.
const ServiceName = "Subcheck Subscription Validation Service"

// Handler wraps the route-less fallback handlers.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Root is the service info endpoint.
// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"service": ServiceName,
		"version": Version,
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles requests matching no registered route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
		Success:   false,
		Message:   "Endpoint not found",
		ErrorCode: "NOT_FOUND",
	})
}

// MethodNotAllowed handles requests with an unsupported method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, dto.ErrorResponse{
		Success:   false,
		Message:   "Method not allowed",
		ErrorCode: "METHOD_NOT_ALLOWED",
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}
