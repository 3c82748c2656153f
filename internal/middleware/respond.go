package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody is the unified error shape shared by every JSON error response.
type errorBody struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Success:   false,
		Message:   message,
		ErrorCode: code,
	})
}
