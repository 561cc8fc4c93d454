package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// StandardResponse is the envelope for every non-huma JSON response this service writes.
type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSONResponse(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}

// ErrorResponse writes a typed error envelope. Per the collapse-to-500 policy, callers
// should only ever pass http.StatusNotFound or http.StatusInternalServerError here.
func ErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	JSONResponse(w, StandardResponse{
		Success: false,
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}

func NotFoundResponse(w http.ResponseWriter, resource string) {
	ErrorResponse(w, resource+" not found", http.StatusNotFound)
}
