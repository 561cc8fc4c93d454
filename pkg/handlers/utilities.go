package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// ResponseWrapper wraps http.ResponseWriter to capture status codes for logging middleware.
type ResponseWrapper struct {
	http.ResponseWriter
	StatusCode int
	Written    bool
}

func NewResponseWrapper(w http.ResponseWriter) *ResponseWrapper {
	return &ResponseWrapper{ResponseWriter: w, StatusCode: http.StatusOK}
}

func (rw *ResponseWrapper) WriteHeader(statusCode int) {
	if !rw.Written {
		rw.StatusCode = statusCode
		rw.Written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *ResponseWrapper) Write(data []byte) (int, error) {
	if !rw.Written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(data)
}

// LogRequest logs HTTP request details, skipping the health check endpoint to reduce noise.
func LogRequest(r *http.Request, statusCode int, duration time.Duration, metadata map[string]interface{}) {
	if r.URL.Path == "/health" {
		return
	}

	fields := []interface{}{
		"method", r.Method,
		"path", r.URL.Path,
		"status", statusCode,
		"duration", duration.String(),
		"remote_addr", r.RemoteAddr,
	}
	for key, value := range metadata {
		fields = append(fields, key, value)
	}

	if statusCode >= 400 {
		fields = append(fields, "query", r.URL.RawQuery)
		slog.Warn("http request error", fields...)
	} else {
		slog.Info("http request", fields...)
	}
}
