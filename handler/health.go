package handler

import (
	"net/http"
	"time"

	"github.com/mstgnz/netopia/infra/response"
)

// Health handles health check requests
func Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Service is healthy", map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	})
}
