package controllers

import (
	"fmt"
	"net/http"
)

// HealthController serves the liveness endpoint
type HealthController struct{}

// NewHealthController creates a new health controller
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Index handles GET /health
func (c *HealthController) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status": "healthy", "service": "visit-logger"}`)
}
