package controllers

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/blogem/visit-logger/middleware"
	"github.com/blogem/visit-logger/models"
	"github.com/blogem/visit-logger/services"
)

// HomeController handles homepage requests
type HomeController struct {
	services *services.Services
}

// NewHomeController creates a new home controller
func NewHomeController(services *services.Services) *HomeController {
	return &HomeController{
		services: services,
	}
}

// Index handles GET /
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	visit := &models.Visit{
		Method:    r.Method,
		Path:      r.URL.Path,
		UserAgent: r.UserAgent(),
		IPAddress: middleware.ClientIP(r),
	}

	if err := c.services.Visit.RecordHomepageVisit(r.Context(), visit); err != nil {
		log.Error().Err(err).Str("ip", visit.IPAddress).Msg("Failed to log visit")
		http.Error(w, "Failed to log visit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, models.VisitConfirmation)
}
