package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/visit-logger/controllers"
	"github.com/blogem/visit-logger/metrics"
	vlmiddleware "github.com/blogem/visit-logger/middleware"
)

// NewRouter configures all routes. m may be nil, in which case /metrics
// is not registered.
func NewRouter(ctrl *controllers.Controllers, m *metrics.Metrics) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(vlmiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", ctrl.Home.Index)
	r.Get("/health", ctrl.Health.Index)

	if m != nil {
		r.Method("GET", "/metrics", m.Handler())
	}

	return r
}
