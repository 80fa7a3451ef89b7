package services

import (
	"github.com/blogem/visit-logger/metrics"
	"github.com/blogem/visit-logger/repositories"
)

// Services holds all service instances
type Services struct {
	Visit VisitService
}

// NewServices creates and initializes all service instances.
// m may be nil when metrics are disabled.
func NewServices(repos *repositories.Repositories, m *metrics.Metrics) *Services {
	return &Services{
		Visit: NewVisitService(repos.Visit, m),
	}
}
