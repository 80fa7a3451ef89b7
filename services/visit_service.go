package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/blogem/visit-logger/metrics"
	"github.com/blogem/visit-logger/models"
	"github.com/blogem/visit-logger/repositories"
)

// VisitService defines the interface for recording visits
type VisitService interface {
	RecordHomepageVisit(ctx context.Context, visit *models.Visit) error
}

type visitService struct {
	visitRepo repositories.VisitRepository
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewVisitService creates a new visit service
func NewVisitService(visitRepo repositories.VisitRepository, m *metrics.Metrics) VisitService {
	return &visitService{
		visitRepo: visitRepo,
		metrics:   m,
		now:       time.Now,
	}
}

// RecordHomepageVisit appends one visit to the repository
func (s *visitService) RecordHomepageVisit(ctx context.Context, visit *models.Visit) error {
	if visit == nil {
		visit = &models.Visit{}
	}
	if visit.Timestamp.IsZero() {
		visit.Timestamp = s.now()
	}

	if err := s.visitRepo.Append(ctx, visit); err != nil {
		s.metrics.IncVisit(metrics.StatusError)
		return fmt.Errorf("record homepage visit: %w", err)
	}

	s.metrics.IncVisit(metrics.StatusSuccess)
	log.Debug().
		Str("ip", visit.IPAddress).
		Time("timestamp", visit.Timestamp).
		Msg("Homepage visit recorded")

	return nil
}
