package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
	"github.com/noah-isme/enterprise-data-api/pkg/tracing"
)

type insightsRepository interface {
	LearnerProgress(ctx context.Context, enterpriseID string) (*models.LearnerProgress, error)
	LearnerEngagement(ctx context.Context, enterpriseID string) (*models.LearnerEngagement, error)
}

// InsightsService assembles the admin insight snapshots.
type InsightsService struct {
	repo    insightsRepository
	metrics *MetricsService
}

// NewInsightsService constructs the service.
func NewInsightsService(repo insightsRepository, metrics *MetricsService) *InsightsService {
	return &InsightsService{repo: repo, metrics: metrics}
}

// Get returns whichever snapshots exist; not found when neither does.
func (s *InsightsService) Get(ctx context.Context, enterpriseID string) (insights *dto.Insights, err error) {
	ctx, span := tracing.StartSpan(ctx, "InsightsService.Get", attribute.String("enterprise_id", enterpriseID))
	defer func() { tracing.EndSpan(span, err) }()

	result := &dto.Insights{}

	start := time.Now()
	progress, err := s.repo.LearnerProgress(ctx, enterpriseID)
	s.metrics.ObserveDBQuery("insights.learner_progress", time.Since(start))
	switch {
	case err == nil:
		result.LearnerProgress = progress
	case !errors.Is(err, sql.ErrNoRows):
		return nil, appErrors.Internal(err, "failed to load learner progress")
	}

	start = time.Now()
	engagement, err := s.repo.LearnerEngagement(ctx, enterpriseID)
	s.metrics.ObserveDBQuery("insights.learner_engagement", time.Since(start))
	switch {
	case err == nil:
		result.LearnerEngagement = engagement
	case !errors.Is(err, sql.ErrNoRows):
		return nil, appErrors.Internal(err, "failed to load learner engagement")
	}

	if result.Empty() {
		return nil, appErrors.NotFoundf("no insights found for enterprise %s", enterpriseID)
	}
	return result, nil
}
