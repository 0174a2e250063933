package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
	"github.com/noah-isme/enterprise-data-api/pkg/tracing"
)

type learnerRepository interface {
	List(ctx context.Context, q query.Query, params query.LearnerParams, orderBy string, page models.PageRequest) ([]models.Learner, int, error)
	CompletedCourses(ctx context.Context, enterpriseID, orderBy string, page models.PageRequest) ([]models.LearnerCompletedCourses, int, error)
}

// DefaultLearnerOrdering orders learners by email.
var DefaultLearnerOrdering = query.Ordering{Field: "user_email"}

// LearnerService lists enterprise learners and their completions.
type LearnerService struct {
	repo    learnerRepository
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewLearnerService constructs the service.
func NewLearnerService(repo learnerRepository, metrics *MetricsService, logger *zap.Logger) *LearnerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LearnerService{repo: repo, metrics: metrics, logger: logger, now: time.Now}
}

// List returns one page of learners. Annotation columns can only be ordered
// on when they were requested.
func (s *LearnerService) List(ctx context.Context, enterpriseID string, params query.LearnerParams, ordering string, page models.PageRequest) (result *dto.LearnerList, err error) {
	ctx, span := tracing.StartSpan(ctx, "LearnerService.List", attribute.String("enterprise_id", enterpriseID))
	defer func() { tracing.EndSpan(span, err) }()

	allowed := func(field string) bool {
		if _, ok := query.LearnerOrderColumns[field]; !ok {
			return false
		}
		switch field {
		case models.LearnerExtraEnrollmentCount, models.LearnerExtraCourseCompletionCount:
			return params.WantsExtra(field)
		}
		return true
	}
	orderBy := query.OrderBy(query.ParseOrdering(ordering, allowed, DefaultLearnerOrdering),
		query.LearnerOrderColumns, "l.enterprise_user_id ASC")

	q := query.FilterLearners(query.LearnersFor(enterpriseID), params, s.now())
	s.logger.Debug("listing learners", zap.String("enterprise_id", enterpriseID), zap.Strings("filters", q.Names()))

	start := time.Now()
	learners, total, err := s.repo.List(ctx, q, params, orderBy, page)
	s.metrics.ObserveDBQuery("learners.list", time.Since(start))
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load learners")
	}
	if learners == nil {
		learners = []models.Learner{}
	}

	result = &dto.LearnerList{Learners: learners}
	if !page.Disabled {
		result.Pagination = models.NewPagination(page.Page, page.PageSize, total)
	}
	return result, nil
}

// CompletedCourses returns per-email counts of passed, consented enrollments.
func (s *LearnerService) CompletedCourses(ctx context.Context, enterpriseID, ordering string, page models.PageRequest) (result *dto.CompletedCoursesList, err error) {
	ctx, span := tracing.StartSpan(ctx, "LearnerService.CompletedCourses", attribute.String("enterprise_id", enterpriseID))
	defer func() { tracing.EndSpan(span, err) }()

	allowed := func(field string) bool {
		_, ok := query.CompletedCoursesOrderColumns[field]
		return ok
	}
	orderings := query.ParseOrdering(ordering, allowed, DefaultLearnerOrdering)
	tiebreak := ""
	if orderings[0].Field != "user_email" {
		tiebreak = "user_email ASC"
	}
	orderBy := query.OrderBy(orderings, query.CompletedCoursesOrderColumns, tiebreak)

	start := time.Now()
	rows, total, err := s.repo.CompletedCourses(ctx, enterpriseID, orderBy, page)
	s.metrics.ObserveDBQuery("learners.completed_courses", time.Since(start))
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load completed courses")
	}
	if rows == nil {
		rows = []models.LearnerCompletedCourses{}
	}

	result = &dto.CompletedCoursesList{Learners: rows}
	if !page.Disabled {
		result.Pagination = models.NewPagination(page.Page, page.PageSize, total)
	}
	return result, nil
}
