package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
	"github.com/noah-isme/enterprise-data-api/pkg/tracing"
)

// Cache coordinates of the filtered enrollment set.
const (
	EnrollmentCacheResource = "enterprise-learner"
	EnrollmentCacheVersion  = "v1"
)

type enrollmentRepository interface {
	List(ctx context.Context, q query.Query, tail ...string) ([]models.Enrollment, error)
	Count(ctx context.Context, stmt query.Statement) (int, error)
	LastUpdated(ctx context.Context, q query.Query) (*time.Time, error)
}

type enterpriseLearnerDirectory interface {
	ExistsForEnterprise(ctx context.Context, enterpriseID string) (bool, error)
	CountForEnterprise(ctx context.Context, enterpriseID string) (int, error)
}

// EnrollmentListRequest selects one page of an enterprise's enrollments.
type EnrollmentListRequest struct {
	EnterpriseID string
	Params       query.EnrollmentParams
	Ordering     []query.Ordering
	Page         models.PageRequest
}

// EnrollmentList is one page of enrollments.
type EnrollmentList struct {
	Enrollments []models.Enrollment
	Pagination  *models.Pagination
	CacheHit    bool
}

// EnrollmentService lists and summarises consented enrollments.
type EnrollmentService struct {
	enrollments enrollmentRepository
	learners    enterpriseLearnerDirectory
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
	ttl         time.Duration
	now         func() time.Time
}

// NewEnrollmentService constructs the service. ttl bounds how long a filtered
// enrollment set is reused.
func NewEnrollmentService(enrollments enrollmentRepository, learners enterpriseLearnerDirectory, cache *CacheService, metrics *MetricsService, logger *zap.Logger, ttl time.Duration) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		enrollments: enrollments,
		learners:    learners,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		ttl:         ttl,
		now:         time.Now,
	}
}

// List returns one page of the filtered enrollment set. The set itself is
// cached per enterprise and filter combination; ordering and paging are
// applied to it on every call.
func (s *EnrollmentService) List(ctx context.Context, req EnrollmentListRequest) (result *EnrollmentList, err error) {
	ctx, span := tracing.StartSpan(ctx, "EnrollmentService.List", attribute.String("enterprise_id", req.EnterpriseID))
	defer func() { tracing.EndSpan(span, err) }()

	rows, hit, err := s.filteredSet(ctx, req.EnterpriseID, req.Params)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("cache_hit", hit), attribute.Int("rows", len(rows)))

	orderings := req.Ordering
	if len(orderings) == 0 {
		orderings = []query.Ordering{DefaultEnrollmentOrdering}
	}
	sortEnrollments(rows, orderings)

	var pagination *models.Pagination
	if !req.Page.Disabled {
		pagination = models.NewPagination(req.Page.Page, req.Page.PageSize, len(rows))
	}
	return &EnrollmentList{
		Enrollments: paginate(rows, req.Page),
		Pagination:  pagination,
		CacheHit:    hit,
	}, nil
}

func (s *EnrollmentService) filteredSet(ctx context.Context, enterpriseID string, params query.EnrollmentParams) ([]models.Enrollment, bool, error) {
	key := CacheKey{
		Version:      EnrollmentCacheVersion,
		Resource:     EnrollmentCacheResource,
		EnterpriseID: enterpriseID,
		Fingerprint:  params.Fingerprint(),
	}
	return Remember(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]models.Enrollment, error) {
		s.warnUnknownEnterprise(ctx, enterpriseID)

		q := query.FilterEnrollments(query.EnrollmentsFor(enterpriseID), params, s.now())
		start := time.Now()
		rows, err := s.enrollments.List(ctx, q)
		s.metrics.ObserveDBQuery("enrollments.list", time.Since(start))
		if err != nil {
			return nil, appErrors.Internal(err, "failed to load enrollments")
		}
		if rows == nil {
			rows = []models.Enrollment{}
		}
		return rows, nil
	})
}

func (s *EnrollmentService) warnUnknownEnterprise(ctx context.Context, enterpriseID string) {
	exists, err := s.learners.ExistsForEnterprise(ctx, enterpriseID)
	if err != nil {
		s.logger.Warn("enterprise lookup failed", zap.String("enterprise_id", enterpriseID), zap.Error(err))
		return
	}
	if !exists {
		s.logger.Warn("no learners linked to enterprise", zap.String("enterprise_id", enterpriseID))
	}
}

// Overview summarises the filtered enrollments of an enterprise.
func (s *EnrollmentService) Overview(ctx context.Context, enterpriseID string, params query.EnrollmentParams) (overview *dto.EnrollmentOverview, err error) {
	ctx, span := tracing.StartSpan(ctx, "EnrollmentService.Overview", attribute.String("enterprise_id", enterpriseID))
	defer func() { tracing.EndSpan(span, err) }()

	now := s.now()
	q := query.FilterEnrollments(query.EnrollmentsFor(enterpriseID), params, now)

	counts, err := s.headlineCounts(ctx, q, now)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	lastUpdated, err := s.enrollments.LastUpdated(ctx, q)
	s.metrics.ObserveDBQuery("enrollments.max_created", time.Since(start))
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load enrollment overview")
	}

	start = time.Now()
	users, err := s.learners.CountForEnterprise(ctx, enterpriseID)
	s.metrics.ObserveDBQuery("learners.count", time.Since(start))
	if err != nil {
		return nil, appErrors.Internal(err, "failed to count enterprise users")
	}

	return &dto.EnrollmentOverview{
		EnrolledLearners:  counts.EnrolledLearners,
		ActiveLearners:    counts.ActiveLearners,
		CourseCompletions: counts.CourseCompletions,
		LastUpdatedDate:   lastUpdated,
		NumberOfUsers:     users,
	}, nil
}

// LegacyOverview is the v0 summary. An enterprise without consented
// enrollments is reported as not found.
func (s *EnrollmentService) LegacyOverview(ctx context.Context, enterpriseID string) (overview *dto.LegacyEnrollmentOverview, err error) {
	ctx, span := tracing.StartSpan(ctx, "EnrollmentService.LegacyOverview", attribute.String("enterprise_id", enterpriseID))
	defer func() { tracing.EndSpan(span, err) }()

	q := query.EnrollmentsFor(enterpriseID)
	if err = s.ensureEnrollments(ctx, enterpriseID, q); err != nil {
		return nil, err
	}
	counts, err := s.headlineCounts(ctx, q, s.now())
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// LegacyList is the v0 enrollment list, guarded like LegacyOverview.
func (s *EnrollmentService) LegacyList(ctx context.Context, enterpriseID string, page models.PageRequest) (result *EnrollmentList, err error) {
	ctx, span := tracing.StartSpan(ctx, "EnrollmentService.LegacyList", attribute.String("enterprise_id", enterpriseID))
	defer func() { tracing.EndSpan(span, err) }()

	q := query.EnrollmentsFor(enterpriseID)
	total, err := s.count(ctx, "enrollments.count", query.CountRows(q))
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, noEnrollmentsError(enterpriseID)
	}

	start := time.Now()
	rows, err := s.enrollments.List(ctx, q, "ORDER BY enrollment_id ASC", query.LimitOffset(page))
	s.metrics.ObserveDBQuery("enrollments.list", time.Since(start))
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load enrollments")
	}

	var pagination *models.Pagination
	if !page.Disabled {
		pagination = models.NewPagination(page.Page, page.PageSize, total)
	}
	return &EnrollmentList{Enrollments: rows, Pagination: pagination}, nil
}

func (s *EnrollmentService) ensureEnrollments(ctx context.Context, enterpriseID string, q query.Query) error {
	total, err := s.count(ctx, "enrollments.count", query.CountRows(q))
	if err != nil {
		return err
	}
	if total == 0 {
		return noEnrollmentsError(enterpriseID)
	}
	return nil
}

func noEnrollmentsError(enterpriseID string) error {
	return appErrors.NotFoundf("no course enrollments are associated with enterprise %s", enterpriseID)
}

func (s *EnrollmentService) headlineCounts(ctx context.Context, q query.Query, now time.Time) (*dto.LegacyEnrollmentOverview, error) {
	enrolled, err := s.count(ctx, "enrollments.distinct_learners", query.DistinctLearners(q))
	if err != nil {
		return nil, err
	}
	pastWeek, err := s.count(ctx, "enrollments.active_learners", query.ActiveLearners(q, query.PastWeek(now)))
	if err != nil {
		return nil, err
	}
	pastMonth, err := s.count(ctx, "enrollments.active_learners", query.ActiveLearners(q, query.PastMonth(now)))
	if err != nil {
		return nil, err
	}
	completions, err := s.count(ctx, "enrollments.course_completions", query.CourseCompletions(q))
	if err != nil {
		return nil, err
	}
	return &dto.LegacyEnrollmentOverview{
		EnrolledLearners:  enrolled,
		ActiveLearners:    dto.ActiveLearnerCounts{PastWeek: pastWeek, PastMonth: pastMonth},
		CourseCompletions: completions,
	}, nil
}

func (s *EnrollmentService) count(ctx context.Context, label string, stmt query.Statement) (int, error) {
	start := time.Now()
	n, err := s.enrollments.Count(ctx, stmt)
	s.metrics.ObserveDBQuery(label, time.Since(start))
	if err != nil {
		return 0, appErrors.Internal(err, fmt.Sprintf("failed to evaluate %s", label))
	}
	return n, nil
}
