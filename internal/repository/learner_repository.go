package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

// LearnerRepository reads enterprise learners.
type LearnerRepository struct {
	db *sqlx.DB
}

// NewLearnerRepository constructs the repository.
func NewLearnerRepository(db *sqlx.DB) *LearnerRepository {
	return &LearnerRepository{db: db}
}

// ExistsForEnterprise reports whether any learner is linked to the enterprise.
func (r *LearnerRepository) ExistsForEnterprise(ctx context.Context, enterpriseID string) (bool, error) {
	stmt := query.LearnersFor(enterpriseID).Select("1", "LIMIT 1")
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS ("+stmt.SQL+")", stmt.Args...); err != nil {
		return false, fmt.Errorf("check enterprise learners: %w", err)
	}
	return exists, nil
}

// CountForEnterprise counts every learner linked to the enterprise.
func (r *LearnerRepository) CountForEnterprise(ctx context.Context, enterpriseID string) (int, error) {
	return r.count(ctx, query.CountRows(query.LearnersFor(enterpriseID)))
}

// List returns one page of learners matching q plus the unpaged total.
func (r *LearnerRepository) List(ctx context.Context, q query.Query, params query.LearnerParams, orderBy string, page models.PageRequest) ([]models.Learner, int, error) {
	total, err := r.count(ctx, query.CountRows(q))
	if err != nil {
		return nil, 0, err
	}

	stmt := q.Select(query.LearnerColumns(params), orderBy, query.LimitOffset(page))
	var learners []models.Learner
	if err := r.db.SelectContext(ctx, &learners, stmt.SQL, stmt.Args...); err != nil {
		return nil, 0, fmt.Errorf("list learners: %w", err)
	}
	return learners, total, nil
}

// CompletedCourses returns one page of per-email completed course counts plus
// the number of distinct emails.
func (r *LearnerRepository) CompletedCourses(ctx context.Context, enterpriseID, orderBy string, page models.PageRequest) ([]models.LearnerCompletedCourses, int, error) {
	q := query.CompletedCourses(enterpriseID)
	total, err := r.count(ctx, q.Select("COUNT(DISTINCT user_email)"))
	if err != nil {
		return nil, 0, err
	}

	stmt := q.Select(query.CompletedCoursesColumns, query.CompletedCoursesGroupBy, orderBy, query.LimitOffset(page))
	var rows []models.LearnerCompletedCourses
	if err := r.db.SelectContext(ctx, &rows, stmt.SQL, stmt.Args...); err != nil {
		return nil, 0, fmt.Errorf("list completed courses: %w", err)
	}
	return rows, total, nil
}

func (r *LearnerRepository) count(ctx context.Context, stmt query.Statement) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, stmt.SQL, stmt.Args...); err != nil {
		return 0, fmt.Errorf("count learners: %w", err)
	}
	return count, nil
}
