package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

// EnrollmentRepository reads the enterprise enrollment fact table.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

var enrollmentSelectList = strings.Join(models.EnrollmentColumns(), ", ")

// List returns the enrollments matching q. tail carries optional ORDER BY and
// LIMIT fragments.
func (r *EnrollmentRepository) List(ctx context.Context, q query.Query, tail ...string) ([]models.Enrollment, error) {
	stmt := q.Select(enrollmentSelectList, tail...)
	var enrollments []models.Enrollment
	if err := r.db.SelectContext(ctx, &enrollments, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// Count evaluates a single-integer aggregate statement.
func (r *EnrollmentRepository) Count(ctx context.Context, stmt query.Statement) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, stmt.SQL, stmt.Args...); err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}

// LastUpdated returns the newest created timestamp among rows matching q, or
// nil when there are none.
func (r *EnrollmentRepository) LastUpdated(ctx context.Context, q query.Query) (*time.Time, error) {
	stmt := query.MaxCreated(q)
	var created sql.NullTime
	if err := r.db.GetContext(ctx, &created, stmt.SQL, stmt.Args...); err != nil {
		return nil, fmt.Errorf("max enrollment created: %w", err)
	}
	if !created.Valid {
		return nil, nil
	}
	return &created.Time, nil
}
