package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

// SeedRepository writes generated learners and enrollments.
type SeedRepository struct {
	db *sqlx.DB
}

// NewSeedRepository constructs the repository.
func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

const insertLearners = `INSERT INTO enterprise_learner (enterprise_user_id, enterprise_customer_uuid, lms_user_id, user_email, user_username)
        VALUES (:enterprise_user_id, :enterprise_customer_uuid, :lms_user_id, :user_email, :user_username)`

var insertEnrollments = fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s)",
	query.EnrollmentTable,
	strings.Join(models.EnrollmentColumns(), ", "),
	strings.Join(models.EnrollmentColumns(), ", :"))

// Insert stores learners and enrollments in one transaction.
func (r *SeedRepository) Insert(ctx context.Context, learners []models.Learner, enrollments []models.Enrollment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if len(learners) > 0 {
		if _, err := tx.NamedExecContext(ctx, insertLearners, learners); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("insert learners: %w", err)
		}
	}
	if len(enrollments) > 0 {
		if _, err := tx.NamedExecContext(ctx, insertEnrollments, enrollments); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("insert enrollments: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
