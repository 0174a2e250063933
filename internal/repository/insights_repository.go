package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

const (
	learnerProgressColumns = "enterprise_customer_uuid, enterprise_customer_name, active_subscription_plan," +
		" assigned_licenses, activated_licenses, assigned_licenses_percentage, activated_licenses_percentage," +
		" active_enrollments, at_risk_enrollment_less_than_one_hour, at_risk_enrollment_end_date_soon," +
		" at_risk_enrollment_dormant, created_at"
	learnerEngagementColumns = "enterprise_customer_uuid, enterprise_customer_name, enrolls, enrolls_prior," +
		" passed, passed_prior, engage, engage_prior, hours, hours_prior, contract_end_date, active_contract, created_at"
)

// InsightsRepository reads the precomputed admin insight snapshots.
type InsightsRepository struct {
	db *sqlx.DB
}

// NewInsightsRepository constructs the repository.
func NewInsightsRepository(db *sqlx.DB) *InsightsRepository {
	return &InsightsRepository{db: db}
}

// LearnerProgress returns the latest progress snapshot, or sql.ErrNoRows.
func (r *InsightsRepository) LearnerProgress(ctx context.Context, enterpriseID string) (*models.LearnerProgress, error) {
	stmt := r.latest("enterprise_admin_learner_progress", enterpriseID, learnerProgressColumns)
	var progress models.LearnerProgress
	if err := r.db.GetContext(ctx, &progress, stmt.SQL, stmt.Args...); err != nil {
		return nil, wrapNoRows(err, "get learner progress")
	}
	return &progress, nil
}

// LearnerEngagement returns the latest engagement summary, or sql.ErrNoRows.
func (r *InsightsRepository) LearnerEngagement(ctx context.Context, enterpriseID string) (*models.LearnerEngagement, error) {
	stmt := r.latest("enterprise_admin_summarize_insights", enterpriseID, learnerEngagementColumns)
	var engagement models.LearnerEngagement
	if err := r.db.GetContext(ctx, &engagement, stmt.SQL, stmt.Args...); err != nil {
		return nil, wrapNoRows(err, "get learner engagement")
	}
	return &engagement, nil
}

func (r *InsightsRepository) latest(table, enterpriseID, columns string) query.Statement {
	return query.From(table).
		Where("enterprise", "enterprise_customer_uuid = ?", models.NormalizeEnterpriseID(enterpriseID)).
		Select(columns, "ORDER BY created_at DESC", "LIMIT 1")
}

func wrapNoRows(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
