package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestInsightsRepositoryLearnerProgress(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInsightsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM enterprise_admin_learner_progress WHERE enterprise_customer_uuid = $1 ORDER BY created_at DESC LIMIT 1")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{
			"enterprise_customer_uuid", "enterprise_customer_name", "active_subscription_plan",
			"assigned_licenses", "activated_licenses", "assigned_licenses_percentage", "activated_licenses_percentage",
			"active_enrollments", "at_risk_enrollment_less_than_one_hour", "at_risk_enrollment_end_date_soon",
			"at_risk_enrollment_dormant", "created_at",
		}).AddRow(testEnterprise, "Acme", true, 10, 8, 1.0, 0.8, 5, 1, 2, 0, time.Now()))

	progress, err := repo.LearnerProgress(context.Background(), testEnterprise)
	require.NoError(t, err)
	require.Equal(t, 8, progress.ActivatedLicenses)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightsRepositoryLearnerEngagementErrors(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInsightsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM enterprise_admin_summarize_insights")).
		WithArgs(testEnterprise).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM enterprise_admin_summarize_insights")).
		WithArgs(testEnterprise).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.LearnerEngagement(context.Background(), testEnterprise)
	require.ErrorIs(t, err, sql.ErrNoRows)

	_, err = repo.LearnerEngagement(context.Background(), testEnterprise)
	require.Error(t, err)
	require.NotErrorIs(t, err, sql.ErrNoRows)
	require.Contains(t, err.Error(), "get learner engagement")
	require.NoError(t, mock.ExpectationsWereMet())
}
