package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

const testEnterprise = "ee5e6b3a069a4947bb8dd2dbc323396c"

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "postgres"), mock, func() { db.Close() }
}

func TestEnrollmentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	created := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	values := make([]driver.Value, len(models.EnrollmentCSVHeader))
	for i, column := range models.EnrollmentCSVHeader {
		switch column {
		case "enrollment_id", "enterprise_enrollment_id", "enterprise_user_id":
			values[i] = int64(i + 1)
		case "is_consent_granted", "has_passed", "is_subsidy":
			values[i] = true
		case "created":
			values[i] = created
		case "user_current_enrollment_mode", "course_key", "courserun_key", "enterprise_name", "enterprise_customer_uuid":
			values[i] = column
		default:
			values[i] = nil
		}
	}
	rows := sqlmock.NewRows(models.EnrollmentCSVHeader).AddRow(values...)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + strings.Join(models.EnrollmentCSVHeader, ", ") +
		" FROM enterprise_learner_enrollment WHERE enterprise_customer_uuid = $1 AND is_consent_granted = TRUE")).
		WithArgs(testEnterprise).
		WillReturnRows(rows)

	enrollments, err := repo.List(context.Background(), query.EnrollmentsFor(testEnterprise))
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.True(t, enrollments[0].HasPassed)
	require.Nil(t, enrollments[0].UserEmail)
	require.Equal(t, created, enrollments[0].Created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryListAppendsTail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("is_consent_granted = TRUE ORDER BY enrollment_id ASC LIMIT 10 OFFSET 20")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows(models.EnrollmentCSVHeader))

	enrollments, err := repo.List(context.Background(), query.EnrollmentsFor(testEnterprise),
		"ORDER BY enrollment_id ASC", query.LimitOffset(models.PageRequest{Page: 3, PageSize: 10}))
	require.NoError(t, err)
	require.Empty(t, enrollments)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT enterprise_user_id) FROM enterprise_learner_enrollment WHERE enterprise_customer_uuid = $1 AND is_consent_granted = TRUE")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background(), query.DistinctLearners(query.EnrollmentsFor(testEnterprise)))
	require.NoError(t, err)
	require.Equal(t, 7, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryLastUpdated(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	latest := time.Date(2024, time.March, 30, 4, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT MAX(created) FROM enterprise_learner_enrollment")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(latest))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT MAX(created) FROM enterprise_learner_enrollment")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	got, err := repo.LastUpdated(context.Background(), query.EnrollmentsFor(testEnterprise))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, latest.Equal(*got))

	got, err = repo.LastUpdated(context.Background(), query.EnrollmentsFor(testEnterprise))
	require.NoError(t, err)
	require.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
