package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

func TestLearnerRepositoryExistsForEnterprise(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLearnerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM enterprise_learner l WHERE l.enterprise_customer_uuid = $1 LIMIT 1)")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsForEnterprise(context.Background(), testEnterprise)
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLearnerRepositoryListWithAnnotations(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLearnerRepository(db)

	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	hasEnrollments := true
	params := query.LearnerParams{
		HasEnrollments: &hasEnrollments,
		ExtraFields:    []string{models.LearnerExtraEnrollmentCount},
	}
	q := query.FilterLearners(query.LearnersFor(testEnterprise), params, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM enterprise_learner l WHERE l.enterprise_customer_uuid = $1 AND EXISTS (")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT l\.enterprise_user_id, .* AS enrollment_count FROM enterprise_learner l .* ORDER BY l\.user_email ASC LIMIT 1 OFFSET 1`).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{"enterprise_user_id", "enterprise_customer_uuid", "lms_user_id", "user_email", "user_username", "enrollment_count"}).
			AddRow(int64(2), testEnterprise, nil, "b@example.com", "b", 0))

	learners, total, err := repo.List(context.Background(), q, params, "ORDER BY l.user_email ASC", models.PageRequest{Page: 2, PageSize: 1})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, learners, 1)
	require.NotNil(t, learners[0].EnrollmentCount)
	require.Equal(t, 0, *learners[0].EnrollmentCount)
	require.Nil(t, learners[0].CourseCompletionCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLearnerRepositoryCompletedCourses(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLearnerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT user_email) FROM enterprise_learner_enrollment WHERE enterprise_customer_uuid = $1 AND is_consent_granted = TRUE AND has_passed = TRUE")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY user_email ORDER BY user_email ASC")).
		WithArgs(testEnterprise).
		WillReturnRows(sqlmock.NewRows([]string{"user_email", "completed_courses"}).AddRow("a@example.com", 3))

	rows, total, err := repo.CompletedCourses(context.Background(), testEnterprise, "ORDER BY user_email ASC", models.PageRequest{Disabled: true})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, []models.LearnerCompletedCourses{{UserEmail: "a@example.com", CompletedCourses: 3}}, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}
