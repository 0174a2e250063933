package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
)

type fakeLearnerRepo struct {
	learners  []models.Learner
	completed []models.LearnerCompletedCourses
	total     int
	err       error

	lastQuery   query.Query
	lastParams  query.LearnerParams
	lastOrderBy string
	lastPage    models.PageRequest
}

func (f *fakeLearnerRepo) List(_ context.Context, q query.Query, params query.LearnerParams, orderBy string, page models.PageRequest) ([]models.Learner, int, error) {
	f.lastQuery, f.lastParams, f.lastOrderBy, f.lastPage = q, params, orderBy, page
	return f.learners, f.total, f.err
}

func (f *fakeLearnerRepo) CompletedCourses(_ context.Context, _ string, orderBy string, page models.PageRequest) ([]models.LearnerCompletedCourses, int, error) {
	f.lastOrderBy, f.lastPage = orderBy, page
	return f.completed, f.total, f.err
}

func TestLearnerServiceListDefaultsToEmailOrdering(t *testing.T) {
	repo := &fakeLearnerRepo{learners: []models.Learner{{EnterpriseUserID: 1, UserEmail: "a@example.com"}}, total: 1}
	svc := NewLearnerService(repo, nil, nil)
	active := true

	result, err := svc.List(context.Background(), testEnterpriseID, query.LearnerParams{ActiveCourses: &active}, "", models.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, result.Learners, 1)
	assert.Equal(t, 1, result.Pagination.TotalCount)
	assert.Equal(t, "ORDER BY l.user_email ASC, l.enterprise_user_id ASC", repo.lastOrderBy)
	assert.Equal(t, []string{"enterprise", "active_courses"}, repo.lastQuery.Names())
}

func TestLearnerServiceOrderingOnAnnotationsRequiresExtraField(t *testing.T) {
	repo := &fakeLearnerRepo{}
	svc := NewLearnerService(repo, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC) }

	_, err := svc.List(context.Background(), testEnterpriseID, query.LearnerParams{}, "-enrollment_count", models.PageRequest{Disabled: true})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY l.user_email ASC, l.enterprise_user_id ASC", repo.lastOrderBy)

	params := query.LearnerParams{ExtraFields: []string{models.LearnerExtraEnrollmentCount}}
	result, err := svc.List(context.Background(), testEnterpriseID, params, "-enrollment_count", models.PageRequest{Disabled: true})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY enrollment_count DESC, l.enterprise_user_id ASC", repo.lastOrderBy)
	assert.Nil(t, result.Pagination)
	assert.NotNil(t, result.Learners)
}

func TestLearnerServiceCompletedCourses(t *testing.T) {
	repo := &fakeLearnerRepo{completed: []models.LearnerCompletedCourses{{UserEmail: "a@example.com", CompletedCourses: 2}}, total: 1}
	svc := NewLearnerService(repo, nil, nil)

	result, err := svc.CompletedCourses(context.Background(), testEnterpriseID, "-completed_courses", models.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY completed_courses DESC, user_email ASC", repo.lastOrderBy)
	assert.Equal(t, 1, result.Pagination.NumPages)

	_, err = svc.CompletedCourses(context.Background(), testEnterpriseID, "", models.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY user_email ASC", repo.lastOrderBy)
}

func TestLearnerServiceWrapsRepositoryErrors(t *testing.T) {
	svc := NewLearnerService(&fakeLearnerRepo{err: errors.New("db down")}, nil, nil)

	_, err := svc.List(context.Background(), testEnterpriseID, query.LearnerParams{}, "", models.PageRequest{Page: 1, PageSize: 10})
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
