package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	"github.com/noah-isme/enterprise-data-api/internal/service"
)

const testEnterpriseID = "ee5e6b3a-069a-4947-bb8d-d2dbc323396c"

var testPaging = Paging{DefaultSize: 10, MaxSize: 100}

type fakeEnrollmentSrv struct {
	list     *service.EnrollmentList
	overview *dto.EnrollmentOverview
	legacy   *dto.LegacyEnrollmentOverview
	err      error

	lastRequest  service.EnrollmentListRequest
	lastParams   query.EnrollmentParams
	lastPage     models.PageRequest
	lastEntityID string
}

func (f *fakeEnrollmentSrv) List(_ context.Context, req service.EnrollmentListRequest) (*service.EnrollmentList, error) {
	f.lastRequest = req
	return f.list, f.err
}

func (f *fakeEnrollmentSrv) Overview(_ context.Context, enterpriseID string, params query.EnrollmentParams) (*dto.EnrollmentOverview, error) {
	f.lastEntityID, f.lastParams = enterpriseID, params
	return f.overview, f.err
}

func (f *fakeEnrollmentSrv) LegacyList(_ context.Context, enterpriseID string, page models.PageRequest) (*service.EnrollmentList, error) {
	f.lastEntityID, f.lastPage = enterpriseID, page
	return f.list, f.err
}

func (f *fakeEnrollmentSrv) LegacyOverview(_ context.Context, enterpriseID string) (*dto.LegacyEnrollmentOverview, error) {
	f.lastEntityID = enterpriseID
	return f.legacy, f.err
}

type fakeLearnerSrv struct {
	list      *dto.LearnerList
	completed *dto.CompletedCoursesList
	err       error

	lastParams   query.LearnerParams
	lastOrdering string
	lastPage     models.PageRequest
}

func (f *fakeLearnerSrv) List(_ context.Context, _ string, params query.LearnerParams, ordering string, page models.PageRequest) (*dto.LearnerList, error) {
	f.lastParams, f.lastOrdering, f.lastPage = params, ordering, page
	return f.list, f.err
}

func (f *fakeLearnerSrv) CompletedCourses(_ context.Context, _ string, ordering string, page models.PageRequest) (*dto.CompletedCoursesList, error) {
	f.lastOrdering, f.lastPage = ordering, page
	return f.completed, f.err
}

type fakeOfferSrv struct {
	list  *dto.OfferList
	offer *models.Offer
	err   error

	lastParams  query.OfferParams
	lastOfferID string
}

func (f *fakeOfferSrv) List(_ context.Context, _ string, params query.OfferParams, _ string, _ models.PageRequest) (*dto.OfferList, error) {
	f.lastParams = params
	return f.list, f.err
}

func (f *fakeOfferSrv) Get(_ context.Context, _ string, offerID string) (*models.Offer, error) {
	f.lastOfferID = offerID
	return f.offer, f.err
}

type fakeInsightsSrv struct {
	insights *dto.Insights
	err      error
}

func (f *fakeInsightsSrv) Get(context.Context, string) (*dto.Insights, error) {
	return f.insights, f.err
}

// serve runs handler for a single request routed through pattern.
func serve(t *testing.T, pattern, target string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(pattern, handler)
	return performGet(r, target)
}

func performGet(r http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

type envelope struct {
	Data       json.RawMessage        `json:"data"`
	Error      map[string]interface{} `json:"error"`
	Pagination *models.Pagination     `json:"pagination"`
	Meta       map[string]interface{} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
