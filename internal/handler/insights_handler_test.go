package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
)

func TestInsightsHandlerGet(t *testing.T) {
	pattern := "/v1/enterprise/:enterprise_id/insights/"
	target := "/v1/enterprise/" + testEnterpriseID + "/insights/"

	h := NewInsightsHandler(&fakeInsightsSrv{insights: &dto.Insights{LearnerEngagement: &models.LearnerEngagement{Enrolls: 4}}})
	rec := serve(t, pattern, target, h.Get)
	require.Equal(t, http.StatusOK, rec.Code)
	data := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, data, `"learner_engagement"`)
	assert.NotContains(t, data, `"learner_progress"`)

	h = NewInsightsHandler(&fakeInsightsSrv{err: appErrors.NotFoundf("no insights found for enterprise %s", testEnterpriseID)})
	rec = serve(t, pattern, target, h.Get)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
