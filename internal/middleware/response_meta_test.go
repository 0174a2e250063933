package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMetaCarriesCacheHit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WithResponseMeta())

	var meta map[string]interface{}
	r.GET("/v1/enterprise/:enterprise_id/enrollments/", func(c *gin.Context) {
		SetCacheHit(c, true)
		meta = ExtractMeta(c)
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/enterprise/ee5e6b3a/enrollments/", nil))
	require.NotNil(t, meta)
	assert.Equal(t, true, meta[MetaCacheHit])
	assert.Equal(t, "ee5e6b3a", meta[MetaEnterpriseID])
	assert.Contains(t, meta, MetaElapsedMS)
}

func TestSetMetaWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, ExtractMeta(c))
	SetMeta(c, "source", "database")
	assert.Equal(t, map[string]interface{}{"source": "database"}, ExtractMeta(c))
}
