package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, inbound string) (string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = Value(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set("X-Request-ID", inbound)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return seen, rec.Header().Get("X-Request-ID")
}

func TestMiddlewareKeepsInboundID(t *testing.T) {
	seen, header := serve(t, "req-42")
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", header)
}

func TestMiddlewareAssignsUUID(t *testing.T) {
	for _, inbound := range []string{"", strings.Repeat("x", 200)} {
		seen, header := serve(t, inbound)
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, header)
	}
}

func TestValueWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, Value(c))
}
