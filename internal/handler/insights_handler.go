package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/middleware"
	"github.com/noah-isme/enterprise-data-api/pkg/response"
)

type insightsService interface {
	Get(ctx context.Context, enterpriseID string) (*dto.Insights, error)
}

// InsightsHandler exposes the admin insight snapshots.
type InsightsHandler struct {
	insights insightsService
}

// NewInsightsHandler constructs InsightsHandler.
func NewInsightsHandler(insights insightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Get godoc
// @Summary Admin insights
// @Tags Insights
// @Produce json
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/enterprise/{enterprise_id}/insights/ [get]
func (h *InsightsHandler) Get(c *gin.Context) {
	insights, err := h.insights.Get(c.Request.Context(), c.Param(middleware.EnterpriseParam))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, insights, nil)
}
