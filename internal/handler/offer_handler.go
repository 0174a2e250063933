package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/middleware"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	"github.com/noah-isme/enterprise-data-api/pkg/response"
)

type offerService interface {
	List(ctx context.Context, enterpriseID string, params query.OfferParams, ordering string, page models.PageRequest) (*dto.OfferList, error)
	Get(ctx context.Context, enterpriseID, offerID string) (*models.Offer, error)
}

// OfferHandler exposes offer endpoints.
type OfferHandler struct {
	offers offerService
	paging Paging
}

// NewOfferHandler constructs OfferHandler.
func NewOfferHandler(offers offerService, paging Paging) *OfferHandler {
	return &OfferHandler{offers: offers, paging: paging}
}

// List godoc
// @Summary List enterprise offers
// @Tags Offers
// @Produce json
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Param offer_id query string false "Offer id"
// @Param status query string false "Offer status"
// @Param ordering query string false "Field name, prefix with - for descending"
// @Success 200 {object} response.Envelope
// @Router /v1/enterprise/{enterprise_id}/offers/ [get]
func (h *OfferHandler) List(c *gin.Context) {
	var q dto.OfferQuery
	if err := bindQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}
	page, err := pageRequest(c, q.PageQuery, h.paging)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.offers.List(c.Request.Context(), c.Param(middleware.EnterpriseParam), q.Params(), q.Ordering, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Offers, result.Pagination)
}

// Get godoc
// @Summary Retrieve an offer
// @Tags Offers
// @Produce json
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Param offer_id path string true "Offer id, hyphens ignored"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/enterprise/{enterprise_id}/offers/{offer_id}/ [get]
func (h *OfferHandler) Get(c *gin.Context) {
	offer, err := h.offers.Get(c.Request.Context(), c.Param(middleware.EnterpriseParam), c.Param("offer_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offer, nil)
}
