package dto

import (
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

// OfferQuery captures the offer list query string.
type OfferQuery struct {
	PageQuery
	OfferID string `form:"offer_id"`
	Status  string `form:"status"`
}

// Params converts the query into offer filter params.
func (q OfferQuery) Params() query.OfferParams {
	return query.OfferParams{OfferID: q.OfferID, Status: q.Status}
}

// OfferList is one page of offers.
type OfferList struct {
	Offers     []models.Offer
	Pagination *models.Pagination
}
