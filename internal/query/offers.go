package query

import "github.com/noah-isme/enterprise-data-api/internal/models"

// OfferTable holds enterprise offers.
const OfferTable = "enterprise_offer"

// OfferColumns is the offer select list.
const OfferColumns = "offer_id, enterprise_customer_uuid, enterprise_name, display_name, offer_type, status," +
	" start_datetime, end_datetime, max_discount, amount_of_offer_spent, percent_of_offer_spent, remaining_balance"

// OfferParams are the optional offer refinements.
type OfferParams struct {
	OfferID string
	Status  string
}

// OffersFor scopes offers to one enterprise.
func OffersFor(enterpriseID string) Query {
	return From(OfferTable).
		Where("enterprise", "enterprise_customer_uuid = ?", models.NormalizeEnterpriseID(enterpriseID))
}

// FilterOffers applies the offer_id and status refinements.
func FilterOffers(q Query, p OfferParams) Query {
	if p.OfferID != "" {
		q = q.Where("offer_id", "offer_id = ?", ParseOfferID(p.OfferID).String())
	}
	if p.Status != "" {
		q = q.Where("status", "status = ?", p.Status)
	}
	return q
}

// OfferOrderColumns maps orderable offer fields to SQL.
var OfferOrderColumns = map[string]string{
	"offer_id":              "offer_id",
	"status":                "status",
	"start_datetime":        "start_datetime",
	"end_datetime":          "end_datetime",
	"display_name":          "display_name",
	"amount_of_offer_spent": "amount_of_offer_spent",
	"remaining_balance":     "remaining_balance",
}
