package models

import "time"

// Offer is an enterprise subsidy instrument. UUID offer ids are stored
// lowercase with hyphens removed; legacy offers carry integer ids.
type Offer struct {
	OfferID                string     `db:"offer_id" json:"offer_id"`
	EnterpriseCustomerUUID string     `db:"enterprise_customer_uuid" json:"enterprise_customer_uuid"`
	EnterpriseName         string     `db:"enterprise_name" json:"enterprise_name"`
	DisplayName            *string    `db:"display_name" json:"display_name"`
	OfferType              *string    `db:"offer_type" json:"offer_type"`
	Status                 string     `db:"status" json:"status"`
	StartDatetime          *time.Time `db:"start_datetime" json:"start_datetime"`
	EndDatetime            *time.Time `db:"end_datetime" json:"end_datetime"`
	MaxDiscount            *float64   `db:"max_discount" json:"max_discount"`
	AmountOfOfferSpent     *float64   `db:"amount_of_offer_spent" json:"amount_of_offer_spent"`
	PercentOfOfferSpent    *float64   `db:"percent_of_offer_spent" json:"percent_of_offer_spent"`
	RemainingBalance       *float64   `db:"remaining_balance" json:"remaining_balance"`
}
