package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

// OfferRepository reads enterprise offers.
type OfferRepository struct {
	db *sqlx.DB
}

// NewOfferRepository constructs the repository.
func NewOfferRepository(db *sqlx.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// List returns one page of offers matching q plus the unpaged total.
func (r *OfferRepository) List(ctx context.Context, q query.Query, orderBy string, page models.PageRequest) ([]models.Offer, int, error) {
	countStmt := query.CountRows(q)
	var total int
	if err := r.db.GetContext(ctx, &total, countStmt.SQL, countStmt.Args...); err != nil {
		return nil, 0, fmt.Errorf("count offers: %w", err)
	}

	stmt := q.Select(query.OfferColumns, orderBy, query.LimitOffset(page))
	var offers []models.Offer
	if err := r.db.SelectContext(ctx, &offers, stmt.SQL, stmt.Args...); err != nil {
		return nil, 0, fmt.Errorf("list offers: %w", err)
	}
	return offers, total, nil
}

// Get returns a single offer of the enterprise, or sql.ErrNoRows.
func (r *OfferRepository) Get(ctx context.Context, enterpriseID, offerID string) (*models.Offer, error) {
	stmt := query.FilterOffers(query.OffersFor(enterpriseID), query.OfferParams{OfferID: offerID}).
		Select(query.OfferColumns, "LIMIT 1")
	var offer models.Offer
	if err := r.db.GetContext(ctx, &offer, stmt.SQL, stmt.Args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return &offer, nil
}
