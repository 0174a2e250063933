package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
)

var offerColumns = []string{
	"offer_id", "enterprise_customer_uuid", "enterprise_name", "display_name", "offer_type", "status",
	"start_datetime", "end_datetime", "max_discount", "amount_of_offer_spent", "percent_of_offer_spent", "remaining_balance",
}

func TestOfferRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewOfferRepository(db)

	q := query.FilterOffers(query.OffersFor(testEnterprise), query.OfferParams{Status: "Open"})
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM enterprise_offer WHERE enterprise_customer_uuid = $1 AND status = $2")).
		WithArgs(testEnterprise, "Open").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM enterprise_offer WHERE enterprise_customer_uuid = $1 AND status = $2 ORDER BY offer_id ASC LIMIT 10 OFFSET 0")).
		WithArgs(testEnterprise, "Open").
		WillReturnRows(sqlmock.NewRows(offerColumns).
			AddRow("42", testEnterprise, "Acme", nil, nil, "Open", nil, nil, nil, nil, nil, nil))

	offers, total, err := repo.List(context.Background(), q, "ORDER BY offer_id ASC", models.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, offers, 1)
	require.Equal(t, "42", offers[0].OfferID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepositoryGetNormalisesUUID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewOfferRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE enterprise_customer_uuid = $1 AND offer_id = $2 LIMIT 1")).
		WithArgs(testEnterprise, "123e4567e89b42d3a456426614174000").
		WillReturnError(sql.ErrNoRows)

	offer, err := repo.Get(context.Background(), testEnterprise, "123e4567-e89b-42d3-a456-426614174000")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.Nil(t, offer)
	require.NoError(t, mock.ExpectationsWereMet())
}
