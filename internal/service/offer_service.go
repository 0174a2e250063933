package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
	"github.com/noah-isme/enterprise-data-api/pkg/tracing"
)

type offerRepository interface {
	List(ctx context.Context, q query.Query, orderBy string, page models.PageRequest) ([]models.Offer, int, error)
	Get(ctx context.Context, enterpriseID, offerID string) (*models.Offer, error)
}

// DefaultOfferOrdering orders offers by id.
var DefaultOfferOrdering = query.Ordering{Field: "offer_id"}

// OfferService lists and retrieves enterprise offers.
type OfferService struct {
	repo    offerRepository
	metrics *MetricsService
}

// NewOfferService constructs the service.
func NewOfferService(repo offerRepository, metrics *MetricsService) *OfferService {
	return &OfferService{repo: repo, metrics: metrics}
}

// List returns one page of offers.
func (s *OfferService) List(ctx context.Context, enterpriseID string, params query.OfferParams, ordering string, page models.PageRequest) (result *dto.OfferList, err error) {
	ctx, span := tracing.StartSpan(ctx, "OfferService.List", attribute.String("enterprise_id", enterpriseID))
	defer func() { tracing.EndSpan(span, err) }()

	allowed := func(field string) bool {
		_, ok := query.OfferOrderColumns[field]
		return ok
	}
	orderBy := query.OrderBy(query.ParseOrdering(ordering, allowed, DefaultOfferOrdering), query.OfferOrderColumns, "")
	q := query.FilterOffers(query.OffersFor(enterpriseID), params)

	start := time.Now()
	offers, total, err := s.repo.List(ctx, q, orderBy, page)
	s.metrics.ObserveDBQuery("offers.list", time.Since(start))
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load offers")
	}
	if offers == nil {
		offers = []models.Offer{}
	}

	result = &dto.OfferList{Offers: offers}
	if !page.Disabled {
		result.Pagination = models.NewPagination(page.Page, page.PageSize, total)
	}
	return result, nil
}

// Get returns one offer. Hyphens in offerID are ignored.
func (s *OfferService) Get(ctx context.Context, enterpriseID, offerID string) (offer *models.Offer, err error) {
	ctx, span := tracing.StartSpan(ctx, "OfferService.Get",
		attribute.String("enterprise_id", enterpriseID), attribute.String("offer_id", offerID))
	defer func() { tracing.EndSpan(span, err) }()

	start := time.Now()
	offer, err = s.repo.Get(ctx, enterpriseID, strings.ReplaceAll(offerID, "-", ""))
	s.metrics.ObserveDBQuery("offers.get", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundf("offer %s not found", offerID)
		}
		return nil, appErrors.Internal(err, "failed to load offer")
	}
	return offer, nil
}
