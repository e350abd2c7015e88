package pricing

import (
	"context"
	"time"

	pricingRepo "agencysite/database/repository/pricing"
	"agencysite/models"
)

// CatalogService owns the pricing catalog and answers estimate requests.
type CatalogService interface {
	GetCatalog(ctx context.Context) (*models.PricingCatalog, error)
	UpdateCatalog(ctx context.Context, patch models.PricingUpdate) (*models.PricingCatalog, error)
	Estimate(ctx context.Context, sel models.Selection) (*models.EstimateResponse, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo  pricingRepo.PricingRepository
	Cache CatalogCache // optional
	Now   func() time.Time
}

// NewCatalogService wires the service; cache may be nil.
func NewCatalogService(repo pricingRepo.PricingRepository, cache CatalogCache) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo, Cache: cache, Now: time.Now}
}
