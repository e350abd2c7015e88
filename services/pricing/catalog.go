package pricing

import (
	"context"
	"errors"
	"fmt"

	pricingRepo "agencysite/database/repository/pricing"
	"agencysite/models"
	"agencysite/utils"

	"go.uber.org/zap"
)

// GetCatalog returns the stored catalog. On first read the default catalog
// is persisted and returned.
func (s *DefaultCatalogService) GetCatalog(ctx context.Context) (*models.PricingCatalog, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			logger.Warn("pricing cache read failed", zap.Error(err))
		}
	}

	catalog, err := s.Repo.Get(ctx)
	if errors.Is(err, pricingRepo.ErrCatalogNotFound) {
		def := DefaultCatalog()
		def.UpdatedAt = s.Now().UTC()
		if err := s.Repo.Upsert(ctx, def); err != nil {
			return nil, fmt.Errorf("failed to seed default pricing: %w", err)
		}
		logger.Info("seeded default pricing catalog")
		catalog = &def
	} else if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, *catalog); err != nil {
			logger.Warn("pricing cache write failed", zap.Error(err))
		}
	}
	return catalog, nil
}

// UpdateCatalog applies a partial update, validates the merged catalog and
// stores it. Nothing is written when validation fails.
func (s *DefaultCatalogService) UpdateCatalog(ctx context.Context, patch models.PricingUpdate) (*models.PricingCatalog, error) {
	current, err := s.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	updated := applyUpdate(*current, patch)
	if err := ValidateCatalog(updated); err != nil {
		return nil, err
	}
	updated.ID = models.PricingConfigID
	updated.UpdatedAt = s.Now().UTC()

	if err := s.Repo.Upsert(ctx, updated); err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			utils.GetLogger().Warn("pricing cache invalidation failed", zap.Error(err))
		}
	}
	utils.GetLogger().Info("pricing catalog updated",
		zap.Int("websiteTypes", len(updated.WebsiteTypes)),
		zap.Int("technologies", len(updated.Technologies)),
		zap.Int("features", len(updated.Features)))
	return &updated, nil
}

// Estimate prices a selection against the current catalog.
func (s *DefaultCatalogService) Estimate(ctx context.Context, sel models.Selection) (*models.EstimateResponse, error) {
	catalog, err := s.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return &models.EstimateResponse{
		Estimate:       Calculate(*catalog, sel),
		Currency:       catalog.Currency,
		CurrencySymbol: catalog.CurrencySymbol,
		Complete:       sel.IsComplete(),
	}, nil
}
