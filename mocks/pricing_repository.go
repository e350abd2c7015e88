package mocks

import (
	"context"

	"agencysite/models"

	"github.com/stretchr/testify/mock"
)

// PricingRepository is a testify mock of pricingRepo.PricingRepository.
type PricingRepository struct {
	mock.Mock
}

func (m *PricingRepository) Get(ctx context.Context) (*models.PricingCatalog, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).(*models.PricingCatalog); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PricingRepository) Upsert(ctx context.Context, catalog models.PricingCatalog) error {
	return m.Called(ctx, catalog).Error(0)
}
