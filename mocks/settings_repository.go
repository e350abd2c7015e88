package mocks

import (
	"context"

	"agencysite/models"

	"github.com/stretchr/testify/mock"
)

// SettingsRepository is a testify mock of settingsRepo.SettingsRepository.
type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) GetActive(ctx context.Context) (*models.BookingSetting, error) {
	return setting(m.Called(ctx))
}

func (m *SettingsRepository) GetAny(ctx context.Context) (*models.BookingSetting, error) {
	return setting(m.Called(ctx))
}

func (m *SettingsRepository) GetByID(ctx context.Context, id string) (*models.BookingSetting, error) {
	return setting(m.Called(ctx, id))
}

func (m *SettingsRepository) Create(ctx context.Context, s models.BookingSetting) error {
	return m.Called(ctx, s).Error(0)
}

func (m *SettingsRepository) Replace(ctx context.Context, s models.BookingSetting) error {
	return m.Called(ctx, s).Error(0)
}

func (m *SettingsRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setting(args mock.Arguments) (*models.BookingSetting, error) {
	if s, ok := args.Get(0).(*models.BookingSetting); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
