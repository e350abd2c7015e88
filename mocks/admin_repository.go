package mocks

import (
	"context"

	"agencysite/models"

	"github.com/stretchr/testify/mock"
)

// AdminRepository is a testify mock of adminRepo.AdminRepository.
type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) Create(ctx context.Context, admin models.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *AdminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	return admin(m.Called(ctx, id))
}

func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return admin(m.Called(ctx, username))
}

func (m *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Admin)
	return list, args.Error(1)
}

func (m *AdminRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func admin(args mock.Arguments) (*models.Admin, error) {
	if a, ok := args.Get(0).(*models.Admin); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
