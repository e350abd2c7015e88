// File: database/repository/settings/interface.go
package settingsRepo

import (
	"agencysite/database"
	"agencysite/models"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSettingsNotFound is returned when no matching settings document exists.
var ErrSettingsNotFound = errors.New("booking settings not found")

type SettingsRepository interface {
	GetActive(ctx context.Context) (*models.BookingSetting, error)
	GetAny(ctx context.Context) (*models.BookingSetting, error)
	GetByID(ctx context.Context, id string) (*models.BookingSetting, error)
	Create(ctx context.Context, setting models.BookingSetting) error
	Replace(ctx context.Context, setting models.BookingSetting) error
	Delete(ctx context.Context, id string) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewSettingsRepoWithDB builds the repository on an explicit database handle.
func NewSettingsRepoWithDB(db *mongo.Database) SettingsRepository {
	return &mongoSettingsRepo{coll: db.Collection(database.BookingSettingsCollection)}
}
