// File: database/repository/pricing/interface.go
package pricingRepo

import (
	"agencysite/database"
	"agencysite/models"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrCatalogNotFound is returned when no pricing document has been stored yet.
var ErrCatalogNotFound = errors.New("pricing catalog not found")

type PricingRepository interface {
	Get(ctx context.Context) (*models.PricingCatalog, error)
	Upsert(ctx context.Context, catalog models.PricingCatalog) error
}

type mongoPricingRepo struct {
	coll *mongo.Collection
}

// NewPricingRepoWithDB builds the repository on an explicit database handle.
func NewPricingRepoWithDB(db *mongo.Database) PricingRepository {
	return &mongoPricingRepo{coll: db.Collection(database.PricingCollection)}
}
