// File: database/repository/pricing/crud.go
package pricingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agencysite/models"
)

func (r *mongoPricingRepo) Get(ctx context.Context) (*models.PricingCatalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var catalog models.PricingCatalog
	err := r.coll.FindOne(ctx, bson.M{"id": models.PricingConfigID}).Decode(&catalog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCatalogNotFound
		}
		return nil, fmt.Errorf("failed to fetch pricing catalog: %w", err)
	}
	return &catalog, nil
}

// Upsert replaces the single catalog document, creating it on first write.
func (r *mongoPricingRepo) Upsert(ctx context.Context, catalog models.PricingCatalog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	catalog.ID = models.PricingConfigID
	filter := bson.M{"id": models.PricingConfigID}
	_, err := r.coll.ReplaceOne(ctx, filter, catalog, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save pricing catalog: %w", err)
	}
	return nil
}
