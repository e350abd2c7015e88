// File: database/repository/settings/crud.go
package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agencysite/models"
)

func (r *mongoSettingsRepo) findOne(ctx context.Context, filter bson.M) (*models.BookingSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var setting models.BookingSetting
	if err := r.coll.FindOne(ctx, filter).Decode(&setting); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking settings: %w", err)
	}
	return &setting, nil
}

func (r *mongoSettingsRepo) GetActive(ctx context.Context) (*models.BookingSetting, error) {
	return r.findOne(ctx, bson.M{"is_active": true})
}

func (r *mongoSettingsRepo) GetAny(ctx context.Context) (*models.BookingSetting, error) {
	return r.findOne(ctx, bson.M{})
}

func (r *mongoSettingsRepo) GetByID(ctx context.Context, id string) (*models.BookingSetting, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoSettingsRepo) Create(ctx context.Context, setting models.BookingSetting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, setting); err != nil {
		return fmt.Errorf("failed to create booking settings: %w", err)
	}
	return nil
}

func (r *mongoSettingsRepo) Replace(ctx context.Context, setting models.BookingSetting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": setting.ID}, setting)
	if err != nil {
		return fmt.Errorf("failed to update booking settings %s: %w", setting.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrSettingsNotFound
	}
	return nil
}

func (r *mongoSettingsRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking settings %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrSettingsNotFound
	}
	return nil
}
