// File: database/repository/admin/crud.go
package adminRepo

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

func (r *mongoAdminRepo) Create(ctx context.Context, admin models.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameExists
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *mongoAdminRepo) getOne(ctx context.Context, filter bson.M) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.coll.FindOne(ctx, filter).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}
	return &admin, nil
}

func (r *mongoAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	return r.getOne(ctx, bson.M{"id": id})
}

func (r *mongoAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return r.getOne(ctx, bson.M{"username": username})
}

func (r *mongoAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer cursor.Close(ctx)

	admins := []models.Admin{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, fmt.Errorf("error decoding admins: %w", err)
	}
	return admins, nil
}
