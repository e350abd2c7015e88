// File: database/repository/admin/interface.go
package adminRepo

import (
	"agencysite/database"
	"agencysite/models"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrAdminNotFound  = errors.New("admin not found")
	ErrUsernameExists = errors.New("username already exists")
)

type AdminRepository interface {
	Create(ctx context.Context, admin models.Admin) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewAdminRepoWithDB builds the repository on an explicit database handle.
func NewAdminRepoWithDB(db *mongo.Database) AdminRepository {
	return &mongoAdminRepo{coll: db.Collection(database.AdminsCollection)}
}
