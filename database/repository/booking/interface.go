// File: database/repository/booking/interface.go
package bookingRepo

import (
	"agencysite/database"
	"agencysite/models"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBookingNotFound is returned when no booking has the requested id.
var ErrBookingNotFound = errors.New("booking not found")

// CapacityGuard inspects the bookings already stored for the new booking's
// date, as read inside the insert transaction, and vetoes the insert by
// returning an error.
type CapacityGuard func(sameDay []models.Booking) error

type BookingRepository interface {
	InsertGuarded(ctx context.Context, booking *models.Booking, guard CapacityGuard) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListByDateRange(ctx context.Context, from, to string) ([]models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	ListUpcoming(ctx context.Context, today string) ([]models.Booking, error)
	Replace(ctx context.Context, booking models.Booking) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, today string) (models.BookingStats, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll  *mongo.Collection
	locks *mongo.Collection
}

// NewBookingRepoWithDB builds the repository on an explicit database handle.
func NewBookingRepoWithDB(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll:  db.Collection(database.BookingsCollection),
		locks: db.Collection(database.SlotLocksCollection),
	}
}
