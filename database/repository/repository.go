package repository

import (
	"context"
	"fmt"

	adminRepo "agencysite/database/repository/admin"
	bookingRepo "agencysite/database/repository/booking"
	pricingRepo "agencysite/database/repository/pricing"
	settingsRepo "agencysite/database/repository/settings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	PricingRepository  = pricingRepo.PricingRepository
	BookingRepository  = bookingRepo.BookingRepository
	SettingsRepository = settingsRepo.SettingsRepository
	AdminRepository    = adminRepo.AdminRepository
)

// Repositories bundles every Mongo-backed store the server uses.
type Repositories struct {
	Pricing  PricingRepository
	Bookings BookingRepository
	Settings SettingsRepository
	Admins   AdminRepository
}

// NewMongoRepositories builds all repositories on one database handle.
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Pricing:  pricingRepo.NewPricingRepoWithDB(db),
		Bookings: bookingRepo.NewBookingRepoWithDB(db),
		Settings: settingsRepo.NewSettingsRepoWithDB(db),
		Admins:   adminRepo.NewAdminRepoWithDB(db),
	}
}

// EnsureIndexes creates the unique and lookup indexes the stores rely on.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	if err := r.Bookings.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("booking indexes: %w", err)
	}
	if err := r.Admins.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("admin indexes: %w", err)
	}
	return nil
}
