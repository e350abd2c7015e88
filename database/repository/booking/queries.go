// File: database/repository/booking/queries.go
package bookingRepo

import (
	"agencysite/models"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"preferred_date": date})
}

// ListByDateRange returns bookings with from <= preferred_date <= to.
// Dates are "YYYY-MM-DD" so lexical order is calendar order.
func (r *mongoBookingRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"preferred_date": bson.M{"$gte": from, "$lte": to}})
}

func (r *mongoBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Date != "" {
		query["preferred_date"] = filter.Date
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(1000)
	return r.find(ctx, query, opts)
}

func (r *mongoBookingRepo) ListUpcoming(ctx context.Context, today string) ([]models.Booking, error) {
	query := bson.M{
		"status":         models.BookingStatusConfirmed,
		"preferred_date": bson.M{"$gte": today},
	}
	opts := options.Find().SetSort(bson.D{{Key: "preferred_date", Value: 1}}).SetLimit(1000)
	return r.find(ctx, query, opts)
}

func (r *mongoBookingRepo) Stats(ctx context.Context, today string) (models.BookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var stats models.BookingStats
	counts := []struct {
		dst    *int64
		filter bson.M
	}{
		{&stats.Total, bson.M{}},
		{&stats.Pending, bson.M{"status": models.BookingStatusPending}},
		{&stats.Confirmed, bson.M{"status": models.BookingStatusConfirmed}},
		{&stats.Cancelled, bson.M{"status": models.BookingStatusCancelled}},
		{&stats.Upcoming, bson.M{"status": models.BookingStatusConfirmed, "preferred_date": bson.M{"$gte": today}}},
	}
	for _, c := range counts {
		n, err := r.coll.CountDocuments(ctx, c.filter)
		if err != nil {
			return models.BookingStats{}, fmt.Errorf("failed to count bookings: %w", err)
		}
		*c.dst = n
	}
	return stats, nil
}
