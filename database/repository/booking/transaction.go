package bookingRepo

import (
	"agencysite/models"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func slotLockID(date, slot string) string {
	return date + "|" + slot
}

// InsertGuarded stores the booking only if guard accepts the bookings that
// exist for the same date at commit time. Every insert first bumps a lock
// document keyed by (date, slot), so two transactions racing for the same slot
// write-conflict and one of them is retried against the other's result.
func (r *mongoBookingRepo) InsertGuarded(ctx context.Context, booking *models.Booking, guard CapacityGuard) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		lockFilter := bson.M{"_id": slotLockID(booking.PreferredDate, booking.PreferredTimeSlot)}
		lockUpdate := bson.M{
			"$inc": bson.M{"version": 1},
			"$set": bson.M{"updated_at": time.Now()},
		}
		if _, err := r.locks.UpdateOne(sc, lockFilter, lockUpdate, options.Update().SetUpsert(true)); err != nil {
			return nil, fmt.Errorf("slot lock failed: %w", err)
		}

		cursor, err := r.coll.Find(sc, bson.M{"preferred_date": booking.PreferredDate})
		if err != nil {
			return nil, fmt.Errorf("capacity read failed: %w", err)
		}
		var sameDay []models.Booking
		if err := cursor.All(sc, &sameDay); err != nil {
			return nil, fmt.Errorf("error decoding bookings: %w", err)
		}

		if guard != nil {
			if err := guard(sameDay); err != nil {
				return nil, err
			}
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("insert booking failed: %w", err)
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}
