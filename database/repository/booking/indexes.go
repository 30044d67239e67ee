package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrExistingDuplicates is returned by EnsureIndexes when stored bookings already
// break the one-booking-per-treatment-per-day rule, so the unique index cannot be
// built. The lookup indexes are in place; only the race guard is missing.
var ErrExistingDuplicates = errors.New("existing duplicate bookings prevent the unique booking index")

// EnsureIndexes creates the indexes on the bookings collection. The unique
// compound index makes the duplicate-booking rule hold under concurrent inserts.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	lookupIndexes := []mongo.IndexModel{
		// Availability lookups match on date and join on treatment.
		{
			Keys:    bson.D{{Key: "appointmentDate", Value: 1}, {Key: "treatment", Value: 1}},
			Options: options.Index().SetName("date_treatment_idx"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, lookupIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	unique := mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "email", Value: 1},
			{Key: "appointmentDate", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("unique_treatment_email_date"),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, unique); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", ErrExistingDuplicates, err)
		}
		return fmt.Errorf("failed to create unique booking index: %w", err)
	}
	return nil
}
