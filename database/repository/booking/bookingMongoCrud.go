package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document. The caller's ID is ignored.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	booking.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateBooking
		}
		return primitive.NilObjectID, fmt.Errorf("error creating booking: %w", err)
	}
	return booking.ID, nil
}

func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
