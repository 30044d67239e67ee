package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTreatmentRepo implements TreatmentRepository using MongoDB.
type MongoTreatmentRepo struct {
	coll            *mongo.Collection
	bookingCollName string
}

// NewMongoTreatmentRepo creates a catalog repository on db.
func NewMongoTreatmentRepo(db *mongo.Database) *MongoTreatmentRepo {
	return &MongoTreatmentRepo{
		coll:            db.Collection(database.AppointmentOptionsCollection),
		bookingCollName: database.BookingsCollection,
	}
}

// newContext derives a bounded context from the caller's context.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// catalogOrder is the order every catalog read returns treatments in.
var catalogOrder = bson.D{{Key: "_id", Value: 1}}

func (r *MongoTreatmentRepo) GetAll(ctx context.Context) ([]models.Treatment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(catalogOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve treatments: %w", err)
	}
	defer cursor.Close(ctx)

	treatments := make([]models.Treatment, 0)
	for cursor.Next(ctx) {
		var t models.Treatment
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode treatment: %w", err)
		}
		treatments = append(treatments, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return treatments, nil
}

func (r *MongoTreatmentRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "_id": 0}).
		SetSort(catalogOrder)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	specialties := make([]models.Specialty, 0)
	for cursor.Next(ctx) {
		var s models.Specialty
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode specialty: %w", err)
		}
		specialties = append(specialties, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return specialties, nil
}

// GetAvailability runs the availability pipeline against the catalog collection.
func (r *MongoTreatmentRepo) GetAvailability(ctx context.Context, date string) ([]models.AvailabilityView, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, AvailabilityPipeline(r.bookingCollName, date))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate availability for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	views := make([]models.AvailabilityView, 0)
	for cursor.Next(ctx) {
		var v models.AvailabilityView
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode availability: %w", err)
		}
		if v.Slots == nil {
			v.Slots = []string{}
		}
		views = append(views, v)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return views, nil
}
