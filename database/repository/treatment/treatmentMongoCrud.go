package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert writes price and slots for the treatment named t.Name.
func (r *MongoTreatmentRepo) Upsert(ctx context.Context, t *models.Treatment) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if t.Name == "" {
		return fmt.Errorf("treatment name is required")
	}
	slots := t.Slots
	if slots == nil {
		slots = []string{}
	}

	filter := bson.M{"name": t.Name}
	update := bson.M{"$set": bson.M{"price": t.Price, "slots": slots}}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert treatment %s: %w", t.Name, err)
	}
	return nil
}
