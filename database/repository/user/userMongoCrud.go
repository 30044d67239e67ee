// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIfAbsent inserts user keyed by email. An existing user is left untouched.
func (r *MongoUserRepo) CreateIfAbsent(ctx context.Context, user *models.User) (*models.CreateUserResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	onInsert := bson.M{"email": user.Email}
	if user.Name != "" {
		onInsert["name"] = user.Name
	}

	filter := bson.M{"email": user.Email}
	update := bson.M{"$setOnInsert": onInsert}
	result, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}

	return &models.CreateUserResult{
		Acknowledged: true,
		InsertedID:   idString(result.UpsertedID),
	}, nil
}

// SetRole writes role on the user with id. The upsert is intentional: promoting
// an unknown id leaves behind a role-only document.
func (r *MongoUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*models.RoleUpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"role": role}}
	result, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to update role for user %s: %w", id.Hex(), err)
	}

	return &models.RoleUpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    idString(result.UpsertedID),
	}, nil
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	default:
		return fmt.Sprint(id)
	}
}
