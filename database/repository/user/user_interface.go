package userRepo

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail retrieves a user by email. It returns nil, nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateIfAbsent inserts the user unless one with the same email exists.
	CreateIfAbsent(ctx context.Context, user *models.User) (*models.CreateUserResult, error)
	// SetRole sets the role on the user with id, inserting a role-only document
	// when no such user exists.
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*models.RoleUpdateResult, error)
	EnsureIndexes(ctx context.Context) error
}
