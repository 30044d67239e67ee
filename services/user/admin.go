package user

import (
	"context"
	"fmt"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsAdmin reports whether email belongs to a user holding the admin role.
// An unknown email is not an error.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up role for %s: %w", email, err)
	}
	return u.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role to the user with id. Promotion is
// one-way and repeating it changes nothing.
func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, id string) (*models.RoleUpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	return s.Repo.SetRole(ctx, objID, models.RoleAdmin)
}

// GetAllUsers retrieves all users.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
