package user

import (
	"context"
	"fmt"
	"strings"

	"doctorsportal/models"
)

// normalizeEmail is applied to every email before it reaches the store.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// IssueToken returns an access token for email when the user is known.
func (s *DefaultUserService) IssueToken(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", ErrUserNotFound
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if u == nil {
		return "", ErrUserNotFound
	}
	return s.Tokens.GenerateToken(u.Email)
}

// CreateUser stores the user on first login. Repeated calls for the same email
// leave the existing record untouched.
func (s *DefaultUserService) CreateUser(ctx context.Context, user models.User) (*models.CreateUserResult, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Email == "" {
		return nil, ErrInvalidEmail
	}
	// Roles are only granted through promotion.
	user.Role = ""
	return s.Repo.CreateIfAbsent(ctx, &user)
}
