package user

import (
	"context"
	"errors"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
)

var (
	// ErrUserNotFound is returned when a token is requested for an unknown email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID is returned for ids that are not valid ObjectIDs.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrInvalidEmail is returned when an email is blank once trimmed.
	ErrInvalidEmail = errors.New("invalid email")
)

type UserService interface {
	// Role gate
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, id string) (*models.RoleUpdateResult, error)

	// Authentication
	IssueToken(ctx context.Context, email string) (string, error)

	// User Management
	CreateUser(ctx context.Context, user models.User) (*models.CreateUserResult, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenIssuer
}
