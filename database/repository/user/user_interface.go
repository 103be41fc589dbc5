package userRepo

import (
	"context"

	"vaxbook/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user. Emails are unique, case-insensitively.
	Create(ctx context.Context, user *models.User) error
	// GetByID returns database.ErrNotFound when no user matches.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail returns database.ErrNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
