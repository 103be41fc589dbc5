package user

import (
	"context"
	"time"

	"vaxbook/database/repository"
	"vaxbook/models"
)

type UserService interface {
	// Register creates a customer account.
	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	// Authenticate checks the credentials and issues a token.
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     repository.UserRepository
	TokenTTL time.Duration
}

// AuthResponse is the login response body.
type AuthResponse struct {
	Token string        `json:"token"`
	User  models.Claims `json:"user"`
}
