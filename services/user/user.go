package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vaxbook/database"
	"vaxbook/models"
	"vaxbook/services/validation"
	"vaxbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

// Register validates the payload, hashes the password and stores a new
// customer.
func (s *DefaultUserService) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	if reg.Name == "" {
		return nil, &InputError{Field: "name", Message: "is required"}
	}
	if reg.Email == "" || validation.ValidateEmail(reg.Email) != nil {
		return nil, &InputError{Field: "email", Message: "is not a valid email address"}
	}
	if reg.Password == "" {
		return nil, &InputError{Field: "password", Message: "is required"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrUserExists
		}
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, err
	}
	utils.GetLogger().Info("Registered customer", zap.String("userId", u.ID))
	return u, nil
}

// Authenticate verifies email and password. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	claims := u.Claims()
	token, err := utils.GenerateToken(claims, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: claims}, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
