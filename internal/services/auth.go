package services

import (
	"context"
	"fmt"

	"moviehub-be/internal/hash"
	"moviehub-be/internal/models"
	"moviehub-be/internal/repositories"
	"moviehub-be/internal/token"
)

// AuthService handles registration and login.
type AuthService struct {
	users  repositories.UserRepository
	hasher hash.PasswordHasher
	tokens *token.JWTService
}

func NewAuthService(users repositories.UserRepository, hasher hash.PasswordHasher, tokens *token.JWTService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user account and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := s.tokens.Generate(user.ID.Hex(), user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{User: *user, Token: tokenString}, nil
}

// Login authenticates a user and returns it with a fresh token. The same
// error is returned for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Generate(user.ID.Hex(), user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{User: *user, Token: tokenString}, nil
}
