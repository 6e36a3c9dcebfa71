// Package service contains the business logic of the application.
package service

import (
	"context"

	"friendconnect/internal/models"
	"friendconnect/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService provides signup and login credential logic. Token issuance and
// verification live in the server layer.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// SignUp registers a new account. The email doubles as the login username and
// must be unused.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already taken or Incorrect inputs")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password are distinct failures.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("incorrect email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("incorrect password")
	}

	return user, nil
}
