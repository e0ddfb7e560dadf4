// Package service contains the application's business logic, orchestrating
// repositories beneath the HTTP handlers.
package service

import (
	"context"

	"postboard/internal/cache"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and user listing.
type UserService struct {
	userRepo repository.UserRepository
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name         string
	MobileNumber string
	Address      string
	Password     string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates the input, hashes the password and creates the user
// with a zero post count. The stored hash never leaves this layer; User's
// json tag drops it from responses.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.MobileNumber == "" || in.Password == "" {
		return nil, models.NewValidationError("Name, mobile number, and password are required")
	}
	if err := validation.ValidateMobileNumber(in.MobileNumber); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:         in.Name,
		MobileNumber: in.MobileNumber,
		Address:      in.Address,
		Password:     string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	cache.InvalidateUsers(ctx)
	return user, nil
}

// Login verifies the credentials and returns the matching user.
func (s *UserService) Login(ctx context.Context, mobileNumber, password string) (*models.User, error) {
	if mobileNumber == "" || password == "" {
		return nil, models.NewValidationError("Mobile number and password are required")
	}

	user, err := s.userRepo.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("invalid password")
	}

	return user, nil
}

// ListUsers returns a page of users, cache-aside.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := cache.Aside(ctx, cache.UserListKey(limit, offset), &users, cache.UserListTTL, func() error {
		var fetchErr error
		users, fetchErr = s.userRepo.List(ctx, limit, offset)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
