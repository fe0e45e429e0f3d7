// Package identity implements user lookup and the Kakao login exchange.
package identity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/recoffee/backend/internal/domain/identity"
	"github.com/recoffee/backend/internal/domain/shared"
	"github.com/recoffee/backend/internal/infrastructure/logger"
)

// UserService handles user lookups
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserDTO represents user data transfer object
type UserDTO struct {
	ID          int       `json:"id"`
	Token       string    `json:"token"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToUserDTO converts a domain user
func ToUserDTO(u *identity.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Token:       u.Token,
		Name:        u.Name,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// List returns a page of users in storage order
func (s *UserService) List(ctx context.Context, page shared.OffsetPage) ([]UserDTO, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAll(ctx, page)
	if err != nil {
		logger.L(ctx).Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, ToUserDTO(u))
	}
	return dtos, nil
}

// GetByID returns one user or shared.ErrUserNotFound
func (s *UserService) GetByID(ctx context.Context, id int) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ToUserDTO(user)
	return &dto, nil
}
