package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/timeutil"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func mapUserToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		Status:         string(u.Status),
		BalanceMinutes: u.BalanceMinutes,
		BalanceHours:   timeutil.FormatSignedMinutes(u.BalanceMinutes),
	}
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return mapUserToResponse(u), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, mapUserToResponse(users[i]))
	}

	return responses, nil
}

// ListAvailable implements user.UserService.
func (s *UserServiceImpl) ListAvailable(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, mapUserToResponse(users[i]))
	}

	return responses, nil
}

func (s *UserServiceImpl) setStatus(ctx context.Context, id string, status user.Status) error {
	if _, err := s.UserRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.UserRepository.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	return nil
}

// Activate implements user.UserService.
func (s *UserServiceImpl) Activate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, user.StatusActive)
}

// Deactivate implements user.UserService.
func (s *UserServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, user.StatusInactive)
}

func NewUserService(db *database.DB, userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepo,
	}
}
