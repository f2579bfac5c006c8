package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"task-manager/domain/apperrors"
	"task-manager/domain/models"
	"task-manager/domain/repositories"
	"task-manager/domain/services"
	"task-manager/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) services.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = 0

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "user_name", user.UserName, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.InfoContext(ctx, "User created successfully", "user_id", user.ID, "user_name", user.UserName)
	return user, nil
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "User not found", "user_id", id)
			return nil, apperrors.NewUserNotFound(id)
		}
		logger.ErrorContext(ctx, "Failed to get user", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByUserName returns nil, nil when no user has userName.
func (s *UserServiceImpl) GetUserByUserName(ctx context.Context, userName string) (*models.User, error) {
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.DebugContext(ctx, "No user with user name", "user_name", userName)
			return nil, nil
		}
		logger.ErrorContext(ctx, "Failed to get user", "user_name", userName, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateUserByID replaces the user stored under id.
func (s *UserServiceImpl) UpdateUserByID(ctx context.Context, id int, user *models.User) (*models.User, error) {
	exists, err := s.userRepo.ExistsByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check user existence", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		logger.WarnContext(ctx, "User not found for update", "user_id", id)
		return nil, apperrors.NewUserNotFound(id)
	}

	user.ID = id
	if err := s.userRepo.Save(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update user", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.InfoContext(ctx, "User updated successfully", "user_id", id)
	return user, nil
}

// UpdateUserByUserName replaces the stored row that currently carries userName.
func (s *UserServiceImpl) UpdateUserByUserName(ctx context.Context, userName string, user *models.User) (*models.User, error) {
	existing, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "User not found for update", "user_name", userName)
			return nil, apperrors.NewUserNameNotFound(userName)
		}
		logger.ErrorContext(ctx, "Failed to get user", "user_name", userName, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.ID = existing.ID
	user.UserName = userName
	if err := s.userRepo.Save(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update user", "user_name", userName, "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.InfoContext(ctx, "User updated successfully", "user_id", user.ID, "user_name", userName)
	return user, nil
}
