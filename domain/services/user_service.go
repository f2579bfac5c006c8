package services

import (
	"context"

	"task-manager/domain/models"
)

type UserService interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	// GetUserByUserName returns nil without an error when no user matches.
	GetUserByUserName(ctx context.Context, userName string) (*models.User, error)
	UpdateUserByID(ctx context.Context, id int, user *models.User) (*models.User, error)
	UpdateUserByUserName(ctx context.Context, userName string, user *models.User) (*models.User, error)
}
