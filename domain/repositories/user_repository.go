package repositories

import (
	"context"

	"task-manager/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Save(ctx context.Context, user *models.User) error
}
