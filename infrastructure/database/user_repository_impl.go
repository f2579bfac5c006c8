package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-manager/domain/models"
	"task-manager/domain/repositories"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository returns a gorm-backed UserRepository.
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID returns repositories.ErrNotFound when no row has id.
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUserName returns the lowest id when several rows share the name.
func (r *UserRepositoryImpl) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("user_name = ?", userName).Order("id").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByID counts rows with id.
func (r *UserRepositoryImpl) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save writes every column of user, inserting when ID is zero.
func (r *UserRepositoryImpl) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
