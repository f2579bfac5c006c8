package repositories

import (
	"context"
	"errors"

	"task-manager/domain/models"
)

// ErrNotFound is returned by single-record lookups that match nothing.
var ErrNotFound = errors.New("record not found")

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// Save replaces every column of the row identified by task.ID.
	Save(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]*models.Task, error)
	FindPage(ctx context.Context, page models.PageRequest) ([]*models.Task, int64, error)
	FindByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error)
	FindByDueDate(ctx context.Context, dueDate models.Date) ([]*models.Task, error)
	FindByStatusAndDueDate(ctx context.Context, status models.TaskStatus, dueDate models.Date) ([]*models.Task, error)
	FindDueOnOrBefore(ctx context.Context, dueDate models.Date) ([]*models.Task, error)
}
