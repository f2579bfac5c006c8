package services

import (
	"context"

	"task-manager/domain/dto"
	"task-manager/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) (string, error)
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTasksPage(ctx context.Context, page models.PageRequest) (*dto.PageResponse[*models.Task], error)
	FilterByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error)
	FilterByDueDate(ctx context.Context, dueDate models.Date) ([]*models.Task, error)
	FilterByStatusAndDueDate(ctx context.Context, status models.TaskStatus, dueDate models.Date) ([]*models.Task, error)
	GetTasksTillDate(ctx context.Context, dueDate models.Date) ([]*models.Task, error)
}
