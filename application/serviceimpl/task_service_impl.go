package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"task-manager/domain/apperrors"
	"task-manager/domain/dto"
	"task-manager/domain/models"
	"task-manager/domain/ports"
	"task-manager/domain/repositories"
	"task-manager/domain/services"
	"task-manager/pkg/logger"
	"task-manager/pkg/utils"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	publisher ports.TaskEventPublisher
}

// NewTaskService publishes lifecycle events to publisher, which may be nil.
func NewTaskService(taskRepo repositories.TaskRepository, publisher ports.TaskEventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

// CreateTask validates task and stores it under a new id.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := utils.ValidateStruct(task); err != nil {
		logger.WarnContext(ctx, "Task validation failed", "error", err)
		return nil, err
	}

	// ids are always assigned by the store
	task.ID = 0

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.InfoContext(ctx, "Task created successfully", "task_id", task.ID)
	s.publish(ctx, dto.NewTaskEvent(dto.TaskCreated, task.ID, task))

	return task, nil
}

func (s *TaskServiceImpl) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Task not found", "task_id", id)
			return nil, apperrors.NewTaskNotFound(id)
		}
		logger.ErrorContext(ctx, "Failed to get task", "task_id", id, "error", err)
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// UpdateTask fully replaces the task stored under id.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id int64, task *models.Task) (*models.Task, error) {
	if err := utils.ValidateStruct(task); err != nil {
		logger.WarnContext(ctx, "Task validation failed", "task_id", id, "error", err)
		return nil, err
	}

	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	task.ID = id
	if err := s.taskRepo.Save(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	logger.InfoContext(ctx, "Task updated successfully", "task_id", id)
	s.publish(ctx, dto.NewTaskEvent(dto.TaskUpdated, id, task))

	return task, nil
}

// DeleteTask returns a confirmation message.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id int64) (string, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return "", err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return "", fmt.Errorf("failed to delete task: %w", err)
	}

	logger.InfoContext(ctx, "Task deleted successfully", "task_id", id)
	s.publish(ctx, dto.NewTaskEvent(dto.TaskDeleted, id, nil))

	return "Task deleted successfully", nil
}

// GetAllTasks fails with EmptyResultError when there are no tasks.
func (s *TaskServiceImpl) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return nonEmpty(ctx, tasks, apperrors.NewEmptyResult("No tasks found in the system"))
}

// GetTasksPage never treats an empty page as an error.
func (s *TaskServiceImpl) GetTasksPage(ctx context.Context, page models.PageRequest) (*dto.PageResponse[*models.Task], error) {
	tasks, total, err := s.taskRepo.FindPage(ctx, page)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list task page", "page", page.Page, "size", page.Size, "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	response := dto.NewPageResponse(tasks, page.Page, page.Size, total, dto.PageSort{
		Property:  string(page.SortBy),
		Direction: string(page.Direction),
		Sorted:    true,
	})
	return &response, nil
}

func (s *TaskServiceImpl) FilterByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindByStatus(ctx, status)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to filter tasks", "status", status, "error", err)
		return nil, fmt.Errorf("failed to filter tasks: %w", err)
	}
	return nonEmpty(ctx, tasks, apperrors.NewEmptyResult("No tasks found with status: %s", status))
}

func (s *TaskServiceImpl) FilterByDueDate(ctx context.Context, dueDate models.Date) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindByDueDate(ctx, dueDate)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to filter tasks", "due_date", dueDate, "error", err)
		return nil, fmt.Errorf("failed to filter tasks: %w", err)
	}
	return nonEmpty(ctx, tasks, apperrors.NewEmptyResult("No tasks found with due date: %s", dueDate))
}

func (s *TaskServiceImpl) FilterByStatusAndDueDate(ctx context.Context, status models.TaskStatus, dueDate models.Date) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindByStatusAndDueDate(ctx, status, dueDate)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to filter tasks", "status", status, "due_date", dueDate, "error", err)
		return nil, fmt.Errorf("failed to filter tasks: %w", err)
	}
	return nonEmpty(ctx, tasks, apperrors.NewEmptyResult("No tasks found with status: %s and due date: %s", status, dueDate))
}

func (s *TaskServiceImpl) GetTasksTillDate(ctx context.Context, dueDate models.Date) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindDueOnOrBefore(ctx, dueDate)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks till date", "due_date", dueDate, "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return nonEmpty(ctx, tasks, apperrors.NewEmptyResult("No tasks found with due date till: %s", dueDate))
}

func (s *TaskServiceImpl) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.taskRepo.ExistsByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check task existence", "task_id", id, "error", err)
		return fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		logger.WarnContext(ctx, "Task not found", "task_id", id)
		return apperrors.NewTaskNotFound(id)
	}
	return nil
}

// publish is best effort: the mutation is already committed.
func (s *TaskServiceImpl) publish(ctx context.Context, event *dto.TaskEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "type", event.Type, "task_id", event.TaskID, "error", err)
	}
}

func nonEmpty(ctx context.Context, tasks []*models.Task, emptyErr *apperrors.EmptyResultError) ([]*models.Task, error) {
	if len(tasks) == 0 {
		logger.WarnContext(ctx, "Task query returned no rows", "reason", emptyErr.Message)
		return nil, emptyErr
	}
	return tasks, nil
}
