package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-manager/domain/models"
	"task-manager/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository returns a gorm-backed TaskRepository.
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID returns repositories.ErrNotFound when no row has id.
func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save replaces every column of the row, so nil fields are cleared.
func (r *TaskRepositoryImpl) Save(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}

// FindAll returns every task ordered by id.
func (r *TaskRepositoryImpl) FindAll(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Order("id").Find(&tasks).Error
	return tasks, err
}

// FindPage returns one sorted page and the total row count.
func (r *TaskRepositoryImpl) FindPage(ctx context.Context, page models.PageRequest) ([]*models.Task, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: page.SortBy.Column()}, Desc: page.Direction.Descending()})
	if page.SortBy != models.SortFieldID {
		query = query.Order("id")
	}

	var tasks []*models.Task
	err := query.Offset(page.Offset()).Limit(page.Size).Find(&tasks).Error
	return tasks, total, err
}

func (r *TaskRepositoryImpl) FindByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindByDueDate(ctx context.Context, dueDate models.Date) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("due_date = ?", dueDate).Order("id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindByStatusAndDueDate(ctx context.Context, status models.TaskStatus, dueDate models.Date) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date = ?", status, dueDate).
		Order("id").
		Find(&tasks).Error
	return tasks, err
}

// FindDueOnOrBefore skips tasks without a due date.
func (r *TaskRepositoryImpl) FindDueOnOrBefore(ctx context.Context, dueDate models.Date) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("due_date <= ?", dueDate).Order("due_date").Order("id").Find(&tasks).Error
	return tasks, err
}
