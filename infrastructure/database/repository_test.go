package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"task-manager/domain/models"
	"task-manager/domain/repositories"
)

// setupTestDB opens a migrated sqlite database private to the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDatabase(DatabaseConfig{
		Driver:   "sqlite",
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })

	return db
}

func date(y int, m time.Month, d int) *models.Date {
	return models.DatePtr(models.NewDate(y, m, d))
}

func seedTasks(t *testing.T, repo repositories.TaskRepository) []*models.Task {
	t.Helper()

	tasks := []*models.Task{
		{Title: "Write report", Status: models.StatusPtr(models.TaskStatusTodo), DueDate: date(2024, 3, 10)},
		{Title: "Review PR", Status: models.StatusPtr(models.TaskStatusInProgress), DueDate: date(2024, 3, 5)},
		{Title: "Deploy", Status: models.StatusPtr(models.TaskStatusTodo), DueDate: date(2024, 3, 20)},
		{Title: "Retro", Status: models.StatusPtr(models.TaskStatusDone), DueDate: date(2024, 3, 10)},
	}
	for _, task := range tasks {
		require.NoError(t, repo.Create(context.Background(), task))
	}
	return tasks
}

func titles(tasks []*models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func TestTaskRepository_CreateAndGet(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := &models.Task{
		Title:       "Test Task",
		Description: "Test Description",
		Status:      models.StatusPtr(models.TaskStatusTodo),
		DueDate:     date(2024, 1, 31),
	}
	require.NoError(t, repo.Create(ctx, task))
	assert.NotZero(t, task.ID)

	found, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Task", found.Title)
	assert.Equal(t, "Test Description", found.Description)
	require.NotNil(t, found.Status)
	assert.Equal(t, models.TaskStatusTodo, *found.Status)
	require.NotNil(t, found.DueDate)
	assert.Equal(t, "2024-01-31", found.DueDate.String())
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestTaskRepository_NullableColumns(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := &models.Task{Title: "Bare"}
	require.NoError(t, repo.Create(ctx, task))

	found, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Status)
	assert.Nil(t, found.DueDate)
}

func TestTaskRepository_SaveReplacesAllFields(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := &models.Task{
		Title:       "Original",
		Description: "keep?",
		Status:      models.StatusPtr(models.TaskStatusTodo),
		DueDate:     date(2024, 5, 1),
	}
	require.NoError(t, repo.Create(ctx, task))

	replacement := &models.Task{ID: task.ID, Title: "Replaced"}
	require.NoError(t, repo.Save(ctx, replacement))

	found, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Replaced", found.Title)
	assert.Empty(t, found.Description)
	assert.Nil(t, found.Status)
	assert.Nil(t, found.DueDate)
}

func TestTaskRepository_ExistsAndDelete(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := &models.Task{Title: "Temp"}
	require.NoError(t, repo.Create(ctx, task))

	exists, err := repo.ExistsByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, task.ID))

	exists, err = repo.ExistsByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTaskRepository_Filters(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()
	seedTasks(t, repo)

	byStatus, err := repo.FindByStatus(ctx, models.TaskStatusTodo)
	require.NoError(t, err)
	assert.Equal(t, []string{"Write report", "Deploy"}, titles(byStatus))

	byDate, err := repo.FindByDueDate(ctx, models.NewDate(2024, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"Write report", "Retro"}, titles(byDate))

	both, err := repo.FindByStatusAndDueDate(ctx, models.TaskStatusDone, models.NewDate(2024, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"Retro"}, titles(both))

	none, err := repo.FindByStatus(ctx, models.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Len(t, none, 1)
}

func TestTaskRepository_FindDueOnOrBefore(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()
	seedTasks(t, repo)
	require.NoError(t, repo.Create(ctx, &models.Task{Title: "Undated"}))

	tasks, err := repo.FindDueOnOrBefore(ctx, models.NewDate(2024, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"Review PR", "Write report", "Retro"}, titles(tasks))

	tasks, err = repo.FindDueOnOrBefore(ctx, models.NewDate(2024, 3, 1))
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepository_FindPage(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()
	seedTasks(t, repo)

	tests := []struct {
		name  string
		page  models.PageRequest
		want  []string
		total int64
	}{
		{
			name:  "due date descending",
			page:  models.PageRequest{Page: 0, Size: 3, SortBy: models.SortFieldDueDate, Direction: models.DirectionDesc},
			want:  []string{"Deploy", "Write report", "Retro"},
			total: 4,
		},
		{
			name:  "title ascending second page",
			page:  models.PageRequest{Page: 1, Size: 2, SortBy: models.SortFieldTitle, Direction: models.DirectionAsc},
			want:  []string{"Retro", "Review PR"},
			total: 4,
		},
		{
			name:  "page past the end",
			page:  models.PageRequest{Page: 5, Size: 10, SortBy: models.SortFieldID, Direction: models.DirectionAsc},
			want:  []string{},
			total: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, total, err := repo.FindPage(ctx, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.want, titles(tasks))
		})
	}
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{UserName: "jdoe", FullName: "John Doe"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", byID.UserName)

	byName, err := repo.GetByUserName(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.GetByUserName(ctx, "nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByID(ctx, 4242)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	exists, err := repo.ExistsByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Save(ctx, &models.User{ID: user.ID, UserName: "jdoe", FullName: "Jane Doe"}))
	byID, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", byID.FullName)
}
