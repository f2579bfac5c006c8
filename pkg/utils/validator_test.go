package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/domain/apperrors"
	"task-manager/domain/models"
)

func TestValidateStruct_Task(t *testing.T) {
	bogus := models.TaskStatus("BOGUS")

	tests := []struct {
		name    string
		task    models.Task
		wantMsg string
	}{
		{name: "valid", task: models.Task{Title: "Test Task"}},
		{name: "valid with status", task: models.Task{Title: "x", Status: models.StatusPtr(models.TaskStatusDone)}},
		{name: "empty title", task: models.Task{}, wantMsg: "title: title is mandatory"},
		{name: "blank title", task: models.Task{Title: "   \t"}, wantMsg: "title: title is mandatory"},
		{
			name:    "blank title and bad status",
			task:    models.Task{Title: " ", Status: &bogus},
			wantMsg: "title: title is mandatory, status: must be one of: TODO, IN_PROGRESS, DONE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.task)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *apperrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantMsg, validationErr.Error())
		})
	}
}

func TestValidateStruct_UserHasNoConstraints(t *testing.T) {
	assert.NoError(t, ValidateStruct(&models.User{}))
}
