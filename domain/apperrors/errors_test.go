package apperrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"task not found", NewTaskNotFound(999), "Task not found with id: 999"},
		{"user not found", NewUserNotFound(3), "User with id 3 not found"},
		{"user name not found", NewUserNameNotFound("jdoe"), "User with userName jdoe not found"},
		{"empty result", NewEmptyResult("No tasks found with status: %s", "TODO"), "No tasks found with status: TODO"},
		{"validation fallback", &ValidationError{}, "Validation failed"},
		{
			"validation joined",
			&ValidationError{Violations: []FieldViolation{{"title", "title is mandatory"}, {"status", "bad"}}},
			"title: title is mandatory, status: bad",
		},
		{"direction", NewMalformedParameter("direction", "up"), "Invalid sort direction: up. Allowed values are: asc, desc"},
		{"due date", NewMalformedParameter("dueDate", "x"), "Invalid date format. Please use yyyy-MM-dd."},
		{"sort field", NewMalformedParameter("sortBy", "x"), "Invalid sort field: x. Allowed fields are: id, title, status, dueDate"},
		{"other", NewMalformedParameter("size", "x"), "Invalid value for parameter: size"},
		{"missing", NewMissingParameter("dueDate"), "Required parameter 'dueDate' is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
