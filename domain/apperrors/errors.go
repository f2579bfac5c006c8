package apperrors

import (
	"fmt"
	"strings"
)

// NotFoundError reports a single-entity lookup miss.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewTaskNotFound reports a missing task id.
func NewTaskNotFound(id int64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Task not found with id: %d", id)}
}

func NewUserNotFound(id int) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("User with id %d not found", id)}
}

func NewUserNameNotFound(userName string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("User with userName %s not found", userName)}
}

// EmptyResultError reports a collection query that matched nothing.
type EmptyResultError struct {
	Message string
}

func (e *EmptyResultError) Error() string {
	return e.Message
}

// NewEmptyResult formats the message like fmt.Sprintf.
func NewEmptyResult(format string, args ...any) *EmptyResultError {
	return &EmptyResultError{Message: fmt.Sprintf(format, args...)}
}

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field constraint in declaration order.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "Validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return strings.Join(parts, ", ")
}

// MalformedParameterError reports a request parameter that is missing or
// cannot be parsed into its expected type.
type MalformedParameterError struct {
	Param   string
	Value   string
	Missing bool
}

func NewMalformedParameter(param, value string) *MalformedParameterError {
	return &MalformedParameterError{Param: param, Value: value}
}

// NewMissingParameter reports an absent required parameter.
func NewMissingParameter(param string) *MalformedParameterError {
	return &MalformedParameterError{Param: param, Missing: true}
}

func (e *MalformedParameterError) Error() string {
	if e.Missing {
		return fmt.Sprintf("Required parameter '%s' is missing", e.Param)
	}
	switch e.Param {
	case "direction":
		return fmt.Sprintf("Invalid sort direction: %s. Allowed values are: asc, desc", e.Value)
	case "dueDate":
		return "Invalid date format. Please use yyyy-MM-dd."
	case "sortBy":
		return fmt.Sprintf("Invalid sort field: %s. Allowed fields are: id, title, status, dueDate", e.Value)
	default:
		return fmt.Sprintf("Invalid value for parameter: %s", e.Param)
	}
}
