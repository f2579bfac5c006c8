package models

import (
	"fmt"
	"strings"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists the accepted statuses in declaration order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// ParseTaskStatus matches value against TaskStatuses ignoring case.
func ParseTaskStatus(value string) (TaskStatus, error) {
	candidate := TaskStatus(strings.ToUpper(strings.TrimSpace(value)))
	for _, status := range TaskStatuses {
		if status == candidate {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", value)
}

func (s TaskStatus) String() string {
	return string(s)
}

// Task is a unit of work. Status and DueDate are optional; nil means unset.
type Task struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string      `gorm:"not null" json:"title" validate:"notblank"`
	Description string      `json:"description"`
	Status      *TaskStatus `gorm:"type:varchar(20);index" json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     *Date       `gorm:"type:date;index" json:"dueDate"`
}

func (Task) TableName() string {
	return "tasks"
}

// StatusPtr is a convenience for building tasks with a status literal.
func StatusPtr(s TaskStatus) *TaskStatus {
	return &s
}
