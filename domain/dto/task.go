package dto

import (
	"time"

	"task-manager/domain/models"
)

type TaskEventType string

const (
	TaskCreated TaskEventType = "task.created"
	TaskUpdated TaskEventType = "task.updated"
	TaskDeleted TaskEventType = "task.deleted"
)

// TaskEvent is published after every successful task mutation.
// Task is nil for deletions.
type TaskEvent struct {
	Type       TaskEventType `json:"type"`
	TaskID     int64         `json:"taskId"`
	Task       *models.Task  `json:"task,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// NewTaskEvent stamps the event with the current UTC time.
func NewTaskEvent(eventType TaskEventType, taskID int64, task *models.Task) *TaskEvent {
	return &TaskEvent{
		Type:       eventType,
		TaskID:     taskID,
		Task:       task,
		OccurredAt: time.Now().UTC(),
	}
}
