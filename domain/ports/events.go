package ports

import (
	"context"

	"task-manager/domain/dto"
)

// TaskEventPublisher announces task mutations to interested consumers.
type TaskEventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *dto.TaskEvent) error
}
