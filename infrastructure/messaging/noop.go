package messaging

import (
	"context"
	"log/slog"

	"task-manager/domain/dto"
	"task-manager/domain/ports"
	"task-manager/pkg/logger"
)

// NoopTaskEventPublisher only logs. Used when NATS is not configured.
type NoopTaskEventPublisher struct {
	logger *slog.Logger
}

// NewNoopTaskEventPublisher logs events at debug through the default logger.
func NewNoopTaskEventPublisher() *NoopTaskEventPublisher {
	return &NoopTaskEventPublisher{
		logger: logger.GetLogger().With("component", "noop_task_events"),
	}
}

func (p *NoopTaskEventPublisher) PublishTaskEvent(ctx context.Context, event *dto.TaskEvent) error {
	p.logger.DebugContext(ctx, "Task event (noop)", "type", event.Type, "task_id", event.TaskID)
	return nil
}

var _ ports.TaskEventPublisher = (*NoopTaskEventPublisher)(nil)
