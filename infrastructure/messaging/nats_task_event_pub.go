package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go/jetstream"

	"task-manager/domain/dto"
	"task-manager/domain/ports"
	natspkg "task-manager/infrastructure/nats"
)

// streamPublisher is the part of jetstream.JetStream the publisher needs.
type streamPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// NATSTaskEventPublisher implements TaskEventPublisher on JetStream.
type NATSTaskEventPublisher struct {
	js streamPublisher
}

// NewNATSTaskEventPublisher publishes through js.
func NewNATSTaskEventPublisher(js jetstream.JetStream) ports.TaskEventPublisher {
	return &NATSTaskEventPublisher{js: js}
}

// PublishTaskEvent waits for the stream ack.
func (p *NATSTaskEventPublisher) PublishTaskEvent(ctx context.Context, event *dto.TaskEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	_, err = p.js.Publish(ctx, SubjectFor(event.Type), data, jetstream.WithMsgID(messageID(event)))
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

// SubjectFor maps task.created to tasks.created.
func SubjectFor(eventType dto.TaskEventType) string {
	suffix := strings.TrimPrefix(string(eventType), "task.")
	return natspkg.SubjectPrefix + "." + suffix
}

// messageID lets JetStream drop duplicates of the same event.
func messageID(event *dto.TaskEvent) string {
	return fmt.Sprintf("%s-%d-%d", event.Type, event.TaskID, event.OccurredAt.UnixNano())
}

var _ ports.TaskEventPublisher = (*NATSTaskEventPublisher)(nil)
