package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/domain/dto"
	"task-manager/domain/models"
)

type published struct {
	subject string
	payload []byte
	opts    int
}

type fakeStream struct {
	calls []published
	err   error
}

func (f *fakeStream) Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	f.calls = append(f.calls, published{subject: subject, payload: payload, opts: len(opts)})
	if f.err != nil {
		return nil, f.err
	}
	return &jetstream.PubAck{Stream: "TASK_EVENTS", Sequence: uint64(len(f.calls))}, nil
}

func TestSubjectFor(t *testing.T) {
	assert.Equal(t, "tasks.created", SubjectFor(dto.TaskCreated))
	assert.Equal(t, "tasks.updated", SubjectFor(dto.TaskUpdated))
	assert.Equal(t, "tasks.deleted", SubjectFor(dto.TaskDeleted))
}

func TestNATSTaskEventPublisher_Publish(t *testing.T) {
	stream := &fakeStream{}
	pub := &NATSTaskEventPublisher{js: stream}

	task := &models.Task{ID: 7, Title: "Ship it", DueDate: models.DatePtr(models.NewDate(2024, 2, 29))}
	require.NoError(t, pub.PublishTaskEvent(context.Background(), dto.NewTaskEvent(dto.TaskCreated, 7, task)))

	require.Len(t, stream.calls, 1)
	assert.Equal(t, "tasks.created", stream.calls[0].subject)
	assert.Equal(t, 1, stream.calls[0].opts, "message id is always set")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(stream.calls[0].payload, &payload))
	assert.Equal(t, "task.created", payload["type"])
	assert.EqualValues(t, 7, payload["taskId"])
	assert.Equal(t, "2024-02-29", payload["task"].(map[string]any)["dueDate"])
}

func TestNATSTaskEventPublisher_DeleteHasNoSnapshot(t *testing.T) {
	stream := &fakeStream{}
	pub := &NATSTaskEventPublisher{js: stream}

	require.NoError(t, pub.PublishTaskEvent(context.Background(), dto.NewTaskEvent(dto.TaskDeleted, 3, nil)))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(stream.calls[0].payload, &payload))
	assert.NotContains(t, payload, "task")
}

func TestNATSTaskEventPublisher_Errors(t *testing.T) {
	stream := &fakeStream{err: errors.New("no responders")}
	pub := &NATSTaskEventPublisher{js: stream}

	err := pub.PublishTaskEvent(context.Background(), dto.NewTaskEvent(dto.TaskUpdated, 1, &models.Task{ID: 1, Title: "x"}))
	assert.ErrorContains(t, err, "no responders")

	assert.Error(t, pub.PublishTaskEvent(context.Background(), nil))
}

func TestNoopTaskEventPublisher(t *testing.T) {
	pub := NewNoopTaskEventPublisher()
	assert.NoError(t, pub.PublishTaskEvent(context.Background(), dto.NewTaskEvent(dto.TaskDeleted, 1, nil)))
}
