package nats

import "time"

const (
	StreamName    = "TASK_EVENTS"
	SubjectPrefix = "tasks"

	// all task lifecycle subjects, e.g. tasks.created
	SubjectTaskEvents = SubjectPrefix + ".>"

	StreamMaxAge = 7 * 24 * time.Hour
)

// StreamInfo summarizes the task event stream, reported under /health details.
type StreamInfo struct {
	Name     string `json:"name"`
	Messages uint64 `json:"messages"`
	Bytes    uint64 `json:"bytes"`
	LastSeq  uint64 `json:"lastSeq"`
}
