// Package web serves a small task board with a login form, used as the target application
// for demo runs and browser tests.
package web

import (
	"encoding/json"
	"fmt"
	"time"

	sse "github.com/tmaxmax/go-sse"
)

// EventType is the SSE event name sent to board clients.
type EventType string

// event types streamed on /events
const (
	EventTypeTaskAdded EventType = "task_added" // a task was created
	EventTypeReset     EventType = "reset"      // the board was cleared
)

// Event is a single board change streamed to clients.
type Event struct {
	Type      EventType `json:"type"`
	Task      *Task     `json:"task,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTaskAddedEvent creates an event for a new task.
func NewTaskAddedEvent(t Task) Event {
	return Event{Type: EventTypeTaskAdded, Task: &t, Timestamp: time.Now()}
}

// NewResetEvent creates an event for a cleared board.
func NewResetEvent() Event {
	return Event{Type: EventTypeReset, Timestamp: time.Now()}
}

// JSON returns the event as JSON bytes.
func (e Event) JSON() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// Message converts the event into an SSE message named after its type.
func (e Event) Message() (*sse.Message, error) {
	data, err := e.JSON()
	if err != nil {
		return nil, err
	}
	msg := &sse.Message{Type: sse.Type(string(e.Type))}
	msg.AppendData(string(data))
	return msg, nil
}
