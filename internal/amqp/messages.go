package amqp

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vefa/internal/core"
)

// ErrInvalidEvent is returned for events that fail validation.
var ErrInvalidEvent = errors.New("invalid activity event")

// ActivityEvent records one mutation applied to a session workspace.
type ActivityEvent struct {
	SessionID string      `json:"session_id"`
	Domain    core.Domain `json:"domain"`
	Action    core.Action `json:"action"`
	RecordID  int64       `json:"record_id"`
	Changed   bool        `json:"changed"`
	Revision  uint64      `json:"revision"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewActivityEvent stamps an event with the current time.
func NewActivityEvent(sessionID string, domain core.Domain, action core.Action, recordID int64, changed bool, revision uint64) ActivityEvent {
	return ActivityEvent{
		SessionID: sessionID,
		Domain:    domain,
		Action:    action,
		RecordID:  recordID,
		Changed:   changed,
		Revision:  revision,
		Timestamp: time.Now().UTC(),
	}
}

// Validate checks the fields a consumer relies on.
func (e ActivityEvent) Validate() error {
	if e.SessionID == "" {
		return fmt.Errorf("%w: empty session id", ErrInvalidEvent)
	}
	if !e.Domain.Valid() {
		return fmt.Errorf("%w: unknown domain %q", ErrInvalidEvent, e.Domain)
	}
	if e.Action == "" {
		return fmt.Errorf("%w: empty action", ErrInvalidEvent)
	}
	return nil
}

// ToJSON converts the event to JSON bytes
func (e ActivityEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ActivityEventFromJSON decodes and validates an event.
func ActivityEventFromJSON(data []byte) (ActivityEvent, error) {
	var ev ActivityEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ev, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := ev.Validate(); err != nil {
		return ev, err
	}
	return ev, nil
}
