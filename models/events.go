package models

import "time"

// EventType represents the type of user domain event.
type EventType string

const (
	EventUserCreated EventType = "user.created"
	EventUserUpdated EventType = "user.updated"
	EventUserDeleted EventType = "user.deleted"
)

// UserEvent is the message published after a successful write. Data holds
// the row as it looked after the operation; for deletes only the ID is set.
type UserEvent struct {
	EventID       string    `json:"event_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	EventType     EventType `json:"event_type"`
	Timestamp     time.Time `json:"timestamp"`
	Data          User      `json:"data"`
}
