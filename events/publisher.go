// Package events carries user lifecycle changes to interested consumers.
package events

import "github.com/Thammasok/user-api/models"

// Publisher emits user events to whatever broker is wired in.
// Implementations must be safe for concurrent use by request handlers.
type Publisher interface {
	Publish(event models.UserEvent) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(models.UserEvent) error { return nil }
func (NopPublisher) Close() error                   { return nil }
