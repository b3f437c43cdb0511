package service

import (
	"context"
	"time"
)

// EventType names a state-change notification.
type EventType string

const (
	// EventCartChanged fires after any successful cart mutation, guest or authenticated.
	EventCartChanged EventType = "cartChanged"

	// EventUserChanged fires after login or logout.
	EventUserChanged EventType = "userChanged"
)

// Event is a state-change notification carrying no payload beyond a few hints.
type Event struct {
	Type       EventType `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	LoggedIn   bool      `json:"logged_in"`           // userChanged only
	TotalItems int       `json:"total_items"`         // cartChanged only
	OccurredAt time.Time `json:"occurred_at"`
}

// EventHandler reacts to a published event.
type EventHandler func(ctx context.Context, event *Event)

// EventBus is the in-process publish/subscribe channel for cart and session changes.
type EventBus interface {
	// Publish delivers the event to every subscriber of its type, synchronously and in subscription order.
	// Delivery problems are logged, never returned.
	Publish(ctx context.Context, event *Event)

	// Subscribe registers a handler and returns a function that removes it.
	Subscribe(eventType EventType, handler EventHandler) (unsubscribe func())
}

// EventForwarder ships events to an external message queue
type EventForwarder interface {
	// Forward publishes an event outside the process
	Forward(ctx context.Context, event *Event) error

	// Close releases any resources held by the forwarder
	Close() error
}
