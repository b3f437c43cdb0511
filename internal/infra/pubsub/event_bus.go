package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"storefront/internal/domain/service"
)

type subscription struct {
	id      uint64
	handler service.EventHandler
}

// eventBus is the in-process EventBus. Handlers run synchronously in subscription order,
// then the event is handed to the forwarder.
type eventBus struct {
	mu        sync.RWMutex
	nextID    uint64
	subs      map[service.EventType][]subscription
	forwarder service.EventForwarder
	logger    *slog.Logger
}

// NewInProcessEventBus creates an event bus; forwarder may be nil.
func NewInProcessEventBus(forwarder service.EventForwarder, logger *slog.Logger) service.EventBus {
	return &eventBus{
		subs:      make(map[service.EventType][]subscription),
		forwarder: forwarder,
		logger:    logger,
	}
}

// Subscribe registers a handler and returns a function that removes it
func (b *eventBus) Subscribe(eventType service.EventType, handler service.EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[eventType] = append(b.subs[eventType], subscription{id: id, handler: handler})

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			current := b.subs[eventType]
			for i := range current {
				if current[i].id == id {
					b.subs[eventType] = append(current[:i:i], current[i+1:]...)

					break
				}
			}
		})
	}
}

// Publish delivers the event to every subscriber of its type
func (b *eventBus) Publish(ctx context.Context, event *service.Event) {
	if event == nil {
		return
	}

	b.mu.RLock()
	handlers := make([]service.EventHandler, 0, len(b.subs[event.Type]))
	for _, sub := range b.subs[event.Type] {
		handlers = append(handlers, sub.handler)
	}
	b.mu.RUnlock()

	b.logger.Debug("[EventBus] Publishing event",
		slog.String("type", string(event.Type)),
		slog.Int("subscriber_count", len(handlers)),
	)

	for _, handler := range handlers {
		b.dispatch(ctx, handler, event)
	}

	if b.forwarder == nil {
		return
	}
	if err := b.forwarder.Forward(ctx, event); err != nil {
		b.logger.Warn("[EventBus] Failed to forward event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func (b *eventBus) dispatch(ctx context.Context, handler service.EventHandler, event *service.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("[EventBus] Event handler panicked",
				slog.String("type", string(event.Type)),
				slog.String("panic", fmt.Sprint(r)),
			)
		}
	}()

	handler(ctx, event)
}
