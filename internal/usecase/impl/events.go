package impl

import (
	"context"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
)

// newEvent stamps an event with the request id of ctx.
func newEvent(ctx context.Context, eventType service.EventType) *service.Event {
	return &service.Event{
		Type:       eventType,
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		OccurredAt: time.Now().UTC(),
	}
}

func newCartChangedEvent(ctx context.Context, loggedIn bool, totalItems int) *service.Event {
	event := newEvent(ctx, service.EventCartChanged)
	event.LoggedIn = loggedIn
	event.TotalItems = totalItems

	return event
}
