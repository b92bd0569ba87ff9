package interfaces

import (
	"context"
	"petsit_booking/internal/domain/entities"
)

// IAuditRecorder appends lifecycle events to the ledger.
type IAuditRecorder interface {
	Record(ctx context.Context, actor entities.Actor, eventName, bookingID string, metadata map[string]any) error
}

// IEventPublisher publishes JSON events to the message broker.
type IEventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}
