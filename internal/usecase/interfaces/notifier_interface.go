package interfaces

import (
	"context"
	"petsit_booking/internal/domain/entities"
)

// IEmailProvider sends a rendered email through the transactional email provider.
type IEmailProvider interface {
	Send(ctx context.Context, email entities.Email) error
}

// INotificationDispatcher delivers lifecycle notifications. Delivery is best effort:
// Dispatch never fails the calling operation.
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, n entities.Notification)
}
