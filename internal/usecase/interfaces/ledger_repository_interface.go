package interfaces

import (
	"context"
	"petsit_booking/internal/domain/entities"
)

// ILedgerRepository is the append-only store of lifecycle events.

type ILedgerRepository interface {
	Append(ctx context.Context, e entities.LedgerEvent) error
	ListByBooking(ctx context.Context, bookingID string) ([]entities.LedgerEvent, error)
}
