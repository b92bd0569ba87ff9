package interfaces

import (
	"context"
	"petsit_booking/internal/domain/entities"
	"time"
)

// IPayoutRepository abstracts DynamoDB persistence for Payout.

type IPayoutRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payout, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.Payout, error)
	ListBySitter(ctx context.Context, sitterID string) ([]entities.Payout, error)
	ListByStatus(ctx context.Context, status entities.PayoutStatus) ([]entities.Payout, error)
	// MarkPaid moves a scheduled payout to paid; ErrStaleStatus when it is not scheduled.
	MarkPaid(ctx context.Context, id, transactionRef string, paidAt time.Time) (entities.Payout, error)
}
