package interfaces

import (
	"context"
	"petsit_booking/internal/domain/entities"
	"time"
)

// ILifecycleStore performs the lifecycle steps that write several tables at once.
// Each method is a single DynamoDB transaction: either every row is written or none is.

type ILifecycleStore interface {
	// ConfirmWithInvoice moves the booking accepted -> confirmed (guarded by owner) and inserts
	// its invoice. ErrStaleStatus when the booking guard fails, ErrAlreadyExists when an invoice
	// already exists for the booking.
	ConfirmWithInvoice(ctx context.Context, bookingID, ownerID string, inv entities.Invoice, now time.Time) error
	// RecordPaymentProof inserts the proof payment and sets the booking payment status to
	// pending_verification; the booking must still be confirmed and owned by ownerID.
	RecordPaymentProof(ctx context.Context, ownerID string, p entities.Payment, now time.Time) error
	// SettlePayment marks the invoice paid, stamps the payment and updates the booking.
	// ErrStaleStatus when the booking is no longer confirmed or the invoice no longer awaits payment.
	SettlePayment(ctx context.Context, s entities.PaymentSettlement) error
	// CompleteWithPayout sets the booking to completed regardless of its status and inserts the
	// payout. ErrAlreadyExists when a payout exists for the booking (nothing is written).
	CompleteWithPayout(ctx context.Context, bookingID string, p entities.Payout, now time.Time) error
}
