package interfaces

import (
	"context"
	"petsit_booking/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Invoices are keyed by booking id, so there is at most one invoice per booking.

type IInvoiceRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	// NextSequence atomically increments and returns the invoice number counter.
	NextSequence(ctx context.Context) (int64, error)
	// SetCheckoutSession stores the hosted checkout session; ErrStaleStatus when the invoice no
	// longer awaits payment.
	SetCheckoutSession(ctx context.Context, bookingID, sessionID, checkoutURL string) (entities.Invoice, error)
	// Void marks an awaiting invoice void. It returns a zero Invoice when there is nothing to void.
	Void(ctx context.Context, bookingID string) (entities.Invoice, error)
}
