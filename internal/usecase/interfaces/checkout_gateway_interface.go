package interfaces

import "context"

// ICheckoutGateway abstracts the payment provider's hosted checkout.
//
// The service only creates the session, stores its id and redirects the owner.
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
}

type CheckoutRequest struct {
	BookingID     string
	InvoiceNumber string
	Description   string
	AmountCents   int64
	Currency      string
	PayerEmail    string
}

type CheckoutSession struct {
	ID          string
	RedirectURL string
}
