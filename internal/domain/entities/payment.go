package entities

import "time"

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheckout     PaymentMethod = "checkout"
	PaymentMethodManual       PaymentMethod = "manual"
)

// Payment records money sent by the owner against an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI invoice_id-index: invoice_id
type Payment struct {
	ID          string        `json:"id"`
	InvoiceID   string        `json:"invoice_id"`
	BookingID   string        `json:"booking_id"`
	PayerID     string        `json:"payer_id"`
	AmountCents int64         `json:"amount_cents"`
	Method      PaymentMethod `json:"method"`
	ProofURL    string        `json:"proof_url,omitempty"`
	ReceivedAt  *time.Time    `json:"received_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PaymentSettlement is everything written when an admin marks a payment as received.
type PaymentSettlement struct {
	Booking Booking
	Invoice Invoice
	Payment Payment
	// NewPayment is true when Payment did not exist yet and must be inserted.
	NewPayment bool
	// StartBooking moves the booking from confirmed to in_progress in the same write.
	StartBooking bool
	ReceivedAt   time.Time
}
