package entities

import "time"

type InvoiceStatus string

const (
	InvoiceStatusAwaitingPayment InvoiceStatus = "awaiting_payment"
	InvoiceStatusPaidEscrow      InvoiceStatus = "paid_escrow"
	InvoiceStatusVoid            InvoiceStatus = "void"
)

// InvoiceLine is embedded in the invoice row, so an invoice is never written without its lines.
type InvoiceLine struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitCents   int64  `json:"unit_cents"`
	AmountCents int64  `json:"amount_cents"`
}

// Invoice is the payment request generated when the owner confirms a booking.
//
// Storage model (DynamoDB):
//   - PK: booking_id (one invoice per booking)
//   - GSI id-index: id
type Invoice struct {
	ID                  string        `json:"id"`
	BookingID           string        `json:"booking_id"`
	InvoiceNumber       string        `json:"invoice_number"`
	IssuedAt            time.Time     `json:"issued_at"`
	DueAt               time.Time     `json:"due_at"`
	TotalCents          int64         `json:"total_cents"`
	Currency            string        `json:"currency"`
	Status              InvoiceStatus `json:"status"`
	PaymentInstructions string        `json:"payment_instructions"`
	Lines               []InvoiceLine `json:"lines"`
	CheckoutSessionID   string        `json:"checkout_session_id,omitempty"`
	CheckoutURL         string        `json:"checkout_url,omitempty"`
	PaidAt              *time.Time    `json:"paid_at,omitempty"`
}
