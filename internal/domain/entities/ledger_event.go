package entities

import "time"

// Ledger event names.
const (
	EventBookingCreated       = "booking_created"
	EventBookingAccepted      = "booking_accepted"
	EventBookingDeclined      = "booking_declined"
	EventBookingCancelled     = "booking_cancelled"
	EventBookingConfirmed     = "booking_confirmed"
	EventBookingStarted       = "booking_started"
	EventBookingCompleted     = "booking_completed"
	EventInvoiceGenerated     = "invoice_generated"
	EventInvoiceVoided        = "invoice_voided"
	EventCheckoutStarted      = "checkout_started"
	EventPaymentProofUploaded = "payment_proof_uploaded"
	EventPaymentReceived      = "payment_received"
	EventPayoutScheduled      = "payout_scheduled"
	EventPayoutPaid           = "payout_paid"
	EventPlatformFeeUpdated   = "platform_fee_updated"
)

// LedgerEvent is an append-only audit row. It is never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id (snowflake, sortable by creation time)
//   - GSI booking_id-index: booking_id
type LedgerEvent struct {
	ID        string         `json:"id"`
	EventName string         `json:"event_name"`
	ActorID   string         `json:"actor_id"`
	ActorRole UserType       `json:"actor_role"`
	BookingID string         `json:"booking_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
