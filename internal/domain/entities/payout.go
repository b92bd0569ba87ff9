package entities

import (
	"math"
	"time"
)

type PayoutStatus string

const (
	PayoutStatusScheduled PayoutStatus = "scheduled"
	PayoutStatusPaid      PayoutStatus = "paid"
)

// DefaultPlatformFeePercent applies when the settings table has no fee configured.
const DefaultPlatformFeePercent = 15.0

// Payout is the amount owed to the sitter once a booking completes.
//
// Storage model (DynamoDB):
//   - PK: booking_id (one payout per booking)
//   - GSI id-index: id
//   - GSI sitter_id-index: sitter_id
//   - GSI status-index: status
type Payout struct {
	ID             string       `json:"id"`
	BookingID      string       `json:"booking_id"`
	SitterID       string       `json:"sitter_id"`
	GrossCents     int64        `json:"gross_cents"`
	FeePercent     float64      `json:"fee_percent"`
	FeeCents       int64        `json:"fee_cents"`
	AmountCents    int64        `json:"amount_cents"`
	Currency       string       `json:"currency"`
	Status         PayoutStatus `json:"status"`
	TransactionRef string       `json:"transaction_ref,omitempty"`
	ScheduledAt    time.Time    `json:"scheduled_at"`
	PaidAt         *time.Time   `json:"paid_at,omitempty"`
}

// SplitPlatformFee returns the platform fee and the sitter payout for a price in cents.
// The fee is rounded half away from zero to whole cents.
func SplitPlatformFee(priceCents int64, feePercent float64) (feeCents, payoutCents int64) {
	feeCents = int64(math.Round(float64(priceCents) * feePercent / 100))
	return feeCents, priceCents - feeCents
}
