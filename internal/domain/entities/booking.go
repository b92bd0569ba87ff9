package entities

import "time"

// BookingStatus represents the lifecycle of a sitting engagement.
//
//	pending -> accepted -> confirmed -> in_progress -> completed
//	pending|accepted|confirmed -> cancelled
//	any -> completed (admin completion)
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusConfirmed,
		BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// BookingPaymentStatus tracks the owner's payment independently of the booking status.
type BookingPaymentStatus string

const (
	BookingPaymentUnpaid              BookingPaymentStatus = "unpaid"
	BookingPaymentPendingVerification BookingPaymentStatus = "pending_verification"
	BookingPaymentPaid                BookingPaymentStatus = "paid"
)

// Booking is a single sitting engagement between an owner and a sitter.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI owner_id-index: owner_id
//   - GSI sitter_id-index: sitter_id
//   - GSI status-index: status
//
// Bookings are never deleted; they end in completed or cancelled.
type Booking struct {
	ID                 string               `json:"id"`
	OwnerID            string               `json:"owner_id"`
	SitterID           string               `json:"sitter_id,omitempty"`
	ServiceID          string               `json:"service_id"`
	ServiceType        string               `json:"service_type,omitempty"`
	StartAt            time.Time            `json:"start_at"`
	EndAt              time.Time            `json:"end_at"`
	PriceCents         int64                `json:"price_cents"`
	Currency           string               `json:"currency"`
	Status             BookingStatus        `json:"status"`
	PaymentStatus      BookingPaymentStatus `json:"payment_status"`
	Notes              string               `json:"notes,omitempty"`
	CancelledBy        string               `json:"cancelled_by,omitempty"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

func (b Booking) IsParty(actorID string) bool {
	return actorID != "" && (b.OwnerID == actorID || b.SitterID == actorID)
}

// StartsWithin reports whether the booking start is at most window away from now.
// A start already in the past counts as within the window.
func (b Booking) StartsWithin(now time.Time, window time.Duration) bool {
	return !b.StartAt.After(now.Add(window))
}

// BookingPatch carries the optional fields written together with a status transition.
type BookingPatch struct {
	PriceCents         *int64
	PaymentStatus      *BookingPaymentStatus
	CancelledBy        *string
	CancellationReason *string
}

// Apply copies the set fields of p onto b.
func (p BookingPatch) Apply(b *Booking) {
	if p.PriceCents != nil {
		b.PriceCents = *p.PriceCents
	}
	if p.PaymentStatus != nil {
		b.PaymentStatus = *p.PaymentStatus
	}
	if p.CancelledBy != nil {
		b.CancelledBy = *p.CancelledBy
	}
	if p.CancellationReason != nil {
		b.CancellationReason = *p.CancellationReason
	}
}
