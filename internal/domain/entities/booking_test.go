package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransition_Allows(t *testing.T) {
	assert.True(t, TransitionSitterAccept.Allows(BookingStatusPending))
	assert.False(t, TransitionSitterAccept.Allows(BookingStatusAccepted))

	assert.True(t, TransitionOwnerConfirm.Allows(BookingStatusAccepted))
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled} {
		assert.False(t, TransitionOwnerConfirm.Allows(s), "confirm from %s", s)
	}

	assert.True(t, TransitionSitterDecline.Allows(BookingStatusAccepted))
	assert.False(t, TransitionSitterDecline.Allows(BookingStatusConfirmed))
	assert.True(t, TransitionOwnerCancel.Allows(BookingStatusConfirmed))
	assert.False(t, TransitionOwnerCancel.Allows(BookingStatusInProgress))
}

func TestTransitionAdminComplete_AllowsAnyStatus(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusAccepted, BookingStatusConfirmed, BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled} {
		assert.True(t, TransitionAdminComplete.Allows(s), "complete from %s", s)
	}
}

func TestBookingStatus(t *testing.T) {
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusInProgress.IsValid())
	assert.False(t, BookingStatus("archived").IsValid())
}

func TestBooking_StartsWithin(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := Booking{StartAt: now.Add(23 * time.Hour)}
	assert.True(t, b.StartsWithin(now, 24*time.Hour))

	b.StartAt = now.Add(24 * time.Hour)
	assert.True(t, b.StartsWithin(now, 24*time.Hour))

	b.StartAt = now.Add(25 * time.Hour)
	assert.False(t, b.StartsWithin(now, 24*time.Hour))

	b.StartAt = now.Add(-time.Hour)
	assert.True(t, b.StartsWithin(now, 24*time.Hour))
}

func TestBooking_IsParty(t *testing.T) {
	b := Booking{OwnerID: "owner-1", SitterID: "sitter-1"}
	assert.True(t, b.IsParty("owner-1"))
	assert.True(t, b.IsParty("sitter-1"))
	assert.False(t, b.IsParty("someone"))
	assert.False(t, Booking{OwnerID: "owner-1"}.IsParty(""))
}

func TestBookingPatch_Apply(t *testing.T) {
	price := int64(5000)
	paid := BookingPaymentPaid
	b := Booking{PriceCents: 1}
	BookingPatch{PriceCents: &price, PaymentStatus: &paid}.Apply(&b)
	assert.Equal(t, int64(5000), b.PriceCents)
	assert.Equal(t, BookingPaymentPaid, b.PaymentStatus)
	assert.Empty(t, b.CancelledBy)
}
