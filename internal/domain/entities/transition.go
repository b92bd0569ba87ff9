package entities

// Transition names one allowed status change and the statuses it may start from.
// An empty From allows any prior status.
type Transition struct {
	Event string
	From  []BookingStatus
	To    BookingStatus
}

var (
	TransitionSitterAccept = Transition{
		Event: EventBookingAccepted,
		From:  []BookingStatus{BookingStatusPending},
		To:    BookingStatusAccepted,
	}
	TransitionSitterDecline = Transition{
		Event: EventBookingDeclined,
		From:  []BookingStatus{BookingStatusPending, BookingStatusAccepted},
		To:    BookingStatusCancelled,
	}
	TransitionOwnerCancel = Transition{
		Event: EventBookingCancelled,
		From:  []BookingStatus{BookingStatusPending, BookingStatusAccepted, BookingStatusConfirmed},
		To:    BookingStatusCancelled,
	}
	TransitionOwnerConfirm = Transition{
		Event: EventBookingConfirmed,
		From:  []BookingStatus{BookingStatusAccepted},
		To:    BookingStatusConfirmed,
	}
	// Proof upload keeps the booking confirmed and only moves its payment status.
	TransitionPaymentProof = Transition{
		Event: EventPaymentProofUploaded,
		From:  []BookingStatus{BookingStatusConfirmed},
		To:    BookingStatusConfirmed,
	}
	// Settlement keeps the booking confirmed when the start is not close yet.
	TransitionPaymentSettle = Transition{
		Event: EventPaymentReceived,
		From:  []BookingStatus{BookingStatusConfirmed},
		To:    BookingStatusConfirmed,
	}
	TransitionPaymentStart = Transition{
		Event: EventBookingStarted,
		From:  []BookingStatus{BookingStatusConfirmed},
		To:    BookingStatusInProgress,
	}
	// Admin completion is intentionally unguarded on the prior status.
	TransitionAdminComplete = Transition{
		Event: EventBookingCompleted,
		To:    BookingStatusCompleted,
	}
)

func (t Transition) Allows(from BookingStatus) bool {
	if len(t.From) == 0 {
		return true
	}
	for _, s := range t.From {
		if s == from {
			return true
		}
	}
	return false
}
