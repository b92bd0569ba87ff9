package interfaces

import (
	"context"
	"petsit_booking/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Read methods return a zero Booking (ID == "") when the row does not exist.
// Transition is a compare-and-swap on status: it returns ErrStaleStatus when the stored status
// is not allowed by the transition or the guard attribute does not match.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Booking, error)
	ListBySitter(ctx context.Context, sitterID string) ([]entities.Booking, error)
	ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error)
	Transition(ctx context.Context, id string, t entities.Transition, guard BookingGuard, patch entities.BookingPatch) (entities.Booking, error)
}

// BookingGuard adds conditions to a transition on top of the allowed prior statuses.
// Empty fields are not checked.
type BookingGuard struct {
	OwnerID         string
	SitterID        string
	PaymentStatusIn []entities.BookingPaymentStatus
}
